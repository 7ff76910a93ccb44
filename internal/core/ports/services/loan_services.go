package services

import (
	"context"

	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/core/domain"
	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/dto"
	"github.com/shopspring/decimal"
)

// LoanTotals carries outstanding sums per loan type. Paid loans are excluded.
type LoanTotals struct {
	Get  decimal.Decimal
	Give decimal.Decimal
}

// LoanSvcFacade defines the loan manager surface.
type LoanSvcFacade interface {
	CreateLoan(ctx context.Context, req dto.CreateLoanRequest) (*domain.Loan, error)
	GetLoanByID(ctx context.Context, loanID string) (*domain.Loan, error)
	// ListLoans returns all loans ordered by createdAt descending.
	ListLoans(ctx context.Context) ([]domain.Loan, error)
	// MarkLoanPaid transitions status from active to paid. The transition is
	// terminal; marking a paid loan again fails with ErrValidation.
	MarkLoanPaid(ctx context.Context, loanID string) (*domain.Loan, error)
	// Totals sums amount over non-paid loans, split by type.
	Totals(loans []domain.Loan) LoanTotals
}
