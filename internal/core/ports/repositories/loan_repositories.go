package repositories

import (
	"context"

	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/core/domain"
)

// LoanRepositoryFacade persists loan records.
type LoanRepositoryFacade interface {
	SaveLoan(ctx context.Context, loan domain.Loan) error
	// FindLoanByID returns apperrors.ErrNotFound when no record matches.
	FindLoanByID(ctx context.Context, loanID string) (*domain.Loan, error)
	ListLoans(ctx context.Context) ([]domain.Loan, error)
	// UpdateLoan overwrites the record matching loan.ID. Returns
	// apperrors.ErrNotFound when no record matches.
	UpdateLoan(ctx context.Context, loan domain.Loan) error
}
