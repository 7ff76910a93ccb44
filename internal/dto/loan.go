package dto

import (
	"time"

	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLoanRequest defines the data needed to record a loan. The wallet
// linkage is optional and purely informational.
type CreateLoanRequest struct {
	Name     string          `json:"name" binding:"required"`
	Amount   string          `json:"amount" binding:"required"`
	Note     string          `json:"note"`
	Date     string          `json:"date" binding:"required"`
	Type     domain.LoanType `json:"type" binding:"required,oneof=get give"`
	WalletID *string         `json:"walletId"`
}

// LoanResponse defines the data returned for a loan. Mirrors domain.Loan.
type LoanResponse struct {
	ID        string            `json:"id"`
	Name      string            `json:"name"`
	Amount    decimal.Decimal   `json:"amount"`
	Note      string            `json:"note,omitempty"`
	Date      string            `json:"date"`
	Type      domain.LoanType   `json:"type"`
	Status    domain.LoanStatus `json:"status"`
	Account   string            `json:"account,omitempty"`
	AccountID string            `json:"accountId,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
}

// ToLoanResponse converts a domain.Loan to its response DTO.
func ToLoanResponse(l *domain.Loan) LoanResponse {
	return LoanResponse{
		ID:        l.ID,
		Name:      l.Name,
		Amount:    l.Amount,
		Note:      l.Note,
		Date:      l.Date,
		Type:      l.Type,
		Status:    l.Status,
		Account:   l.Account,
		AccountID: l.AccountID,
		CreatedAt: l.CreatedAt,
	}
}

// ToListLoanResponse converts a slice of loans to response DTOs.
func ToListLoanResponse(loans []domain.Loan) []LoanResponse {
	res := make([]LoanResponse, len(loans))
	for i, l := range loans {
		res[i] = ToLoanResponse(&l)
	}
	return res
}

// LoanTotalsResponse carries outstanding get/give sums over active loans.
type LoanTotalsResponse struct {
	Get  decimal.Decimal `json:"get"`
	Give decimal.Decimal `json:"give"`
}
