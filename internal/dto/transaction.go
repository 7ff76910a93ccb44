package dto

import (
	"time"

	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateTransactionRequest defines the data needed to record a transaction.
// Amount arrives locale-formatted like wallet balances. Date is a calendar
// date in domain.DateLayout form.
type CreateTransactionRequest struct {
	Title    string                 `json:"title" binding:"required"`
	Amount   string                 `json:"amount" binding:"required"`
	Category string                 `json:"category"`
	WalletID string                 `json:"walletId" binding:"required"`
	Date     string                 `json:"date" binding:"required"`
	Type     domain.TransactionType `json:"type" binding:"required,oneof=income expense"`
}

// TransactionResponse defines the data returned for a transaction.
// Mirrors domain.Transaction.
type TransactionResponse struct {
	ID        string                 `json:"id"`
	Name      string                 `json:"name"`
	Amount    decimal.Decimal        `json:"amount"`
	Category  string                 `json:"category"`
	Account   string                 `json:"account"`
	AccountID string                 `json:"accountId"`
	Date      string                 `json:"date"`
	Type      domain.TransactionType `json:"type"`
	CreatedAt time.Time              `json:"createdAt"`
}

// ToTransactionResponse converts a domain.Transaction to its response DTO.
func ToTransactionResponse(t *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:        t.ID,
		Name:      t.Name,
		Amount:    t.Amount,
		Category:  t.Category,
		Account:   t.Account,
		AccountID: t.AccountID,
		Date:      t.Date,
		Type:      t.Type,
		CreatedAt: t.CreatedAt,
	}
}

// ToListTransactionResponse converts a slice of transactions to response DTOs.
func ToListTransactionResponse(txns []domain.Transaction) []TransactionResponse {
	res := make([]TransactionResponse, len(txns))
	for i, t := range txns {
		res[i] = ToTransactionResponse(&t)
	}
	return res
}

// ListTransactionsParams defines query parameters for listing transactions.
// Month and Year default to the current calendar month when omitted.
type ListTransactionsParams struct {
	Month int    `form:"month" binding:"omitempty,min=1,max=12"`
	Year  int    `form:"year" binding:"omitempty,min=1970"`
	Type  string `form:"type" binding:"omitempty,oneof=income expense"`
}

// TransactionTotalsResponse carries per-type sums for a transaction list.
type TransactionTotalsResponse struct {
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
}
