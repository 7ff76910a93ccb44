package services

import (
	"context"
	"time"

	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/core/domain"
	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/dto"
	"github.com/shopspring/decimal"
)

// TransactionTotals carries the separate income and expense sums for a list
// of transactions.
type TransactionTotals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// ListTransactionsFilter narrows ListTransactions to one calendar month and,
// optionally, one transaction type.
type ListTransactionsFilter struct {
	Month time.Month
	Year  int
	Type  *domain.TransactionType
}

// TransactionSvcFacade defines the transaction manager surface.
type TransactionSvcFacade interface {
	// CreateTransaction validates the request, adjusts the referenced
	// wallet's balance, persists the wallet collection and then the new
	// transaction record. The two writes are not atomic; see the service
	// implementation for the accepted divergence window.
	CreateTransaction(ctx context.Context, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	GetTransactionByID(ctx context.Context, txnID string) (*domain.Transaction, error)
	// ListTransactions returns the filtered ledger in insertion-recency order.
	ListTransactions(ctx context.Context, filter ListTransactionsFilter) ([]domain.Transaction, error)
	// DeleteTransaction removes the ledger record without reversing the
	// balance adjustment made at creation time.
	DeleteTransaction(ctx context.Context, txnID string) error
	// Totals sums amount per type across the given list.
	Totals(txns []domain.Transaction) TransactionTotals
}
