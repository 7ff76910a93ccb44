package repositories

import (
	"context"

	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/core/domain"
)

// TransactionRepositoryFacade persists the transaction ledger.
//
// The ledger is a whole-collection value: SaveTransaction prepends the new
// record so the collection stays in newest-first insertion order.
type TransactionRepositoryFacade interface {
	SaveTransaction(ctx context.Context, txn domain.Transaction) error
	// FindTransactionByID returns apperrors.ErrNotFound when no record matches.
	FindTransactionByID(ctx context.Context, txnID string) (*domain.Transaction, error)
	// ListTransactions returns all records in stored (insertion recency) order.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
	// DeleteTransaction removes the matching record only; it never touches
	// wallet balances. Returns apperrors.ErrNotFound when no record matches.
	DeleteTransaction(ctx context.Context, txnID string) error
}
