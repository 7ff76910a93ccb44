package kvfile

import (
	"context"
	"fmt"

	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/apperrors"
	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/core/domain"
	portsrepo "github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/core/ports/repositories"
)

const transactionsKey = "transactions"

// TransactionRepository implements the transaction ledger over the kvfile store.
type TransactionRepository struct {
	store *Store
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(store *Store) *TransactionRepository {
	return &TransactionRepository{store: store}
}

var _ portsrepo.TransactionRepositoryFacade = (*TransactionRepository)(nil)

func (r *TransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	txns, err := readCollection[domain.Transaction](ctx, r.store, transactionsKey)
	if err != nil {
		return err
	}
	// Prepend so the stored collection stays newest-first.
	txns = append([]domain.Transaction{txn}, txns...)
	return writeCollection(ctx, r.store, transactionsKey, txns)
}

func (r *TransactionRepository) FindTransactionByID(ctx context.Context, txnID string) (*domain.Transaction, error) {
	txns, err := readCollection[domain.Transaction](ctx, r.store, transactionsKey)
	if err != nil {
		return nil, err
	}
	for i := range txns {
		if txns[i].ID == txnID {
			return &txns[i], nil
		}
	}
	return nil, fmt.Errorf("transaction %s: %w", txnID, apperrors.ErrNotFound)
}

func (r *TransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	return readCollection[domain.Transaction](ctx, r.store, transactionsKey)
}

func (r *TransactionRepository) DeleteTransaction(ctx context.Context, txnID string) error {
	txns, err := readCollection[domain.Transaction](ctx, r.store, transactionsKey)
	if err != nil {
		return err
	}
	kept := txns[:0]
	found := false
	for _, t := range txns {
		if t.ID == txnID {
			found = true
			continue
		}
		kept = append(kept, t)
	}
	if !found {
		return fmt.Errorf("transaction %s: %w", txnID, apperrors.ErrNotFound)
	}
	return writeCollection(ctx, r.store, transactionsKey, kept)
}
