package kvfile

import (
	portsrepo "github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all kvfile-backed repositories over one store.
func NewRepositoryProvider(store *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		WalletRepo:      NewWalletRepository(store),
		TransactionRepo: NewTransactionRepository(store),
		LoanRepo:        NewLoanRepository(store),
	}
}
