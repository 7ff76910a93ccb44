package repositories

// RepositoryProvider bundles the concrete repositories handed to the service
// container. Each manager receives only the interfaces it needs; none holds
// an implicit global reference to storage.
type RepositoryProvider struct {
	WalletRepo      WalletRepositoryFacade
	TransactionRepo TransactionRepositoryFacade
	LoanRepo        LoanRepositoryFacade
}
