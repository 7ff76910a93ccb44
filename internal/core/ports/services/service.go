package services

// ServiceContainer holds all the services and manages their dependencies.
type ServiceContainer struct {
	Wallet      WalletSvcFacade
	Transaction TransactionSvcFacade
	Loan        LoanSvcFacade
	Reporting   ReportingSvcFacade
	Auth        AuthSvcFacade
}
