package services

import (
	portsrepo "github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/core/ports/repositories"
	portssvc "github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/core/ports/services"
	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Wallet = NewWalletService(repos.WalletRepo)

	// Transaction creation pairs a ledger write with a wallet balance
	// adjustment, so it gets the wallet repository directly.
	container.Transaction = NewTransactionService(repos.TransactionRepo, repos.WalletRepo)
	container.Loan = NewLoanService(repos.LoanRepo, repos.WalletRepo)

	container.Reporting = NewReportingService(container.Wallet, container.Transaction, container.Loan)
	container.Auth = NewAuthService(cfg)

	return container
}

// Compile-time interface implementation checks.
var (
	_ portssvc.WalletSvcFacade      = (*walletService)(nil)
	_ portssvc.TransactionSvcFacade = (*transactionService)(nil)
	_ portssvc.LoanSvcFacade        = (*loanService)(nil)
	_ portssvc.ReportingSvcFacade   = (*reportingService)(nil)
	_ portssvc.AuthSvcFacade        = (*authService)(nil)
)
