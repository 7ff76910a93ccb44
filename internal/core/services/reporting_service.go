package services

import (
	"context"
	"time"

	portssvc "github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/core/ports/services"
)

// reportingService aggregates read-only views across the other managers.
type reportingService struct {
	BaseService
	walletSvc portssvc.WalletSvcFacade
	txnSvc    portssvc.TransactionSvcFacade
	loanSvc   portssvc.LoanSvcFacade
}

// NewReportingService creates a new reporting service.
func NewReportingService(walletSvc portssvc.WalletSvcFacade, txnSvc portssvc.TransactionSvcFacade, loanSvc portssvc.LoanSvcFacade) portssvc.ReportingSvcFacade {
	return &reportingService{walletSvc: walletSvc, txnSvc: txnSvc, loanSvc: loanSvc}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) Summary(ctx context.Context, month time.Month, year int) (*portssvc.MonthlySummary, error) {
	statement, err := s.Statement(ctx, month, year)
	if err != nil {
		return nil, err
	}
	return &statement.Summary, nil
}

func (s *reportingService) Statement(ctx context.Context, month time.Month, year int) (*portssvc.MonthlyStatement, error) {
	totalBalance, err := s.walletSvc.TotalBalance(ctx)
	if err != nil {
		return nil, err
	}

	txns, err := s.txnSvc.ListTransactions(ctx, portssvc.ListTransactionsFilter{Month: month, Year: year})
	if err != nil {
		return nil, err
	}
	txnTotals := s.txnSvc.Totals(txns)

	loans, err := s.loanSvc.ListLoans(ctx)
	if err != nil {
		return nil, err
	}
	loanTotals := s.loanSvc.Totals(loans)

	return &portssvc.MonthlyStatement{
		Summary: portssvc.MonthlySummary{
			Month:        month,
			Year:         year,
			TotalBalance: totalBalance,
			Income:       txnTotals.Income,
			Expense:      txnTotals.Expense,
			LoanGet:      loanTotals.Get,
			LoanGive:     loanTotals.Give,
		},
		Transactions: txns,
	}, nil
}
