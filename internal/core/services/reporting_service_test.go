package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/core/domain"
	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// ReportingServiceTestSuite wires real wallet/transaction/loan services over
// mocked repositories and checks the composed statement.
type ReportingServiceTestSuite struct {
	suite.Suite
	mockWalletRepo *MockWalletRepository
	mockTxnRepo    *MockTransactionRepository
	mockLoanRepo   *MockLoanRepository
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.mockWalletRepo = new(MockWalletRepository)
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockLoanRepo = new(MockLoanRepository)
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}

func (suite *ReportingServiceTestSuite) TestStatement_ComposesAllTotals() {
	ctx := context.Background()

	suite.mockWalletRepo.On("ListWallets", ctx).Return([]domain.Wallet{
		{ID: "w1", Name: "Cash", Balance: decimal.NewFromInt(70000)},
		{ID: "w2", Name: "Bank", Balance: decimal.NewFromInt(30000)},
	}, nil).Once()

	suite.mockTxnRepo.On("ListTransactions", ctx).Return([]domain.Transaction{
		{ID: "t2", Date: "2026-08-20", Type: domain.Expense, Amount: decimal.NewFromInt(30000)},
		{ID: "t1", Date: "2026-08-01", Type: domain.Income, Amount: decimal.NewFromInt(100000)},
		{ID: "t0", Date: "2026-07-15", Type: domain.Expense, Amount: decimal.NewFromInt(9999)},
	}, nil).Once()

	suite.mockLoanRepo.On("ListLoans", ctx).Return([]domain.Loan{
		{ID: "l1", Type: domain.LoanGet, Status: domain.LoanActive, Amount: decimal.NewFromInt(20000)},
		{ID: "l2", Type: domain.LoanGive, Status: domain.LoanActive, Amount: decimal.NewFromInt(5000)},
		{ID: "l3", Type: domain.LoanGet, Status: domain.LoanPaid, Amount: decimal.NewFromInt(777)},
	}, nil).Once()

	walletSvc := services.NewWalletService(suite.mockWalletRepo)
	txnSvc := services.NewTransactionService(suite.mockTxnRepo, suite.mockWalletRepo)
	loanSvc := services.NewLoanService(suite.mockLoanRepo, suite.mockWalletRepo)
	reporting := services.NewReportingService(walletSvc, txnSvc, loanSvc)

	statement, err := reporting.Statement(ctx, time.August, 2026)

	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), statement)

	s := statement.Summary
	suite.Equal(time.August, s.Month)
	suite.Equal(2026, s.Year)
	suite.True(s.TotalBalance.Equal(decimal.NewFromInt(100000)), "got %s", s.TotalBalance)
	suite.True(s.Income.Equal(decimal.NewFromInt(100000)))
	suite.True(s.Expense.Equal(decimal.NewFromInt(30000)), "July expense must be excluded")
	suite.True(s.LoanGet.Equal(decimal.NewFromInt(20000)), "paid loans must be excluded")
	suite.True(s.LoanGive.Equal(decimal.NewFromInt(5000)))

	require.Len(suite.T(), statement.Transactions, 2)
	suite.Equal("t2", statement.Transactions[0].ID)
}

func (suite *ReportingServiceTestSuite) TestSummary_DelegatesToStatement() {
	ctx := context.Background()

	suite.mockWalletRepo.On("ListWallets", ctx).Return([]domain.Wallet{}, nil).Once()
	suite.mockTxnRepo.On("ListTransactions", ctx).Return([]domain.Transaction{}, nil).Once()
	suite.mockLoanRepo.On("ListLoans", ctx).Return([]domain.Loan{}, nil).Once()

	walletSvc := services.NewWalletService(suite.mockWalletRepo)
	txnSvc := services.NewTransactionService(suite.mockTxnRepo, suite.mockWalletRepo)
	loanSvc := services.NewLoanService(suite.mockLoanRepo, suite.mockWalletRepo)
	reporting := services.NewReportingService(walletSvc, txnSvc, loanSvc)

	summary, err := reporting.Summary(ctx, time.January, 2026)

	require.NoError(suite.T(), err)
	require.NotNil(suite.T(), summary)
	suite.True(summary.TotalBalance.IsZero())
	suite.True(summary.Income.IsZero())
	suite.True(summary.Expense.IsZero())
}
