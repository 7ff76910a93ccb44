package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/apperrors"
	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/core/domain"
	portssvc "github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/core/ports/services"
	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/core/services"
	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// MockTransactionRepository is a mock type for the TransactionRepositoryFacade interface
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, txnID string) (*domain.Transaction, error) {
	args := m.Called(ctx, txnID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, txnID string) error {
	args := m.Called(ctx, txnID)
	return args.Error(0)
}

// --- Test Suite Setup ---

type TransactionServiceTestSuite struct {
	suite.Suite
	mockTxnRepo    *MockTransactionRepository
	mockWalletRepo *MockWalletRepository
	service        portssvc.TransactionSvcFacade
}

func (suite *TransactionServiceTestSuite) SetupTest() {
	suite.mockTxnRepo = new(MockTransactionRepository)
	suite.mockWalletRepo = new(MockWalletRepository)
	suite.service = services.NewTransactionService(suite.mockTxnRepo, suite.mockWalletRepo)
}

func (suite *TransactionServiceTestSuite) wallet(balance int64) *domain.Wallet {
	return &domain.Wallet{
		ID:             uuid.NewString(),
		Name:           "Cash",
		Balance:        decimal.NewFromInt(balance),
		InitialBalance: decimal.NewFromInt(balance),
		CreatedAt:      time.Now(),
	}
}

// --- Test Cases ---

func (suite *TransactionServiceTestSuite) TestCreateTransaction_IncomeAddsToBalance() {
	ctx := context.Background()
	wallet := suite.wallet(50000)
	req := dto.CreateTransactionRequest{
		Title:    "Salary",
		Amount:   "25.000",
		Category: "work",
		WalletID: wallet.ID,
		Date:     "2026-08-15",
		Type:     domain.Income,
	}

	suite.mockWalletRepo.On("FindWalletByID", ctx, wallet.ID).Return(wallet, nil).Once()
	suite.mockWalletRepo.On("UpdateWallet", ctx, mock.MatchedBy(func(w domain.Wallet) bool {
		return w.ID == wallet.ID && w.Balance.Equal(decimal.NewFromInt(75000))
	})).Return(true, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.NotEmpty(txn.ID)
	suite.Equal("Salary", txn.Name)
	suite.True(txn.Amount.Equal(decimal.NewFromInt(25000)))
	suite.Equal(wallet.Name, txn.Account)
	suite.Equal(wallet.ID, txn.AccountID)
	suite.Equal(domain.Income, txn.Type)
	suite.WithinDuration(time.Now(), txn.CreatedAt, time.Second)

	suite.mockWalletRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_ExpenseSubtractsFromBalance() {
	ctx := context.Background()
	wallet := suite.wallet(100000)
	req := dto.CreateTransactionRequest{
		Title:    "Groceries",
		Amount:   "30000",
		WalletID: wallet.ID,
		Date:     "2026-08-16",
		Type:     domain.Expense,
	}

	suite.mockWalletRepo.On("FindWalletByID", ctx, wallet.ID).Return(wallet, nil).Once()
	suite.mockWalletRepo.On("UpdateWallet", ctx, mock.MatchedBy(func(w domain.Wallet) bool {
		return w.Balance.Equal(decimal.NewFromInt(70000))
	})).Return(true, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.Equal(domain.Expense, txn.Type)

	suite.mockWalletRepo.AssertExpectations(suite.T())
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_InsufficientBalance() {
	ctx := context.Background()
	wallet := suite.wallet(50000)
	req := dto.CreateTransactionRequest{
		Title:    "Laptop",
		Amount:   "60.000",
		WalletID: wallet.ID,
		Date:     "2026-08-16",
		Type:     domain.Expense,
	}

	suite.mockWalletRepo.On("FindWalletByID", ctx, wallet.ID).Return(wallet, nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrInsufficientBalance)
	suite.Nil(txn)

	// rejection happens before any write
	suite.mockWalletRepo.AssertNotCalled(suite.T(), "UpdateWallet", mock.Anything, mock.Anything)
	suite.mockTxnRepo.AssertNotCalled(suite.T(), "SaveTransaction", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_ExpenseEqualToBalanceIsAllowed() {
	ctx := context.Background()
	wallet := suite.wallet(50000)
	req := dto.CreateTransactionRequest{
		Title:    "Rent",
		Amount:   "50000",
		WalletID: wallet.ID,
		Date:     "2026-08-01",
		Type:     domain.Expense,
	}

	suite.mockWalletRepo.On("FindWalletByID", ctx, wallet.ID).Return(wallet, nil).Once()
	suite.mockWalletRepo.On("UpdateWallet", ctx, mock.MatchedBy(func(w domain.Wallet) bool {
		return w.Balance.IsZero()
	})).Return(true, nil).Once()
	suite.mockTxnRepo.On("SaveTransaction", ctx, mock.AnythingOfType("domain.Transaction")).Return(nil).Once()

	txn, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(txn)
	suite.mockWalletRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_InvalidDate() {
	ctx := context.Background()
	req := dto.CreateTransactionRequest{
		Title:    "Groceries",
		Amount:   "10000",
		WalletID: uuid.NewString(),
		Date:     "16-08-2026",
		Type:     domain.Expense,
	}

	txn, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(txn)
	suite.mockWalletRepo.AssertNotCalled(suite.T(), "FindWalletByID", mock.Anything, mock.Anything)
}

func (suite *TransactionServiceTestSuite) TestCreateTransaction_WalletNotFound() {
	ctx := context.Background()
	walletID := uuid.NewString()
	req := dto.CreateTransactionRequest{
		Title:    "Groceries",
		Amount:   "10000",
		WalletID: walletID,
		Date:     "2026-08-16",
		Type:     domain.Expense,
	}

	suite.mockWalletRepo.On("FindWalletByID", ctx, walletID).Return(nil, apperrors.ErrNotFound).Once()

	txn, err := suite.service.CreateTransaction(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(txn)
}

func (suite *TransactionServiceTestSuite) TestListTransactions_FiltersByMonthAndType() {
	ctx := context.Background()
	stored := []domain.Transaction{
		{ID: "3", Name: "Coffee", Date: "2026-08-20", Type: domain.Expense, Amount: decimal.NewFromInt(5000)},
		{ID: "2", Name: "Salary", Date: "2026-08-01", Type: domain.Income, Amount: decimal.NewFromInt(100000)},
		{ID: "1", Name: "Old rent", Date: "2026-07-01", Type: domain.Expense, Amount: decimal.NewFromInt(50000)},
	}

	suite.mockTxnRepo.On("ListTransactions", ctx).Return(stored, nil)

	got, err := suite.service.ListTransactions(ctx, portssvc.ListTransactionsFilter{Month: time.August, Year: 2026})
	suite.Require().NoError(err)
	suite.Require().Len(got, 2)
	suite.Equal("3", got[0].ID, "stored order (newest first) must be preserved")
	suite.Equal("2", got[1].ID)

	expense := domain.Expense
	got, err = suite.service.ListTransactions(ctx, portssvc.ListTransactionsFilter{Month: time.August, Year: 2026, Type: &expense})
	suite.Require().NoError(err)
	suite.Require().Len(got, 1)
	suite.Equal("3", got[0].ID)
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_DoesNotTouchWallet() {
	ctx := context.Background()
	txnID := uuid.NewString()

	suite.mockTxnRepo.On("DeleteTransaction", ctx, txnID).Return(nil).Once()

	err := suite.service.DeleteTransaction(ctx, txnID)

	suite.Require().NoError(err)
	suite.mockWalletRepo.AssertNotCalled(suite.T(), "FindWalletByID", mock.Anything, mock.Anything)
	suite.mockWalletRepo.AssertNotCalled(suite.T(), "UpdateWallet", mock.Anything, mock.Anything)
	suite.mockTxnRepo.AssertExpectations(suite.T())
}

func (suite *TransactionServiceTestSuite) TestDeleteTransaction_NotFound() {
	ctx := context.Background()
	txnID := uuid.NewString()

	suite.mockTxnRepo.On("DeleteTransaction", ctx, txnID).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DeleteTransaction(ctx, txnID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *TransactionServiceTestSuite) TestTotals_SplitsByType() {
	txns := []domain.Transaction{
		{Type: domain.Income, Amount: decimal.NewFromInt(100000)},
		{Type: domain.Expense, Amount: decimal.NewFromInt(30000)},
		{Type: domain.Expense, Amount: decimal.NewFromInt(5000)},
	}

	totals := suite.service.Totals(txns)

	suite.True(totals.Income.Equal(decimal.NewFromInt(100000)), "got %s", totals.Income)
	suite.True(totals.Expense.Equal(decimal.NewFromInt(35000)), "got %s", totals.Expense)
}

func (suite *TransactionServiceTestSuite) TestTotals_Empty() {
	totals := suite.service.Totals(nil)
	suite.True(totals.Income.IsZero())
	suite.True(totals.Expense.IsZero())
}

func TestTransactionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(TransactionServiceTestSuite))
}
