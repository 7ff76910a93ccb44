package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/apperrors"
	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/core/domain"
	portssvc "github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/core/ports/services"
	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/dto"
	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/handlers"
	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock WalletService ---
type MockWalletService struct {
	mock.Mock
}

func (m *MockWalletService) CreateWallet(ctx context.Context, req dto.CreateWalletRequest) (*domain.Wallet, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}
func (m *MockWalletService) GetWalletByID(ctx context.Context, walletID string) (*domain.Wallet, error) {
	args := m.Called(ctx, walletID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}
func (m *MockWalletService) ListWallets(ctx context.Context) ([]domain.Wallet, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Wallet), args.Error(1)
}
func (m *MockWalletService) UpdateWallet(ctx context.Context, walletID string, req dto.UpdateWalletRequest) (*domain.Wallet, error) {
	args := m.Called(ctx, walletID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}
func (m *MockWalletService) DeleteWallet(ctx context.Context, walletID string) error {
	args := m.Called(ctx, walletID)
	return args.Error(0)
}
func (m *MockWalletService) TotalBalance(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return decimal.Decimal{}, args.Error(1)
	}
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.WalletSvcFacade = (*MockWalletService)(nil)

// --- Test Suite ---
type WalletHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockWalletService *MockWalletService
	jwtSecret         string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *WalletHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "dompet-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedString, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signedString
}

func (suite *WalletHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockWalletService = new(MockWalletService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterWalletRoutes(v1, suite.mockWalletService)
}

func (suite *WalletHandlerTestSuite) doRequest(method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		suite.Require().NoError(json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(uuid.NewString()))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// --- Test Cases ---

func (suite *WalletHandlerTestSuite) TestCreateWallet_Success() {
	wallet := &domain.Wallet{
		ID:             uuid.NewString(),
		Name:           "Cash",
		Balance:        decimal.NewFromInt(50000),
		InitialBalance: decimal.NewFromInt(50000),
		CreatedAt:      time.Now(),
	}
	suite.mockWalletService.On("CreateWallet", mock.Anything, mock.AnythingOfType("dto.CreateWalletRequest")).
		Return(wallet, nil).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/wallets", dto.CreateWalletRequest{
		Name:           "Cash",
		InitialBalance: "50.000",
	})

	suite.Equal(http.StatusCreated, w.Code)
	var resp dto.WalletResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(wallet.ID, resp.ID)
	suite.Equal("Cash", resp.Name)
	suite.mockWalletService.AssertExpectations(suite.T())
}

func (suite *WalletHandlerTestSuite) TestCreateWallet_ValidationError() {
	suite.mockWalletService.On("CreateWallet", mock.Anything, mock.AnythingOfType("dto.CreateWalletRequest")).
		Return(nil, apperrors.ErrValidation).Once()

	w := suite.doRequest(http.MethodPost, "/api/v1/wallets", dto.CreateWalletRequest{
		Name:           "Cash",
		InitialBalance: "abc",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *WalletHandlerTestSuite) TestCreateWallet_MissingFields() {
	w := suite.doRequest(http.MethodPost, "/api/v1/wallets", map[string]string{"name": "Cash"})

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockWalletService.AssertNotCalled(suite.T(), "CreateWallet", mock.Anything, mock.Anything)
}

func (suite *WalletHandlerTestSuite) TestListWallets_Success() {
	wallets := []domain.Wallet{
		{ID: "w1", Name: "Cash", Balance: decimal.NewFromInt(1000)},
		{ID: "w2", Name: "Bank", Balance: decimal.NewFromInt(2000)},
	}
	suite.mockWalletService.On("ListWallets", mock.Anything).Return(wallets, nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/wallets", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp []dto.WalletResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Require().Len(resp, 2)
	suite.Equal("w1", resp[0].ID)
}

func (suite *WalletHandlerTestSuite) TestGetWallet_NotFound() {
	suite.mockWalletService.On("GetWalletByID", mock.Anything, "missing").
		Return(nil, apperrors.ErrNotFound).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/wallets/missing", nil)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *WalletHandlerTestSuite) TestUpdateWallet_AbsentWalletReturnsNoContent() {
	suite.mockWalletService.On("UpdateWallet", mock.Anything, "missing", mock.AnythingOfType("dto.UpdateWalletRequest")).
		Return(nil, nil).Once()

	name := "Savings"
	w := suite.doRequest(http.MethodPut, "/api/v1/wallets/missing", dto.UpdateWalletRequest{Name: &name})

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *WalletHandlerTestSuite) TestDeleteWallet_Success() {
	suite.mockWalletService.On("DeleteWallet", mock.Anything, "w1").Return(nil).Once()

	w := suite.doRequest(http.MethodDelete, "/api/v1/wallets/w1", nil)

	suite.Equal(http.StatusNoContent, w.Code)
}

func (suite *WalletHandlerTestSuite) TestTotalBalance_Success() {
	suite.mockWalletService.On("TotalBalance", mock.Anything).
		Return(decimal.NewFromInt(320000), nil).Once()

	w := suite.doRequest(http.MethodGet, "/api/v1/wallets/total", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.TotalBalanceResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.TotalBalance.Equal(decimal.NewFromInt(320000)))
}

func (suite *WalletHandlerTestSuite) TestRequest_WithoutToken() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/wallets", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockWalletService.AssertNotCalled(suite.T(), "ListWallets", mock.Anything)
}

func TestWalletHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(WalletHandlerTestSuite))
}
