package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/apperrors"
	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/core/services"
	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/dto"
	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/platform/config"
	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecret:         "test-secret-key-that-is-long-enough",
		JWTExpiryDuration: time.Hour,
		JWTIssuer:         "dompet-test",
		AuthEmail:         "admin@gmail.com",
		AuthPassword:      "admin123",
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	cfg := testAuthConfig()
	svc := services.NewAuthService(cfg)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "admin@gmail.com",
		Password: "admin123",
	})

	require.NoError(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, "Bearer", resp.TokenType)
	assert.Equal(t, int64(3600), resp.ExpiresIn)

	claims, err := utils.ParseAndValidateJWT(resp.Token, cfg.JWTSecret)
	require.NoError(t, err)
	assert.Equal(t, "admin@gmail.com", claims.Subject)
	assert.Equal(t, "dompet-test", claims.Issuer)
}

func TestAuthService_Login_EmailCaseInsensitive(t *testing.T) {
	svc := services.NewAuthService(testAuthConfig())

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "  Admin@Gmail.com ",
		Password: "admin123",
	})

	require.NoError(t, err)
	require.NotNil(t, resp)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc := services.NewAuthService(testAuthConfig())

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "admin@gmail.com",
		Password: "wrong",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	assert.Nil(t, resp)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := services.NewAuthService(testAuthConfig())

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "someone@else.com",
		Password: "admin123",
	})

	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestAuthService_Login_BcryptHashPreferred(t *testing.T) {
	cfg := testAuthConfig()
	hash, err := utils.HashPassword("hunter2")
	require.NoError(t, err)
	cfg.AuthPasswordHash = hash
	cfg.AuthPassword = "ignored-when-hash-set"

	svc := services.NewAuthService(cfg)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Email: "admin@gmail.com", Password: "hunter2"})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), dto.LoginRequest{Email: "admin@gmail.com", Password: "ignored-when-hash-set"})
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
