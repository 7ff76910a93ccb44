package services

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"
	"strings"

	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/apperrors"
	portssvc "github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/core/ports/services"
	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/dto"
	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/platform/config"
	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/utils"
)

// authService checks the single configured demo user and issues JWTs.
// There is exactly one user; the login gates the surface but carries no
// real security value.
type authService struct {
	BaseService
	cfg *config.Config
}

// NewAuthService creates a new auth service.
func NewAuthService(cfg *config.Config) portssvc.AuthSvcFacade {
	return &authService{cfg: cfg}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email != strings.ToLower(s.cfg.AuthEmail) || !s.passwordMatches(req.Password) {
		s.LogDebug(ctx, "Login rejected", slog.String("email", email))
		return nil, fmt.Errorf("invalid email or password: %w", apperrors.ErrUnauthorized)
	}

	token, err := utils.GenerateJWT(email, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign token")
		return nil, err
	}

	s.LogInfo(ctx, "Login succeeded", slog.String("email", email))
	return &dto.LoginResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int64(s.cfg.JWTExpiryDuration.Seconds()),
	}, nil
}

// passwordMatches prefers the bcrypt hash when one is configured and falls
// back to a constant-time comparison against the plain demo password.
func (s *authService) passwordMatches(password string) bool {
	if s.cfg.AuthPasswordHash != "" {
		return utils.CheckPasswordHash(password, s.cfg.AuthPasswordHash)
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.AuthPassword)) == 1
}
