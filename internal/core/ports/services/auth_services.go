package services

import (
	"context"

	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/dto"
)

// AuthSvcFacade validates the configured demo credentials and issues tokens.
// There is exactly one user; the check gates the HTTP surface but carries no
// real security value.
type AuthSvcFacade interface {
	// Login returns apperrors.ErrUnauthorized on a credential mismatch.
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
}
