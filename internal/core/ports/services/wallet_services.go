package services

import (
	"context"

	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/core/domain"
	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/dto"
	"github.com/shopspring/decimal"
)

// WalletReaderSvc defines read-only wallet operations, used by services that
// only resolve wallet references.
type WalletReaderSvc interface {
	GetWalletByID(ctx context.Context, walletID string) (*domain.Wallet, error)
	ListWallets(ctx context.Context) ([]domain.Wallet, error)
}

// WalletSvcFacade defines the full wallet manager surface.
type WalletSvcFacade interface {
	WalletReaderSvc
	CreateWallet(ctx context.Context, req dto.CreateWalletRequest) (*domain.Wallet, error)
	// UpdateWallet overwrites name/balance for the matching wallet. When the
	// wallet is absent the call is a silent no-op returning (nil, nil).
	UpdateWallet(ctx context.Context, walletID string, req dto.UpdateWalletRequest) (*domain.Wallet, error)
	// DeleteWallet removes the wallet without cascading to transactions or
	// loans that reference it.
	DeleteWallet(ctx context.Context, walletID string) error
	// TotalBalance sums balance over all wallets.
	TotalBalance(ctx context.Context) (decimal.Decimal, error)
}
