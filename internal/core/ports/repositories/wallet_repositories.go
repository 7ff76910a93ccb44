package repositories

import (
	"context"

	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/core/domain"
)

// WalletReader defines read operations for wallets.
type WalletReader interface {
	// FindWalletByID returns apperrors.ErrNotFound when no wallet matches.
	FindWalletByID(ctx context.Context, walletID string) (*domain.Wallet, error)
	ListWallets(ctx context.Context) ([]domain.Wallet, error)
}

// WalletWriter defines write operations for wallets.
type WalletWriter interface {
	SaveWallet(ctx context.Context, wallet domain.Wallet) error
	// UpdateWallet overwrites the record matching wallet.ID. When no record
	// matches it is a silent no-op and found is false.
	UpdateWallet(ctx context.Context, wallet domain.Wallet) (found bool, err error)
	// DeleteWallet removes the record by ID. Deleting an absent wallet is
	// not an error, and referencing transactions or loans are left untouched.
	DeleteWallet(ctx context.Context, walletID string) error
}

// WalletRepositoryFacade combines all wallet repository capabilities.
type WalletRepositoryFacade interface {
	WalletReader
	WalletWriter
}
