package kvfile

import (
	"context"
	"fmt"

	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/apperrors"
	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/core/domain"
	portsrepo "github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/core/ports/repositories"
)

const walletsKey = "wallets"

// WalletRepository implements the wallet repository over the kvfile store.
type WalletRepository struct {
	store *Store
}

// NewWalletRepository creates a new WalletRepository.
func NewWalletRepository(store *Store) *WalletRepository {
	return &WalletRepository{store: store}
}

var _ portsrepo.WalletRepositoryFacade = (*WalletRepository)(nil)

func (r *WalletRepository) SaveWallet(ctx context.Context, wallet domain.Wallet) error {
	wallets, err := readCollection[domain.Wallet](ctx, r.store, walletsKey)
	if err != nil {
		return err
	}
	// New wallets go at the end; list order is creation order.
	wallets = append(wallets, wallet)
	return writeCollection(ctx, r.store, walletsKey, wallets)
}

func (r *WalletRepository) FindWalletByID(ctx context.Context, walletID string) (*domain.Wallet, error) {
	wallets, err := readCollection[domain.Wallet](ctx, r.store, walletsKey)
	if err != nil {
		return nil, err
	}
	for i := range wallets {
		if wallets[i].ID == walletID {
			return &wallets[i], nil
		}
	}
	return nil, fmt.Errorf("wallet %s: %w", walletID, apperrors.ErrNotFound)
}

func (r *WalletRepository) ListWallets(ctx context.Context) ([]domain.Wallet, error) {
	return readCollection[domain.Wallet](ctx, r.store, walletsKey)
}

func (r *WalletRepository) UpdateWallet(ctx context.Context, wallet domain.Wallet) (bool, error) {
	wallets, err := readCollection[domain.Wallet](ctx, r.store, walletsKey)
	if err != nil {
		return false, err
	}
	found := false
	for i := range wallets {
		if wallets[i].ID == wallet.ID {
			wallets[i] = wallet
			found = true
			break
		}
	}
	if !found {
		// Silent no-op when the wallet is gone; callers rely on this.
		return false, nil
	}
	return true, writeCollection(ctx, r.store, walletsKey, wallets)
}

func (r *WalletRepository) DeleteWallet(ctx context.Context, walletID string) error {
	wallets, err := readCollection[domain.Wallet](ctx, r.store, walletsKey)
	if err != nil {
		return err
	}
	kept := wallets[:0]
	for _, w := range wallets {
		if w.ID != walletID {
			kept = append(kept, w)
		}
	}
	return writeCollection(ctx, r.store, walletsKey, kept)
}
