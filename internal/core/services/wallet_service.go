package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/apperrors"
	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/core/domain"
	portsrepo "github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/core/ports/repositories"
	portssvc "github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/core/ports/services"
	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/dto"
	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// walletService implements the WalletSvcFacade interface.
type walletService struct {
	BaseService
	walletRepo portsrepo.WalletRepositoryFacade
}

// NewWalletService creates a new wallet service.
func NewWalletService(repo portsrepo.WalletRepositoryFacade) portssvc.WalletSvcFacade {
	return &walletService{walletRepo: repo}
}

var _ portssvc.WalletSvcFacade = (*walletService)(nil)

func (s *walletService) CreateWallet(ctx context.Context, req dto.CreateWalletRequest) (*domain.Wallet, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("wallet name is required: %w", apperrors.ErrValidation)
	}

	initialBalance, err := utils.ParseNonNegativeAmount(req.InitialBalance)
	if err != nil {
		s.LogError(ctx, err, "Invalid initial balance", slog.String("raw_balance", req.InitialBalance))
		return nil, err
	}

	wallet := domain.Wallet{
		ID:             uuid.NewString(),
		Name:           name,
		Balance:        initialBalance,
		InitialBalance: initialBalance,
		CreatedAt:      time.Now(),
	}

	if err := s.walletRepo.SaveWallet(ctx, wallet); err != nil {
		s.LogError(ctx, err, "Failed to save wallet", slog.String("wallet_id", wallet.ID))
		return nil, err
	}

	s.LogInfo(ctx, "Wallet created successfully", slog.String("wallet_id", wallet.ID))
	return &wallet, nil
}

func (s *walletService) GetWalletByID(ctx context.Context, walletID string) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.FindWalletByID(ctx, walletID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find wallet by ID", slog.String("wallet_id", walletID))
		}
		return nil, err
	}
	return wallet, nil
}

func (s *walletService) ListWallets(ctx context.Context) ([]domain.Wallet, error) {
	wallets, err := s.walletRepo.ListWallets(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list wallets")
		return nil, err
	}
	if wallets == nil {
		return []domain.Wallet{}, nil
	}
	return wallets, nil
}

// UpdateWallet overwrites name/balance on the matching wallet. A missing
// wallet is a silent no-op returning (nil, nil); callers surface the miss
// themselves instead of getting an error here.
func (s *walletService) UpdateWallet(ctx context.Context, walletID string, req dto.UpdateWalletRequest) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.FindWalletByID(ctx, walletID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "Wallet to update not found, ignoring", slog.String("wallet_id", walletID))
			return nil, nil
		}
		s.LogError(ctx, err, "Failed to load wallet for update", slog.String("wallet_id", walletID))
		return nil, err
	}

	updated := false
	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("wallet name is required: %w", apperrors.ErrValidation)
		}
		wallet.Name = name
		updated = true
	}
	if req.Balance != nil {
		balance, err := utils.ParseNonNegativeAmount(*req.Balance)
		if err != nil {
			s.LogError(ctx, err, "Invalid balance", slog.String("raw_balance", *req.Balance))
			return nil, err
		}
		wallet.Balance = balance
		updated = true
	}
	if !updated {
		s.LogDebug(ctx, "No fields provided for wallet update", slog.String("wallet_id", walletID))
		return wallet, nil
	}

	if _, err := s.walletRepo.UpdateWallet(ctx, *wallet); err != nil {
		s.LogError(ctx, err, "Failed to update wallet", slog.String("wallet_id", walletID))
		return nil, err
	}

	s.LogInfo(ctx, "Wallet updated successfully", slog.String("wallet_id", wallet.ID))
	return wallet, nil
}

// DeleteWallet removes the wallet by ID. It never fails on an absent wallet
// and never cascades to transactions or loans referencing it; dangling
// accountId references are a documented limitation.
func (s *walletService) DeleteWallet(ctx context.Context, walletID string) error {
	if err := s.walletRepo.DeleteWallet(ctx, walletID); err != nil {
		s.LogError(ctx, err, "Failed to delete wallet", slog.String("wallet_id", walletID))
		return err
	}
	s.LogInfo(ctx, "Wallet deleted", slog.String("wallet_id", walletID))
	return nil
}

func (s *walletService) TotalBalance(ctx context.Context) (decimal.Decimal, error) {
	wallets, err := s.walletRepo.ListWallets(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list wallets for total balance")
		return decimal.Zero, err
	}
	total := decimal.Zero
	for _, w := range wallets {
		total = total.Add(w.Balance)
	}
	return total, nil
}
