package dto

import (
	"time"

	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateWalletRequest defines the data needed to create a new wallet.
// InitialBalance arrives as the user typed it, possibly with thousands
// separators ("1.000.000"); the service strips and parses it.
type CreateWalletRequest struct {
	Name           string `json:"name" binding:"required"`
	InitialBalance string `json:"initialBalance" binding:"required"`
}

// UpdateWalletRequest defines the data allowed for editing a wallet.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateWalletRequest struct {
	Name    *string `json:"name"`
	Balance *string `json:"balance"` // same formatted form as InitialBalance
}

// WalletResponse defines the data returned for a wallet. Mirrors domain.Wallet.
type WalletResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Balance        decimal.Decimal `json:"balance"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	CreatedAt      time.Time       `json:"createdAt"`
}

// ToWalletResponse converts a domain.Wallet to WalletResponse DTO.
func ToWalletResponse(w *domain.Wallet) WalletResponse {
	return WalletResponse{
		ID:             w.ID,
		Name:           w.Name,
		Balance:        w.Balance,
		InitialBalance: w.InitialBalance,
		CreatedAt:      w.CreatedAt,
	}
}

// ToListWalletResponse converts a slice of domain.Wallet to response DTOs.
func ToListWalletResponse(wallets []domain.Wallet) []WalletResponse {
	res := make([]WalletResponse, len(wallets))
	for i, w := range wallets {
		res[i] = ToWalletResponse(&w)
	}
	return res
}

// TotalBalanceResponse wraps the sum of all wallet balances.
type TotalBalanceResponse struct {
	TotalBalance decimal.Decimal `json:"totalBalance"`
}
