package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet represents a named account holding a balance.
// This is the primary representation used by services; it also defines the
// exact JSON layout of records inside the persisted "wallets" collection.
type Wallet struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Balance        decimal.Decimal `json:"balance"`
	InitialBalance decimal.Decimal `json:"initialBalance"`
	CreatedAt      time.Time       `json:"createdAt"`
}
