package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date format used by all persisted date fields.
const DateLayout = "2006-01-02"

// TransactionType partitions transactions into the two categories that
// affect wallet balance sign.
type TransactionType string

const (
	Income  TransactionType = "income"
	Expense TransactionType = "expense"
)

// IsValid reports whether t is one of the two known transaction types.
func (t TransactionType) IsValid() bool {
	return t == Income || t == Expense
}

// Transaction represents a single income or expense event affecting exactly
// one wallet's balance. AccountID references (never owns) a Wallet; deleting
// the wallet leaves the reference dangling, which is tolerated.
type Transaction struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	Category  string          `json:"category"`
	Account   string          `json:"account"`
	AccountID string          `json:"accountId"`
	Date      string          `json:"date"` // calendar date, DateLayout
	Type      TransactionType `json:"type"`
	CreatedAt time.Time       `json:"createdAt"`
}

// InMonth reports whether the transaction's date falls in the given
// calendar month. Transactions with an unparseable date never match.
func (t Transaction) InMonth(month time.Month, year int) bool {
	d, err := time.Parse(DateLayout, t.Date)
	if err != nil {
		return false
	}
	return d.Month() == month && d.Year() == year
}
