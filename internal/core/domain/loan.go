package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LoanType distinguishes money owed to the user from money the user owes.
type LoanType string

const (
	LoanGet  LoanType = "get"  // money owed to the user
	LoanGive LoanType = "give" // money the user owes
)

// IsValid reports whether t is one of the two known loan types.
func (t LoanType) IsValid() bool {
	return t == LoanGet || t == LoanGive
}

// LoanStatus tracks settlement. A loan starts active and transitions to
// paid exactly once; paid is terminal.
type LoanStatus string

const (
	LoanActive LoanStatus = "active"
	LoanPaid   LoanStatus = "paid"
)

// Loan represents a tracked debt record, independent of wallet balances.
// The optional wallet linkage is purely informational; creating or settling
// a loan never adjusts a wallet balance.
type Loan struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Amount    decimal.Decimal `json:"amount"`
	Note      string          `json:"note,omitempty"`
	Date      string          `json:"date"` // calendar date, DateLayout
	Type      LoanType        `json:"type"`
	Status    LoanStatus      `json:"status"`
	Account   string          `json:"account,omitempty"`
	AccountID string          `json:"accountId,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}
