package dto

import (
	"github.com/shopspring/decimal"
)

// SummaryParams defines query parameters for the monthly summary. Defaults
// to the current calendar month when omitted.
type SummaryParams struct {
	Month int `form:"month" binding:"omitempty,min=1,max=12"`
	Year  int `form:"year" binding:"omitempty,min=1970"`
}

// MonthlySummaryResponse aggregates the month's activity with the current
// wallet and loan standing.
type MonthlySummaryResponse struct {
	Month        int             `json:"month"`
	Year         int             `json:"year"`
	TotalBalance decimal.Decimal `json:"totalBalance"`
	Income       decimal.Decimal `json:"income"`
	Expense      decimal.Decimal `json:"expense"`
	LoanGet      decimal.Decimal `json:"loanGet"`
	LoanGive     decimal.Decimal `json:"loanGive"`
}
