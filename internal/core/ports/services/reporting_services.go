package services

import (
	"context"
	"time"

	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/core/domain"
	"github.com/shopspring/decimal"
)

// MonthlySummary aggregates the month's transaction totals with the current
// wallet and loan standing.
type MonthlySummary struct {
	Month        time.Month
	Year         int
	TotalBalance decimal.Decimal
	Income       decimal.Decimal
	Expense      decimal.Decimal
	LoanGet      decimal.Decimal
	LoanGive     decimal.Decimal
}

// MonthlyStatement is the data backing a statement export: the summary plus
// the month's transactions in insertion-recency order.
type MonthlyStatement struct {
	Summary      MonthlySummary
	Transactions []domain.Transaction
}

// ReportingSvcFacade produces read-only aggregations across the managers.
type ReportingSvcFacade interface {
	Summary(ctx context.Context, month time.Month, year int) (*MonthlySummary, error)
	Statement(ctx context.Context, month time.Month, year int) (*MonthlyStatement, error)
}
