package domain_test

import (
	"testing"
	"time"

	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestTransaction_InMonth(t *testing.T) {
	tests := []struct {
		name string
		date string
		want bool
	}{
		{
			name: "date inside the month",
			date: "2026-08-15",
			want: true,
		},
		{
			name: "first day of the month",
			date: "2026-08-01",
			want: true,
		},
		{
			name: "previous month",
			date: "2026-07-31",
			want: false,
		},
		{
			name: "same month, different year",
			date: "2025-08-15",
			want: false,
		},
		{
			name: "unparseable date never matches",
			date: "15-08-2026",
			want: false,
		},
		{
			name: "empty date never matches",
			date: "",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			txn := domain.Transaction{Date: tt.date}
			got := txn.InMonth(time.August, 2026)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTransactionType_IsValid(t *testing.T) {
	assert.True(t, domain.Income.IsValid())
	assert.True(t, domain.Expense.IsValid())
	assert.False(t, domain.TransactionType("transfer").IsValid())
	assert.False(t, domain.TransactionType("").IsValid())
}

func TestLoanType_IsValid(t *testing.T) {
	assert.True(t, domain.LoanGet.IsValid())
	assert.True(t, domain.LoanGive.IsValid())
	assert.False(t, domain.LoanType("borrow").IsValid())
}
