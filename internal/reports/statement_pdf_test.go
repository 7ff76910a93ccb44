package reports

import (
	"bytes"
	"testing"
	"time"

	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/core/domain"
	portssvc "github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteStatementPDF(t *testing.T) {
	statement := &portssvc.MonthlyStatement{
		Summary: portssvc.MonthlySummary{
			Month:        time.August,
			Year:         2026,
			TotalBalance: decimal.NewFromInt(100000),
			Income:       decimal.NewFromInt(100000),
			Expense:      decimal.NewFromInt(30000),
			LoanGet:      decimal.NewFromInt(20000),
			LoanGive:     decimal.NewFromInt(5000),
		},
		Transactions: []domain.Transaction{
			{ID: "t2", Name: "Groceries", Date: "2026-08-20", Type: domain.Expense, Amount: decimal.NewFromInt(30000), Category: "food"},
			{ID: "t1", Name: "Salary", Date: "2026-08-01", Type: domain.Income, Amount: decimal.NewFromInt(100000), Category: "work"},
		},
	}

	var buf bytes.Buffer
	err := WriteStatementPDF(&buf, statement)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")), "output should be a PDF document")
	assert.Greater(t, buf.Len(), 1000)
}

func TestWriteStatementPDF_EmptyMonth(t *testing.T) {
	statement := &portssvc.MonthlyStatement{
		Summary: portssvc.MonthlySummary{Month: time.January, Year: 2026},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteStatementPDF(&buf, statement))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}
