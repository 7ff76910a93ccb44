// Package reports renders reporting data into exportable documents.
package reports

import (
	"fmt"
	"io"
	"strings"

	portssvc "github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/core/ports/services"
	"github.com/phpdave11/gofpdf"
	"github.com/shopspring/decimal"
)

const maxStatementRows = 200

// WriteStatementPDF renders a monthly statement as an A4 PDF.
func WriteStatementPDF(w io.Writer, st *portssvc.MonthlyStatement) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(14, 14, 14)
	pdf.AddPage()

	period := fmt.Sprintf("%s %d", st.Summary.Month, st.Summary.Year)

	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "Monthly Statement")
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(80, 80, 80)
	pdf.Cell(0, 6, "Period: "+period)
	pdf.Ln(10)

	pdf.SetDrawColor(200, 200, 200)
	pdf.SetFillColor(248, 248, 248)
	pdf.SetTextColor(20, 20, 20)
	pdf.SetFont("Helvetica", "B", 11)

	sumW := []float64{62, 62, 62}
	pdf.CellFormat(sumW[0], 10, "Income", "1", 0, "C", true, 0, "")
	pdf.CellFormat(sumW[1], 10, "Expense", "1", 0, "C", true, 0, "")
	pdf.CellFormat(sumW[2], 10, "Total Balance", "1", 1, "C", true, 0, "")

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(sumW[0], 10, formatAmount(st.Summary.Income), "1", 0, "C", false, 0, "")
	pdf.CellFormat(sumW[1], 10, formatAmount(st.Summary.Expense), "1", 0, "C", false, 0, "")
	pdf.CellFormat(sumW[2], 10, formatAmount(st.Summary.TotalBalance), "1", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 11)
	pdf.SetFillColor(248, 248, 248)
	loanW := []float64{93, 93}
	pdf.CellFormat(loanW[0], 10, "Loans outstanding (get)", "1", 0, "C", true, 0, "")
	pdf.CellFormat(loanW[1], 10, "Loans outstanding (give)", "1", 1, "C", true, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(loanW[0], 10, formatAmount(st.Summary.LoanGet), "1", 0, "C", false, 0, "")
	pdf.CellFormat(loanW[1], 10, formatAmount(st.Summary.LoanGive), "1", 1, "C", false, 0, "")
	pdf.Ln(6)

	colW := []float64{22, 26, 72, 30, 32}
	writeHeader := func() {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.SetFillColor(245, 245, 245)
		pdf.CellFormat(colW[0], 8, "TYPE", "1", 0, "C", true, 0, "")
		pdf.CellFormat(colW[1], 8, "DATE", "1", 0, "C", true, 0, "")
		pdf.CellFormat(colW[2], 8, "TITLE", "1", 0, "L", true, 0, "")
		pdf.CellFormat(colW[3], 8, "AMOUNT", "1", 0, "R", true, 0, "")
		pdf.CellFormat(colW[4], 8, "CATEGORY", "1", 1, "C", true, 0, "")
		pdf.SetFont("Helvetica", "", 9)
		pdf.SetTextColor(30, 30, 30)
	}
	writeHeader()

	for i, t := range st.Transactions {
		if i >= maxStatementRows {
			pdf.SetFont("Helvetica", "I", 9)
			pdf.CellFormat(0, 8, "truncated (too many rows)", "1", 1, "C", false, 0, "")
			break
		}
		if pdf.GetY() > 270 {
			pdf.AddPage()
			writeHeader()
		}

		amount := formatAmount(t.Amount)
		if t.Type == "expense" {
			amount = "-" + amount
		}

		pdf.CellFormat(colW[0], 8, strings.ToUpper(string(t.Type)), "1", 0, "C", false, 0, "")
		pdf.CellFormat(colW[1], 8, t.Date, "1", 0, "C", false, 0, "")
		pdf.CellFormat(colW[2], 8, trimTo(t.Name, 60), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colW[3], 8, amount, "1", 0, "R", false, 0, "")
		pdf.CellFormat(colW[4], 8, trimTo(t.Category, 24), "1", 1, "C", false, 0, "")
	}

	if len(st.Transactions) == 0 {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.CellFormat(0, 8, "No transactions this month", "1", 1, "C", false, 0, "")
	}

	return pdf.Output(w)
}

func formatAmount(d decimal.Decimal) string {
	return d.StringFixed(0)
}

func trimTo(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
