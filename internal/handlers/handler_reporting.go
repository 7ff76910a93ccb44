package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/core/ports/services"
	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/dto"
	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/middleware"
	"github.com/MTeguhWijaksono07/TI215310-tubes-dpm-untungnyakutakpilihmenyerah/internal/reports"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for aggregated reports.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{reportingService: rs}
}

// registerReportingRoutes registers routes related to reports.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	rep := rg.Group("/reports")
	{
		rep.GET("/summary", h.monthlySummary)
		rep.GET("/statement.pdf", h.monthlyStatementPDF)
	}
}

func summaryPeriod(params dto.SummaryParams) (time.Month, int) {
	now := time.Now()
	month, year := now.Month(), now.Year()
	if params.Month != 0 {
		month = time.Month(params.Month)
	}
	if params.Year != 0 {
		year = params.Year
	}
	return month, year
}

// monthlySummary godoc
// @Summary Monthly summary
// @Description Returns the month's income/expense totals with the current wallet and loan standing
// @Tags reports
// @Produce json
// @Param month query int false "Month (1-12), defaults to current"
// @Param year query int false "Year, defaults to current"
// @Success 200 {object} dto.MonthlySummaryResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to build summary"
// @Security BearerAuth
// @Router /reports/summary [get]
func (h *reportingHandler) monthlySummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.SummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for MonthlySummary", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	month, year := summaryPeriod(params)
	summary, err := h.reportingService.Summary(c.Request.Context(), month, year)
	if err != nil {
		logger.Error("Failed to build monthly summary", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build summary"})
		return
	}

	c.JSON(http.StatusOK, toSummaryResponse(summary))
}

// monthlyStatementPDF godoc
// @Summary Monthly statement export
// @Description Streams the month's statement as a PDF document
// @Tags reports
// @Produce application/pdf
// @Param month query int false "Month (1-12), defaults to current"
// @Param year query int false "Year, defaults to current"
// @Success 200 {file} file "PDF statement"
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Failure 500 {object} map[string]string "Failed to build statement"
// @Security BearerAuth
// @Router /reports/statement.pdf [get]
func (h *reportingHandler) monthlyStatementPDF(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.SummaryParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for MonthlyStatement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	month, year := summaryPeriod(params)
	statement, err := h.reportingService.Statement(c.Request.Context(), month, year)
	if err != nil {
		logger.Error("Failed to build monthly statement", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build statement"})
		return
	}

	filename := fmt.Sprintf("statement-%04d-%02d.pdf", year, int(month))
	c.Header("Content-Type", "application/pdf")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Status(http.StatusOK)

	if err := reports.WriteStatementPDF(c.Writer, statement); err != nil {
		logger.Error("Failed to render statement PDF", slog.String("error", err.Error()))
	}
}

func toSummaryResponse(s *portssvc.MonthlySummary) dto.MonthlySummaryResponse {
	return dto.MonthlySummaryResponse{
		Month:        int(s.Month),
		Year:         s.Year,
		TotalBalance: s.TotalBalance,
		Income:       s.Income,
		Expense:      s.Expense,
		LoanGet:      s.LoanGet,
		LoanGive:     s.LoanGive,
	}
}
