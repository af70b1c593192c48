package handlers

import (
	"bytes"
	"io"
	"net/http"

	"github.com/SscSPs/salary_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/salary_ledger/internal/core/ports/services"
	"github.com/SscSPs/salary_ledger/internal/middleware"
	"github.com/SscSPs/salary_ledger/internal/platform/clock"
	"github.com/SscSPs/salary_ledger/internal/reports"
	"github.com/gin-gonic/gin"
)

// reportHandler serves the dashboard, summaries and downloadable documents.
type reportHandler struct {
	reportService      portssvc.ReportSvcFacade
	aggregationService portssvc.AggregationSvcFacade
	renderer           *reports.Renderer
	clock              clock.Clock
}

// registerReportRoutes registers routes related to reports and exports.
func registerReportRoutes(
	rg *gin.RouterGroup,
	rs portssvc.ReportSvcFacade,
	ags portssvc.AggregationSvcFacade,
	renderer *reports.Renderer,
	clk clock.Clock,
) {
	h := &reportHandler{reportService: rs, aggregationService: ags, renderer: renderer, clock: clk}

	rg.GET("/dashboard", h.dashboard)

	reportsGroup := rg.Group("/reports")
	{
		reportsGroup.GET("/monthly", h.monthlySummary)
		reportsGroup.GET("/monthly.pdf", h.monthlyPDF)
		reportsGroup.GET("/monthly.xlsx", h.monthlyXLSX)
		reportsGroup.GET("/fleet", h.fleetTotals)
	}

	exports := rg.Group("/exports")
	{
		exports.GET("/employees.csv", h.rosterCSV)
		exports.GET("/employees.xlsx", h.rosterXLSX)
	}

	rg.GET("/employees/:employeeID/history.pdf", h.historyPDF)
}

// dashboard godoc
// @Summary Landing page totals and recent withdrawals
// @Tags reports
// @Produce  json
// @Success 200 {object} domain.DashboardData
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /dashboard [get]
func (h *reportHandler) dashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	data, err := h.reportService.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "load dashboard")
		return
	}
	c.JSON(http.StatusOK, data)
}

// monthlySummary godoc
// @Summary Withdrawals for one calendar month
// @Tags reports
// @Produce  json
// @Param   year query int false "Year"
// @Param   month query int false "Month (1-12)"
// @Success 200 {object} domain.MonthlySummary
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/monthly [get]
func (h *reportHandler) monthlySummary(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	year, month, ok := bindMonth(c, h.clock)
	if !ok {
		return
	}
	summary, err := h.aggregationService.MonthlySummary(c.Request.Context(), year, month)
	if err != nil {
		respondError(c, logger, err, "build monthly summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// monthlyPDF godoc
// @Summary Monthly salary and attendance report as PDF
// @Tags documents
// @Produce  application/pdf
// @Param   year query int false "Year"
// @Param   month query int false "Month (1-12)"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/monthly.pdf [get]
func (h *reportHandler) monthlyPDF(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	year, month, ok := bindMonth(c, h.clock)
	if !ok {
		return
	}
	data, err := h.reportService.MonthlyReport(c.Request.Context(), year, month)
	if err != nil {
		respondError(c, logger, err, "build monthly report")
		return
	}
	var buf bytes.Buffer
	if err := h.renderer.MonthlyReportPDF(&buf, data); err != nil {
		respondError(c, logger, err, "render monthly report")
		return
	}
	sendDocument(c, reports.MonthlyReportFileName(year, month, "pdf"), reports.ContentTypePDF, &buf)
}

// monthlyXLSX godoc
// @Summary Monthly salary and attendance report as a spreadsheet
// @Tags documents
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param   year query int false "Year"
// @Param   month query int false "Month (1-12)"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /reports/monthly.xlsx [get]
func (h *reportHandler) monthlyXLSX(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	year, month, ok := bindMonth(c, h.clock)
	if !ok {
		return
	}
	data, err := h.reportService.MonthlyReport(c.Request.Context(), year, month)
	if err != nil {
		respondError(c, logger, err, "build monthly report")
		return
	}
	var buf bytes.Buffer
	if err := h.renderer.MonthlyReportXLSX(&buf, data); err != nil {
		respondError(c, logger, err, "render monthly report")
		return
	}
	sendDocument(c, reports.MonthlyReportFileName(year, month, "xlsx"), reports.ContentTypeXLSX, &buf)
}

// fleetTotals godoc
// @Summary Salary totals across all employees
// @Tags reports
// @Produce  json
// @Success 200 {object} domain.FleetTotals
// @Security BearerAuth
// @Router /reports/fleet [get]
func (h *reportHandler) fleetTotals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	totals, err := h.aggregationService.FleetTotals(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "compute totals")
		return
	}
	c.JSON(http.StatusOK, totals)
}

// rosterCSV godoc
// @Summary Export all employees as CSV
// @Tags documents
// @Produce  text/csv
// @Success 200 {file} file
// @Security BearerAuth
// @Router /exports/employees.csv [get]
func (h *reportHandler) rosterCSV(c *gin.Context) {
	h.roster(c, "csv", reports.ContentTypeCSV, h.renderer.RosterCSV)
}

// rosterXLSX godoc
// @Summary Export all employees as a spreadsheet
// @Tags documents
// @Produce  application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file
// @Security BearerAuth
// @Router /exports/employees.xlsx [get]
func (h *reportHandler) rosterXLSX(c *gin.Context) {
	h.roster(c, "xlsx", reports.ContentTypeXLSX, h.renderer.RosterXLSX)
}

type rosterRenderFunc func(io.Writer, []domain.EmployeeRosterRow) error

func (h *reportHandler) roster(c *gin.Context, ext, contentType string, render rosterRenderFunc) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	rows, err := h.reportService.EmployeeRoster(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "export employees")
		return
	}
	var buf bytes.Buffer
	if err := render(&buf, rows); err != nil {
		respondError(c, logger, err, "render employee export")
		return
	}
	name := reports.RosterFileName(h.renderer.CompanyName, h.clock.Now(), ext)
	sendDocument(c, name, contentType, &buf)
}

// historyPDF godoc
// @Summary Download an employee's salary history
// @Tags documents
// @Produce  application/pdf
// @Param   employeeID path int true "Employee ID"
// @Success 200 {file} file
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/{employeeID}/history.pdf [get]
func (h *reportHandler) historyPDF(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID, ok := int64Param(c, "employeeID")
	if !ok {
		return
	}
	data, err := h.reportService.EmployeeHistory(c.Request.Context(), employeeID)
	if err != nil {
		respondError(c, logger, err, "build salary history")
		return
	}
	var buf bytes.Buffer
	if err := h.renderer.EmployeeHistoryPDF(&buf, data); err != nil {
		respondError(c, logger, err, "render salary history")
		return
	}
	sendDocument(c, reports.HistoryFileName(data), reports.ContentTypePDF, &buf)
}
