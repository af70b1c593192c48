package handlers

import (
	"bytes"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/salary_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/salary_ledger/internal/core/ports/services"
	"github.com/SscSPs/salary_ledger/internal/dto"
	"github.com/SscSPs/salary_ledger/internal/middleware"
	"github.com/SscSPs/salary_ledger/internal/reports"
	"github.com/gin-gonic/gin"
)

// withdrawalHandler handles salary withdrawals and their slips.
type withdrawalHandler struct {
	balanceService  portssvc.BalanceSvcFacade
	employeeService portssvc.EmployeeSvcFacade
	reportService   portssvc.ReportSvcFacade
	renderer        *reports.Renderer
}

// registerWithdrawalRoutes registers routes related to withdrawals.
func registerWithdrawalRoutes(
	rg *gin.RouterGroup,
	bs portssvc.BalanceSvcFacade,
	es portssvc.EmployeeSvcFacade,
	rs portssvc.ReportSvcFacade,
	renderer *reports.Renderer,
) {
	h := &withdrawalHandler{balanceService: bs, employeeService: es, reportService: rs, renderer: renderer}

	employee := rg.Group("/employees/:employeeID")
	{
		employee.POST("/withdrawals", h.recordWithdrawal)
		employee.GET("/withdrawals", h.listWithdrawals)
		employee.GET("/reconciliation", h.reconcile)
		employee.POST("/reconciliation/repair", h.repair)
	}
	rg.GET("/withdrawals/:entryID/slip.pdf", h.downloadSlip)
}

// recordWithdrawal godoc
// @Summary Record a salary withdrawal
// @Description Appends a withdrawal if it fits in the remaining balance. Date defaults to today.
// @Tags withdrawals
// @Accept  json
// @Produce  json
// @Param   employeeID path int true "Employee ID"
// @Param   withdrawal body dto.RecordWithdrawalRequest true "Withdrawal"
// @Success 201 {object} dto.LedgerEntryResponse
// @Failure 400 {object} ErrorResponse "Non-positive amount or bad date"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Failure 422 {object} ErrorResponse "Amount exceeds remaining balance"
// @Security BearerAuth
// @Router /employees/{employeeID}/withdrawals [post]
func (h *withdrawalHandler) recordWithdrawal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID, ok := int64Param(c, "employeeID")
	if !ok {
		return
	}
	var req dto.RecordWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RecordWithdrawal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	var date time.Time
	if req.Date != "" {
		var err error
		if date, err = time.Parse(domain.DateLayout, req.Date); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "date must be YYYY-MM-DD"})
			return
		}
	}

	entry, err := h.balanceService.RecordWithdrawal(c.Request.Context(), employeeID, *req.Amount, date, req.Note)
	if err != nil {
		respondError(c, logger, err, "record withdrawal")
		return
	}
	c.JSON(http.StatusCreated, dto.ToLedgerEntryResponse(entry))
}

// listWithdrawals godoc
// @Summary List an employee's withdrawals
// @Description Newest first, paged with an opaque token
// @Tags withdrawals
// @Produce  json
// @Param   employeeID path int true "Employee ID"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListLedgerEntriesResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/{employeeID}/withdrawals [get]
func (h *withdrawalHandler) listWithdrawals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID, ok := int64Param(c, "employeeID")
	if !ok {
		return
	}
	var params dto.ListLedgerEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.employeeService.ListLedgerEntries(c.Request.Context(), employeeID, params)
	if err != nil {
		respondError(c, logger, err, "list withdrawals")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// reconcile godoc
// @Summary Compare the stored withdrawn total with the ledger
// @Tags withdrawals
// @Produce  json
// @Param   employeeID path int true "Employee ID"
// @Success 200 {object} domain.Reconciliation
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/{employeeID}/reconciliation [get]
func (h *withdrawalHandler) reconcile(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID, ok := int64Param(c, "employeeID")
	if !ok {
		return
	}
	rec, err := h.balanceService.Reconcile(c.Request.Context(), employeeID)
	if err != nil {
		respondError(c, logger, err, "reconcile balance")
		return
	}
	c.JSON(http.StatusOK, rec)
}

// repair godoc
// @Summary Rewrite the stored withdrawn total from the ledger
// @Tags withdrawals
// @Produce  json
// @Param   employeeID path int true "Employee ID"
// @Success 200 {object} domain.Reconciliation
// @Failure 400 {object} ErrorResponse "Ledger exceeds salary"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/{employeeID}/reconciliation/repair [post]
func (h *withdrawalHandler) repair(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID, ok := int64Param(c, "employeeID")
	if !ok {
		return
	}
	rec, err := h.balanceService.RepairTotal(c.Request.Context(), employeeID)
	if err != nil {
		respondError(c, logger, err, "repair balance")
		return
	}
	if rec.Repaired {
		logger.Warn("Withdrawn total repaired", slog.Int64("employee_id", employeeID), slog.String("drift", rec.Drift.String()))
	}
	c.JSON(http.StatusOK, rec)
}

// downloadSlip godoc
// @Summary Download a withdrawal slip
// @Tags documents
// @Produce  application/pdf
// @Param   entryID path int true "Ledger entry ID"
// @Success 200 {file} file
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /withdrawals/{entryID}/slip.pdf [get]
func (h *withdrawalHandler) downloadSlip(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	entryID, ok := int64Param(c, "entryID")
	if !ok {
		return
	}
	data, err := h.reportService.WithdrawalSlip(c.Request.Context(), entryID)
	if err != nil {
		respondError(c, logger, err, "build withdrawal slip")
		return
	}

	var buf bytes.Buffer
	if err := h.renderer.WithdrawalSlipPDF(&buf, data); err != nil {
		respondError(c, logger, err, "render withdrawal slip")
		return
	}
	sendDocument(c, reports.SlipFileName(data), reports.ContentTypePDF, &buf)
}

// sendDocument answers with a file download.
func sendDocument(c *gin.Context, filename, contentType string, buf *bytes.Buffer) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, contentType, buf.Bytes())
}
