package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/SscSPs/salary_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/salary_ledger/internal/core/ports/services"
	"github.com/SscSPs/salary_ledger/internal/dto"
	"github.com/SscSPs/salary_ledger/internal/middleware"
	"github.com/SscSPs/salary_ledger/internal/platform/clock"
	"github.com/gin-gonic/gin"
)

const defaultTrailingDays = 30

// attendanceHandler handles daily attendance marking and lookups.
type attendanceHandler struct {
	attendanceService  portssvc.AttendanceSvcFacade
	aggregationService portssvc.AggregationSvcFacade
	clock              clock.Clock
}

// registerAttendanceRoutes registers routes related to attendance.
func registerAttendanceRoutes(
	rg *gin.RouterGroup,
	as portssvc.AttendanceSvcFacade,
	ags portssvc.AggregationSvcFacade,
	clk clock.Clock,
) {
	h := &attendanceHandler{attendanceService: as, aggregationService: ags, clock: clk}

	rg.POST("/attendance", h.markAttendance)
	rg.GET("/attendance/grid", h.monthlyGrid)
	rg.GET("/employees/:employeeID/attendance", h.employeeAttendance)
	rg.GET("/employees/:employeeID/attendance/trailing", h.trailingAttendance)
}

// markAttendance godoc
// @Summary Mark attendance for a day
// @Description Upserts one record per listed employee. Entries with an empty status are skipped. The whole batch fails if any employee is unknown.
// @Tags attendance
// @Accept  json
// @Produce  json
// @Param   request body dto.MarkAttendanceRequest true "Markings"
// @Success 200 {object} dto.MarkAttendanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Unknown employee"
// @Security BearerAuth
// @Router /attendance [post]
func (h *attendanceHandler) markAttendance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	var req dto.MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for MarkAttendance", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	date, err := time.Parse(domain.DateLayout, req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "date must be YYYY-MM-DD"})
		return
	}

	marks := make([]domain.AttendanceMark, 0, len(req.Entries))
	for _, e := range req.Entries {
		mark := domain.AttendanceMark{EmployeeID: e.EmployeeID, Status: e.Status, Note: e.Note}
		if mark.CheckIn, err = optionalTimeOfDay(e.CheckIn); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		if mark.CheckOut, err = optionalTimeOfDay(e.CheckOut); err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		marks = append(marks, mark)
	}

	marked, err := h.attendanceService.MarkAttendance(c.Request.Context(), date, marks, userID)
	if err != nil {
		respondError(c, logger, err, "mark attendance")
		return
	}
	logger.Info("Attendance marked", slog.String("date", req.Date), slog.Int("marked", marked))
	c.JSON(http.StatusOK, dto.MarkAttendanceResponse{Marked: marked})
}

func optionalTimeOfDay(s *string) (*domain.TimeOfDay, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := domain.ParseTimeOfDay(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// monthlyGrid godoc
// @Summary Attendance grid for a month
// @Description Each employee's records keyed by day of month. Defaults to the current month.
// @Tags attendance
// @Produce  json
// @Param   year query int false "Year"
// @Param   month query int false "Month (1-12)"
// @Success 200 {object} map[string]domain.EmployeeAttendanceGrid
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /attendance/grid [get]
func (h *attendanceHandler) monthlyGrid(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	year, month, ok := bindMonth(c, h.clock)
	if !ok {
		return
	}
	grid, err := h.aggregationService.MonthlyAttendanceGrid(c.Request.Context(), year, month)
	if err != nil {
		respondError(c, logger, err, "build attendance grid")
		return
	}
	c.JSON(http.StatusOK, grid)
}

// employeeAttendance godoc
// @Summary An employee's attendance over a date range
// @Tags attendance
// @Produce  json
// @Param   employeeID path int true "Employee ID"
// @Param   start query string true "First day (YYYY-MM-DD)"
// @Param   end query string true "Last day (YYYY-MM-DD)"
// @Success 200 {object} dto.AttendanceReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/{employeeID}/attendance [get]
func (h *attendanceHandler) employeeAttendance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID, ok := int64Param(c, "employeeID")
	if !ok {
		return
	}
	var params dto.AttendanceRangeParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	start, errStart := time.Parse(domain.DateLayout, params.Start)
	end, errEnd := time.Parse(domain.DateLayout, params.End)
	if errStart != nil || errEnd != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "start and end must be YYYY-MM-DD"})
		return
	}

	summary, err := h.aggregationService.AttendanceSummary(c.Request.Context(), employeeID, start, end)
	if err != nil {
		respondError(c, logger, err, "summarize attendance")
		return
	}
	records, err := h.attendanceService.ListAttendance(c.Request.Context(), employeeID, start, end)
	if err != nil {
		respondError(c, logger, err, "list attendance")
		return
	}
	c.JSON(http.StatusOK, dto.AttendanceReportResponse{Summary: *summary, Records: records})
}

// trailingAttendance godoc
// @Summary An employee's attendance summary for the last N days
// @Tags attendance
// @Produce  json
// @Param   employeeID path int true "Employee ID"
// @Param   days query int false "Window length in days" default(30)
// @Success 200 {object} domain.AttendanceSummary
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/{employeeID}/attendance/trailing [get]
func (h *attendanceHandler) trailingAttendance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID, ok := int64Param(c, "employeeID")
	if !ok {
		return
	}
	days := defaultTrailingDays
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "days must be a non-negative integer"})
			return
		}
		days = n
	}

	summary, err := h.aggregationService.TrailingAttendanceSummary(c.Request.Context(), employeeID, days)
	if err != nil {
		respondError(c, logger, err, "summarize attendance")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// bindMonth reads year and month query parameters, defaulting each to the
// current month in the business time zone.
func bindMonth(c *gin.Context, clk clock.Clock) (int, time.Month, bool) {
	var params dto.MonthParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return 0, 0, false
	}
	today := clock.Today(clk)
	year, month := today.Year(), today.Month()
	if params.Year != 0 {
		year = params.Year
	}
	if params.Month != 0 {
		month = time.Month(params.Month)
	}
	return year, month, true
}
