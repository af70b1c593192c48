package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/salary_ledger/internal/core/ports/services"
	"github.com/SscSPs/salary_ledger/internal/dto"
	"github.com/SscSPs/salary_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// employeeHandler handles HTTP requests related to employees.
type employeeHandler struct {
	employeeService portssvc.EmployeeSvcFacade
	balanceService  portssvc.BalanceSvcFacade
}

func newEmployeeHandler(es portssvc.EmployeeSvcFacade, bs portssvc.BalanceSvcFacade) *employeeHandler {
	return &employeeHandler{employeeService: es, balanceService: bs}
}

// registerEmployeeRoutes registers routes related to employees.
func registerEmployeeRoutes(rg *gin.RouterGroup, es portssvc.EmployeeSvcFacade, bs portssvc.BalanceSvcFacade) {
	h := newEmployeeHandler(es, bs)

	employees := rg.Group("/employees")
	{
		employees.GET("", h.listEmployees)
		employees.POST("", h.createEmployee)
		employees.GET("/:employeeID", h.getEmployee)
		employees.PUT("/:employeeID", h.updateEmployee)
		employees.DELETE("/:employeeID", h.deleteEmployee)
		employees.PUT("/:employeeID/salary-payment-date", h.updateSalaryPaymentDate)
		employees.GET("/:employeeID/balance", h.getBalance)
	}
}

// listEmployees godoc
// @Summary List employees
// @Description Lists employees ordered by name, optionally filtered by name or designation
// @Tags employees
// @Produce  json
// @Param   search query string false "Case-insensitive name or designation filter"
// @Success 200 {array} dto.EmployeeResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees [get]
func (h *employeeHandler) listEmployees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ListEmployeesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	employees, err := h.employeeService.ListEmployees(c.Request.Context(), params.Search)
	if err != nil {
		respondError(c, logger, err, "list employees")
		return
	}
	c.JSON(http.StatusOK, dto.ToListEmployeeResponse(employees))
}

// createEmployee godoc
// @Summary Create an employee
// @Description Onboards an employee with a monthly salary
// @Tags employees
// @Accept  json
// @Produce  json
// @Param   employee body dto.CreateEmployeeRequest true "Employee details"
// @Success 201 {object} dto.EmployeeResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees [post]
func (h *employeeHandler) createEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEmployee", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "create employee")
		return
	}
	logger.Info("Employee created", slog.Int64("employee_id", employee.EmployeeID))
	c.JSON(http.StatusCreated, dto.ToEmployeeResponse(employee))
}

// getEmployee godoc
// @Summary Get an employee
// @Tags employees
// @Produce  json
// @Param   employeeID path int true "Employee ID"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/{employeeID} [get]
func (h *employeeHandler) getEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID, ok := int64Param(c, "employeeID")
	if !ok {
		return
	}

	employee, err := h.employeeService.GetEmployee(c.Request.Context(), employeeID)
	if err != nil {
		respondError(c, logger, err, "retrieve employee")
		return
	}
	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// updateEmployee godoc
// @Summary Update an employee
// @Description Updates name, designation, salary or join date. Salary cannot drop below what was already withdrawn.
// @Tags employees
// @Accept  json
// @Produce  json
// @Param   employeeID path int true "Employee ID"
// @Param   employee body dto.UpdateEmployeeRequest true "Fields to update"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/{employeeID} [put]
func (h *employeeHandler) updateEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID, ok := int64Param(c, "employeeID")
	if !ok {
		return
	}
	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	employee, err := h.employeeService.UpdateEmployee(c.Request.Context(), employeeID, req)
	if err != nil {
		respondError(c, logger, err, "update employee")
		return
	}
	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// deleteEmployee godoc
// @Summary Delete an employee
// @Description Deletes the employee together with their withdrawals and attendance
// @Tags employees
// @Param   employeeID path int true "Employee ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/{employeeID} [delete]
func (h *employeeHandler) deleteEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID, ok := int64Param(c, "employeeID")
	if !ok {
		return
	}

	if err := h.employeeService.DeleteEmployee(c.Request.Context(), employeeID); err != nil {
		respondError(c, logger, err, "delete employee")
		return
	}
	logger.Info("Employee deleted", slog.Int64("employee_id", employeeID))
	c.Status(http.StatusNoContent)
}

// updateSalaryPaymentDate godoc
// @Summary Set the salary payment date
// @Tags employees
// @Accept  json
// @Produce  json
// @Param   employeeID path int true "Employee ID"
// @Param   request body dto.UpdateSalaryPaymentDateRequest true "Payment date"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/{employeeID}/salary-payment-date [put]
func (h *employeeHandler) updateSalaryPaymentDate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID, ok := int64Param(c, "employeeID")
	if !ok {
		return
	}
	var req dto.UpdateSalaryPaymentDateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	employee, err := h.employeeService.UpdateSalaryPaymentDate(c.Request.Context(), employeeID, req)
	if err != nil {
		respondError(c, logger, err, "update salary payment date")
		return
	}
	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// getBalance godoc
// @Summary Get an employee's remaining balance
// @Tags withdrawals
// @Produce  json
// @Param   employeeID path int true "Employee ID"
// @Success 200 {object} dto.BalanceResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /employees/{employeeID}/balance [get]
func (h *employeeHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID, ok := int64Param(c, "employeeID")
	if !ok {
		return
	}

	employee, err := h.employeeService.GetEmployee(c.Request.Context(), employeeID)
	if err != nil {
		respondError(c, logger, err, "retrieve balance")
		return
	}
	remaining, err := h.balanceService.RemainingBalance(c.Request.Context(), employeeID)
	if err != nil {
		respondError(c, logger, err, "retrieve balance")
		return
	}
	c.JSON(http.StatusOK, dto.BalanceResponse{
		EmployeeID:     employeeID,
		Salary:         employee.Salary,
		TotalWithdrawn: employee.TotalWithdrawn,
		Remaining:      remaining,
	})
}
