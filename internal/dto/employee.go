package dto

import (
	"time"

	"github.com/SscSPs/salary_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest defines the data needed to onboard an employee.
type CreateEmployeeRequest struct {
	Name        string           `json:"name" binding:"required,max=100"`
	Designation string           `json:"designation" binding:"required,max=100"`
	Salary      *decimal.Decimal `json:"salary" binding:"required"`
	JoinDate    string           `json:"joinDate" binding:"required,datetime=2006-01-02"`
}

// UpdateEmployeeRequest defines the editable employee fields.
// Pointers distinguish omitted fields from zero values.
type UpdateEmployeeRequest struct {
	Name        *string          `json:"name" binding:"omitempty,min=1,max=100"`
	Designation *string          `json:"designation" binding:"omitempty,min=1,max=100"`
	Salary      *decimal.Decimal `json:"salary"`
	JoinDate    *string          `json:"joinDate" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateSalaryPaymentDateRequest sets the date the salary was paid out.
type UpdateSalaryPaymentDateRequest struct {
	SalaryPaymentDate string `json:"salaryPaymentDate" binding:"required,datetime=2006-01-02"`
}

// ListEmployeesParams defines query parameters for listing employees.
type ListEmployeesParams struct {
	Search string `form:"search"`
}

// EmployeeResponse defines the data returned for an employee.
type EmployeeResponse struct {
	EmployeeID        int64           `json:"employeeID"`
	Code              string          `json:"code"`
	Name              string          `json:"name"`
	Designation       string          `json:"designation"`
	Salary            decimal.Decimal `json:"salary"`
	JoinDate          string          `json:"joinDate"`
	SalaryPaymentDate *string         `json:"salaryPaymentDate,omitempty"`
	TotalWithdrawn    decimal.Decimal `json:"totalWithdrawn"`
	Remaining         decimal.Decimal `json:"remaining"`
	CreatedAt         time.Time       `json:"createdAt"`
	UpdatedAt         time.Time       `json:"updatedAt"`
}

// ToEmployeeResponse converts a domain.Employee to EmployeeResponse DTO
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	resp := EmployeeResponse{
		EmployeeID:     e.EmployeeID,
		Code:           e.Code(),
		Name:           e.Name,
		Designation:    e.Designation,
		Salary:         e.Salary,
		JoinDate:       e.JoinDate.Format(domain.DateLayout),
		TotalWithdrawn: e.TotalWithdrawn,
		Remaining:      e.Remaining(),
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
	if e.SalaryPaymentDate != nil {
		d := e.SalaryPaymentDate.Format(domain.DateLayout)
		resp.SalaryPaymentDate = &d
	}
	return resp
}

// ToListEmployeeResponse converts a slice of domain.Employee to response DTOs
func ToListEmployeeResponse(employees []domain.Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(employees))
	for i := range employees {
		res[i] = ToEmployeeResponse(&employees[i])
	}
	return res
}
