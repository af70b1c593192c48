package services

import (
	"context"

	"github.com/SscSPs/salary_ledger/internal/core/domain"
	"github.com/SscSPs/salary_ledger/internal/dto"
)

// EmployeeReaderSvc defines read operations for employees.
type EmployeeReaderSvc interface {
	GetEmployee(ctx context.Context, employeeID int64) (*domain.Employee, error)
	// ListEmployees filters by name or designation when search is non-empty.
	ListEmployees(ctx context.Context, search string) ([]domain.Employee, error)
	// ListLedgerEntries pages through an employee's withdrawals, newest first.
	ListLedgerEntries(ctx context.Context, employeeID int64, params dto.ListLedgerEntriesParams) (*dto.ListLedgerEntriesResponse, error)
}

// EmployeeWriterSvc defines write operations for employees.
type EmployeeWriterSvc interface {
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error)
	UpdateEmployee(ctx context.Context, employeeID int64, req dto.UpdateEmployeeRequest) (*domain.Employee, error)
	UpdateSalaryPaymentDate(ctx context.Context, employeeID int64, req dto.UpdateSalaryPaymentDateRequest) (*domain.Employee, error)
	// DeleteEmployee removes the employee together with its ledger and attendance.
	DeleteEmployee(ctx context.Context, employeeID int64) error
}

// EmployeeSvcFacade combines all employee operations.
type EmployeeSvcFacade interface {
	EmployeeReaderSvc
	EmployeeWriterSvc
}
