package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/salary_ledger/internal/core/domain"
)

// EmployeeReader defines read operations for employees.
type EmployeeReader interface {
	FindEmployeeByID(ctx context.Context, employeeID int64) (*domain.Employee, error)
	// ListEmployees returns employees ordered by name. A non-empty search
	// matches name or designation case-insensitively.
	ListEmployees(ctx context.Context, search string) ([]domain.Employee, error)
}

// EmployeeWriter defines write operations outside the ledger transaction.
type EmployeeWriter interface {
	SaveEmployee(ctx context.Context, employee domain.Employee) (*domain.Employee, error)
	UpdateSalaryPaymentDate(ctx context.Context, employeeID int64, date time.Time, at time.Time) error
	// DeleteEmployee removes the employee with its ledger entries and attendance.
	DeleteEmployee(ctx context.Context, employeeID int64) error
}

// EmployeeRepositoryFacade combines all employee repository operations.
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
}
