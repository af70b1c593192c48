package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/salary_ledger/internal/apperrors"
	"github.com/SscSPs/salary_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/salary_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/salary_ledger/internal/core/ports/services"
	"github.com/SscSPs/salary_ledger/internal/dto"
	"github.com/SscSPs/salary_ledger/internal/platform/clock"
	"github.com/SscSPs/salary_ledger/internal/utils/pagination"
	"github.com/shopspring/decimal"
)

const defaultLedgerPageSize = 20

type employeeService struct {
	BaseService
	employeeRepo portsrepo.EmployeeRepositoryFacade
	ledgerRepo   portsrepo.LedgerReader
	txManager    portsrepo.TransactionManager
}

// EmployeeOption is a functional option for configuring the employee service
type EmployeeOption func(*employeeService)

// WithEmployeeClock overrides the clock used for audit timestamps.
func WithEmployeeClock(c clock.Clock) EmployeeOption {
	return func(s *employeeService) {
		s.Clock = c
	}
}

// NewEmployeeService creates a new employee service.
func NewEmployeeService(
	employeeRepo portsrepo.EmployeeRepositoryFacade,
	ledgerRepo portsrepo.LedgerReader,
	txManager portsrepo.TransactionManager,
	options ...EmployeeOption,
) portssvc.EmployeeSvcFacade {
	svc := &employeeService{
		BaseService:  BaseService{Clock: clock.System{}},
		employeeRepo: employeeRepo,
		ledgerRepo:   ledgerRepo,
		txManager:    txManager,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

func (s *employeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	name := strings.TrimSpace(req.Name)
	designation := strings.TrimSpace(req.Designation)
	if name == "" || designation == "" {
		return nil, fmt.Errorf("name and designation are required: %w", apperrors.ErrValidation)
	}
	if req.Salary == nil || req.Salary.IsNegative() {
		return nil, fmt.Errorf("salary must not be negative: %w", apperrors.ErrValidation)
	}
	joinDate, err := parseDate(req.JoinDate)
	if err != nil {
		return nil, err
	}

	now := s.Now()
	employee := domain.Employee{
		Name:           name,
		Designation:    designation,
		Salary:         *req.Salary,
		JoinDate:       joinDate,
		TotalWithdrawn: decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}

	saved, err := s.employeeRepo.SaveEmployee(ctx, employee)
	if err != nil {
		s.LogError(ctx, err, "Failed to save employee", slog.String("name", name))
		return nil, err
	}

	s.LogInfo(ctx, "Employee created", slog.Int64("employee_id", saved.EmployeeID))
	return saved, nil
}

func (s *employeeService) GetEmployee(ctx context.Context, employeeID int64) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	return employee, nil
}

func (s *employeeService) ListEmployees(ctx context.Context, search string) ([]domain.Employee, error) {
	employees, err := s.employeeRepo.ListEmployees(ctx, strings.TrimSpace(search))
	if err != nil {
		s.LogError(ctx, err, "Failed to list employees")
		return nil, err
	}
	if employees == nil {
		employees = []domain.Employee{}
	}
	return employees, nil
}

// UpdateEmployee edits profile fields under the row lock so a salary change
// cannot race a withdrawal.
func (s *employeeService) UpdateEmployee(ctx context.Context, employeeID int64, req dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	var updated *domain.Employee
	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context, tx portsrepo.TxStore) error {
		employee, err := tx.LockEmployee(ctx, employeeID)
		if err != nil {
			return err
		}

		changed := false
		if req.Name != nil {
			name := strings.TrimSpace(*req.Name)
			if name == "" {
				return fmt.Errorf("name must not be empty: %w", apperrors.ErrValidation)
			}
			if name != employee.Name {
				employee.Name = name
				changed = true
			}
		}
		if req.Designation != nil {
			designation := strings.TrimSpace(*req.Designation)
			if designation == "" {
				return fmt.Errorf("designation must not be empty: %w", apperrors.ErrValidation)
			}
			if designation != employee.Designation {
				employee.Designation = designation
				changed = true
			}
		}
		if req.Salary != nil && !req.Salary.Equal(employee.Salary) {
			if req.Salary.IsNegative() {
				return fmt.Errorf("salary must not be negative: %w", apperrors.ErrValidation)
			}
			if req.Salary.LessThan(employee.TotalWithdrawn) {
				return fmt.Errorf("salary %s is below the %s already withdrawn: %w",
					req.Salary.StringFixed(2), employee.TotalWithdrawn.StringFixed(2), apperrors.ErrValidation)
			}
			employee.Salary = *req.Salary
			changed = true
		}
		if req.JoinDate != nil {
			joinDate, err := parseDate(*req.JoinDate)
			if err != nil {
				return err
			}
			if !joinDate.Equal(employee.JoinDate) {
				employee.JoinDate = joinDate
				changed = true
			}
		}

		if !changed {
			updated = employee
			return nil
		}

		employee.UpdatedAt = s.Now()
		if err := tx.UpdateEmployee(ctx, *employee); err != nil {
			return err
		}
		updated = employee
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to update employee", slog.Int64("employee_id", employeeID))
		return nil, err
	}

	s.LogInfo(ctx, "Employee updated", slog.Int64("employee_id", employeeID))
	return updated, nil
}

func (s *employeeService) UpdateSalaryPaymentDate(ctx context.Context, employeeID int64, req dto.UpdateSalaryPaymentDateRequest) (*domain.Employee, error) {
	date, err := parseDate(req.SalaryPaymentDate)
	if err != nil {
		return nil, err
	}
	if err := s.employeeRepo.UpdateSalaryPaymentDate(ctx, employeeID, date, s.Now()); err != nil {
		s.LogError(ctx, err, "Failed to update salary payment date", slog.Int64("employee_id", employeeID))
		return nil, err
	}
	return s.employeeRepo.FindEmployeeByID(ctx, employeeID)
}

func (s *employeeService) DeleteEmployee(ctx context.Context, employeeID int64) error {
	if err := s.employeeRepo.DeleteEmployee(ctx, employeeID); err != nil {
		s.LogError(ctx, err, "Failed to delete employee", slog.Int64("employee_id", employeeID))
		return err
	}
	s.LogInfo(ctx, "Employee deleted", slog.Int64("employee_id", employeeID))
	return nil
}

// ListLedgerEntries pages through withdrawals with a keyset cursor. One extra
// row is fetched to decide whether a next page exists.
func (s *employeeService) ListLedgerEntries(ctx context.Context, employeeID int64, params dto.ListLedgerEntriesParams) (*dto.ListLedgerEntriesResponse, error) {
	if _, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID); err != nil {
		return nil, err
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultLedgerPageSize
	}

	var cursor *portsrepo.LedgerCursor
	if params.NextToken != "" {
		date, entryID, err := pagination.DecodeLedgerToken(params.NextToken)
		if err != nil {
			return nil, fmt.Errorf("invalid nextToken: %s: %w", err.Error(), apperrors.ErrValidation)
		}
		cursor = &portsrepo.LedgerCursor{Date: date, EntryID: entryID}
	}

	entries, err := s.ledgerRepo.ListLedgerEntriesByEmployee(ctx, employeeID, limit+1, cursor)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledger entries", slog.Int64("employee_id", employeeID))
		return nil, err
	}

	resp := &dto.ListLedgerEntriesResponse{}
	if len(entries) > limit {
		entries = entries[:limit]
		last := entries[len(entries)-1]
		token := pagination.EncodeLedgerToken(last.Date, last.EntryID)
		resp.NextToken = &token
	}
	resp.Entries = dto.ToListLedgerEntryResponse(entries)
	return resp, nil
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(domain.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD: %w", s, apperrors.ErrValidation)
	}
	return t, nil
}
