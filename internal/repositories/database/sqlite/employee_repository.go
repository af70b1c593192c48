package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/salary_ledger/internal/apperrors"
	"github.com/SscSPs/salary_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/salary_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/salary_ledger/internal/models"
	"github.com/SscSPs/salary_ledger/internal/utils/mapping"
	"github.com/jmoiron/sqlx"
)

const selectEmployeeColumns = `
	SELECT employee_id, name, designation, salary, join_date, salary_payment_date,
		total_withdrawn, created_at, updated_at
	FROM employees`

type SqliteEmployeeRepository struct {
	BaseRepository
}

func newSqliteEmployeeRepository(db *sqlx.DB) *SqliteEmployeeRepository {
	return &SqliteEmployeeRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.EmployeeRepositoryFacade = (*SqliteEmployeeRepository)(nil)

// findEmployee is shared by the repository and the transaction store.
func findEmployee(ctx context.Context, q sqlx.QueryerContext, employeeID int64) (*domain.Employee, error) {
	var m models.Employee
	err := sqlx.GetContext(ctx, q, &m, selectEmployeeColumns+` WHERE employee_id = ?`, employeeID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("employee %d: %w", employeeID, apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find employee %d: %w", employeeID, err)
	}
	employee, err := mapping.ToDomainEmployee(m)
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *SqliteEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID int64) (*domain.Employee, error) {
	return findEmployee(ctx, r.DB, employeeID)
}

func (r *SqliteEmployeeRepository) ListEmployees(ctx context.Context, search string) ([]domain.Employee, error) {
	query := selectEmployeeColumns
	args := []any{}
	if search != "" {
		query += ` WHERE lower(name) LIKE lower(?) OR lower(designation) LIKE lower(?)`
		pattern := "%" + search + "%"
		args = append(args, pattern, pattern)
	}
	query += ` ORDER BY name, employee_id`

	var modelEmployees []models.Employee
	if err := r.DB.SelectContext(ctx, &modelEmployees, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return mapping.ToDomainEmployeeSlice(modelEmployees)
}

func (r *SqliteEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) (*domain.Employee, error) {
	m := mapping.ToModelEmployee(employee)
	res, err := r.DB.NamedExecContext(ctx, `
		INSERT INTO employees (name, designation, salary, join_date, salary_payment_date, total_withdrawn, created_at, updated_at)
		VALUES (:name, :designation, :salary, :join_date, :salary_payment_date, :total_withdrawn, :created_at, :updated_at)`, m)
	if err != nil {
		return nil, mapSQLiteError(err, "failed to save employee %s", employee.Name)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read employee id: %w", err)
	}
	employee.EmployeeID = id
	return &employee, nil
}

func (r *SqliteEmployeeRepository) UpdateSalaryPaymentDate(ctx context.Context, employeeID int64, date time.Time, at time.Time) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE employees SET salary_payment_date = ?, updated_at = ? WHERE employee_id = ?`,
		mapping.FormatDate(date), at, employeeID)
	if err != nil {
		return mapSQLiteError(err, "failed to update salary payment date for employee %d", employeeID)
	}
	return requireRow(res, "employee", employeeID)
}

// DeleteEmployee relies on ON DELETE CASCADE, which needs foreign_keys(1) in the DSN.
func (r *SqliteEmployeeRepository) DeleteEmployee(ctx context.Context, employeeID int64) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM employees WHERE employee_id = ?`, employeeID)
	if err != nil {
		return mapSQLiteError(err, "failed to delete employee %d", employeeID)
	}
	return requireRow(res, "employee", employeeID)
}
