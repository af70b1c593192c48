package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/salary_ledger/internal/apperrors"
	"github.com/SscSPs/salary_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/salary_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/salary_ledger/internal/models"
	"github.com/SscSPs/salary_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const selectEmployeeColumns = `
	SELECT employee_id, name, designation, salary, join_date::text AS join_date,
		salary_payment_date::text AS salary_payment_date, total_withdrawn, created_at, updated_at
	FROM employees`

type PgxEmployeeRepository struct {
	BaseRepository
}

func newPgxEmployeeRepository(pool *pgxpool.Pool) *PgxEmployeeRepository {
	return &PgxEmployeeRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

func collectEmployees(rows pgx.Rows) ([]domain.Employee, error) {
	modelEmployees, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.Employee])
	if err != nil {
		return nil, fmt.Errorf("failed to scan employees: %w", err)
	}
	return mapping.ToDomainEmployeeSlice(modelEmployees)
}

func collectOneEmployee(rows pgx.Rows, employeeID int64) (*domain.Employee, error) {
	employees, err := collectEmployees(rows)
	if err != nil {
		return nil, err
	}
	if len(employees) == 0 {
		return nil, fmt.Errorf("employee %d: %w", employeeID, apperrors.ErrNotFound)
	}
	return &employees[0], nil
}

func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID int64) (*domain.Employee, error) {
	rows, err := r.Pool.Query(ctx, selectEmployeeColumns+` WHERE employee_id = $1`, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to find employee %d: %w", employeeID, err)
	}
	return collectOneEmployee(rows, employeeID)
}

func (r *PgxEmployeeRepository) ListEmployees(ctx context.Context, search string) ([]domain.Employee, error) {
	query := selectEmployeeColumns
	args := []any{}
	if search != "" {
		query += ` WHERE name ILIKE $1 OR designation ILIKE $1`
		args = append(args, "%"+search+"%")
	}
	query += ` ORDER BY name, employee_id`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return collectEmployees(rows)
}

func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) (*domain.Employee, error) {
	m := mapping.ToModelEmployee(employee)
	query := `
		INSERT INTO employees (name, designation, salary, join_date, salary_payment_date, total_withdrawn, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING employee_id;
	`
	err := r.Pool.QueryRow(ctx, query,
		m.Name,
		m.Designation,
		m.Salary,
		m.JoinDate,
		m.SalaryPaymentDate,
		m.TotalWithdrawn,
		m.CreatedAt,
		m.UpdatedAt,
	).Scan(&employee.EmployeeID)
	if err != nil {
		return nil, mapPgError(err, "failed to save employee %s", employee.Name)
	}
	return &employee, nil
}

func (r *PgxEmployeeRepository) UpdateSalaryPaymentDate(ctx context.Context, employeeID int64, date time.Time, at time.Time) error {
	ct, err := r.Pool.Exec(ctx,
		`UPDATE employees SET salary_payment_date = $2, updated_at = $3 WHERE employee_id = $1;`,
		employeeID, mapping.FormatDate(date), at)
	if err != nil {
		return mapPgError(err, "failed to update salary payment date for employee %d", employeeID)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("employee %d: %w", employeeID, apperrors.ErrNotFound)
	}
	return nil
}

// DeleteEmployee relies on ON DELETE CASCADE for ledger and attendance rows.
func (r *PgxEmployeeRepository) DeleteEmployee(ctx context.Context, employeeID int64) error {
	ct, err := r.Pool.Exec(ctx, `DELETE FROM employees WHERE employee_id = $1;`, employeeID)
	if err != nil {
		return mapPgError(err, "failed to delete employee %d", employeeID)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("employee %d: %w", employeeID, apperrors.ErrNotFound)
	}
	return nil
}
