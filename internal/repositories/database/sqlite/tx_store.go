package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/salary_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/salary_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/salary_ledger/internal/utils/mapping"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

type sqliteTxStore struct {
	tx *sqlx.Tx
}

var _ portsrepo.TxStore = (*sqliteTxStore)(nil)

// LockEmployee is a plain read. The transaction already holds the database
// write lock.
func (s *sqliteTxStore) LockEmployee(ctx context.Context, employeeID int64) (*domain.Employee, error) {
	return findEmployee(ctx, s.tx, employeeID)
}

func (s *sqliteTxStore) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	m := mapping.ToModelEmployee(employee)
	res, err := s.tx.NamedExecContext(ctx, `
		UPDATE employees
		SET name = :name, designation = :designation, salary = :salary, join_date = :join_date, updated_at = :updated_at
		WHERE employee_id = :employee_id`, m)
	if err != nil {
		return mapSQLiteError(err, "failed to update employee %d", employee.EmployeeID)
	}
	return requireRow(res, "employee", employee.EmployeeID)
}

func (s *sqliteTxStore) SetTotalWithdrawn(ctx context.Context, employeeID int64, total decimal.Decimal, at time.Time) error {
	res, err := s.tx.ExecContext(ctx,
		`UPDATE employees SET total_withdrawn = ?, updated_at = ? WHERE employee_id = ?`,
		total.String(), at, employeeID)
	if err != nil {
		return mapSQLiteError(err, "failed to update total withdrawn for employee %d", employeeID)
	}
	return requireRow(res, "employee", employeeID)
}

func (s *sqliteTxStore) InsertLedgerEntry(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error) {
	m := mapping.ToModelLedgerEntry(entry)
	res, err := s.tx.NamedExecContext(ctx, `
		INSERT INTO ledger_entries (employee_id, amount, entry_date, recorded_time, note, created_at)
		VALUES (:employee_id, :amount, :entry_date, :recorded_time, :note, :created_at)`, m)
	if err != nil {
		return nil, mapSQLiteError(err, "failed to insert ledger entry for employee %d", entry.EmployeeID)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read ledger entry id: %w", err)
	}
	entry.EntryID = id
	return &entry, nil
}

func (s *sqliteTxStore) SumLedgerEntries(ctx context.Context, employeeID int64) (decimal.Decimal, int, error) {
	return sumLedgerEntries(ctx, s.tx, employeeID)
}

// UpsertAttendance writes records one statement at a time; the first failure
// aborts the batch and the caller's transaction rolls it back.
func (s *sqliteTxStore) UpsertAttendance(ctx context.Context, records []domain.AttendanceRecord) error {
	if len(records) == 0 {
		return nil
	}

	stmt, err := s.tx.PrepareNamedContext(ctx, `
		INSERT INTO attendance_records (employee_id, record_date, status, check_in, check_out, note, marked_by, created_at, updated_at)
		VALUES (:employee_id, :record_date, :status, :check_in, :check_out, :note, :marked_by, :created_at, :updated_at)
		ON CONFLICT (employee_id, record_date) DO UPDATE SET
			status = excluded.status,
			check_in = excluded.check_in,
			check_out = excluded.check_out,
			note = excluded.note,
			marked_by = excluded.marked_by,
			updated_at = excluded.updated_at`)
	if err != nil {
		return fmt.Errorf("failed to prepare attendance upsert: %w", err)
	}
	defer stmt.Close()

	for _, r := range records {
		if _, err := stmt.ExecContext(ctx, mapping.ToModelAttendanceRecord(r)); err != nil {
			return mapSQLiteError(err, "failed to upsert attendance for employee %d", r.EmployeeID)
		}
	}
	return nil
}
