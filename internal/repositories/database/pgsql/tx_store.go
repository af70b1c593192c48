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
	"github.com/shopspring/decimal"
)

type pgxTxStore struct {
	tx pgx.Tx
}

var _ portsrepo.TxStore = (*pgxTxStore)(nil)

func (s *pgxTxStore) LockEmployee(ctx context.Context, employeeID int64) (*domain.Employee, error) {
	rows, err := s.tx.Query(ctx, selectEmployeeColumns+` WHERE employee_id = $1 FOR UPDATE`, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock employee %d: %w", employeeID, err)
	}
	return collectOneEmployee(rows, employeeID)
}

func (s *pgxTxStore) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	m := mapping.ToModelEmployee(employee)
	query := `
		UPDATE employees
		SET name = $2, designation = $3, salary = $4, join_date = $5, updated_at = $6
		WHERE employee_id = $1;
	`
	ct, err := s.tx.Exec(ctx, query, m.EmployeeID, m.Name, m.Designation, m.Salary, m.JoinDate, m.UpdatedAt)
	if err != nil {
		return mapPgError(err, "failed to update employee %d", employee.EmployeeID)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (s *pgxTxStore) SetTotalWithdrawn(ctx context.Context, employeeID int64, total decimal.Decimal, at time.Time) error {
	ct, err := s.tx.Exec(ctx,
		`UPDATE employees SET total_withdrawn = $2, updated_at = $3 WHERE employee_id = $1;`,
		employeeID, total, at)
	if err != nil {
		return mapPgError(err, "failed to update total withdrawn for employee %d", employeeID)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (s *pgxTxStore) InsertLedgerEntry(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error) {
	m := mapping.ToModelLedgerEntry(entry)
	query := `
		INSERT INTO ledger_entries (employee_id, amount, entry_date, recorded_time, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING entry_id;
	`
	err := s.tx.QueryRow(ctx, query, m.EmployeeID, m.Amount, m.EntryDate, m.RecordedTime, m.Note, m.CreatedAt).Scan(&entry.EntryID)
	if err != nil {
		return nil, mapPgError(err, "failed to insert ledger entry for employee %d", entry.EmployeeID)
	}
	return &entry, nil
}

func (s *pgxTxStore) SumLedgerEntries(ctx context.Context, employeeID int64) (decimal.Decimal, int, error) {
	return sumLedgerEntries(ctx, s.tx, employeeID)
}

// UpsertAttendance queues one upsert per record and checks every result.
func (s *pgxTxStore) UpsertAttendance(ctx context.Context, records []domain.AttendanceRecord) error {
	if len(records) == 0 {
		return nil
	}

	query := `
		INSERT INTO attendance_records (employee_id, record_date, status, check_in, check_out, note, marked_by, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (employee_id, record_date) DO UPDATE SET
			status = EXCLUDED.status,
			check_in = EXCLUDED.check_in,
			check_out = EXCLUDED.check_out,
			note = EXCLUDED.note,
			marked_by = EXCLUDED.marked_by,
			updated_at = EXCLUDED.updated_at;
	`

	batch := &pgx.Batch{}
	modelRecords := make([]models.AttendanceRecord, len(records))
	for i, r := range records {
		m := mapping.ToModelAttendanceRecord(r)
		modelRecords[i] = m
		batch.Queue(query, m.EmployeeID, m.RecordDate, m.Status, m.CheckIn, m.CheckOut, m.Note, m.MarkedBy, m.CreatedAt, m.UpdatedAt)
	}

	br := s.tx.SendBatch(ctx, batch)
	var batchErr error
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil && batchErr == nil {
			batchErr = mapPgError(err, "failed to upsert attendance for employee %d", modelRecords[i].EmployeeID)
		}
	}
	if err := br.Close(); err != nil && batchErr == nil {
		batchErr = fmt.Errorf("failed to close attendance batch: %w", err)
	}
	return batchErr
}
