package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/salary_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/salary_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/salary_ledger/internal/models"
	"github.com/SscSPs/salary_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const selectAttendanceColumns = `
	SELECT record_id, employee_id, record_date::text AS record_date, status,
		check_in::text AS check_in, check_out::text AS check_out, note, marked_by, created_at, updated_at
	FROM attendance_records`

type PgxAttendanceRepository struct {
	BaseRepository
}

func newPgxAttendanceRepository(pool *pgxpool.Pool) *PgxAttendanceRepository {
	return &PgxAttendanceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AttendanceRepositoryFacade = (*PgxAttendanceRepository)(nil)

func (r *PgxAttendanceRepository) ListAttendanceByEmployee(ctx context.Context, employeeID int64, from, until time.Time) ([]domain.AttendanceRecord, error) {
	query := selectAttendanceColumns + `
		WHERE employee_id = $1 AND record_date >= $2::date AND record_date < $3::date
		ORDER BY record_date`
	return r.list(ctx, query, employeeID, mapping.FormatDate(from), mapping.FormatDate(until))
}

func (r *PgxAttendanceRepository) ListAttendanceBetween(ctx context.Context, from, until time.Time) ([]domain.AttendanceRecord, error) {
	query := selectAttendanceColumns + `
		WHERE record_date >= $1::date AND record_date < $2::date
		ORDER BY employee_id, record_date`
	return r.list(ctx, query, mapping.FormatDate(from), mapping.FormatDate(until))
}

func (r *PgxAttendanceRepository) list(ctx context.Context, query string, args ...any) ([]domain.AttendanceRecord, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	modelRecords, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.AttendanceRecord])
	if err != nil {
		return nil, fmt.Errorf("failed to scan attendance: %w", err)
	}
	return mapping.ToDomainAttendanceRecordSlice(modelRecords)
}
