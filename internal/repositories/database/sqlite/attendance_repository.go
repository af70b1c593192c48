package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/salary_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/salary_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/salary_ledger/internal/models"
	"github.com/SscSPs/salary_ledger/internal/utils/mapping"
	"github.com/jmoiron/sqlx"
)

const selectAttendanceColumns = `
	SELECT record_id, employee_id, record_date, status, check_in, check_out,
		note, marked_by, created_at, updated_at
	FROM attendance_records`

type SqliteAttendanceRepository struct {
	BaseRepository
}

func newSqliteAttendanceRepository(db *sqlx.DB) *SqliteAttendanceRepository {
	return &SqliteAttendanceRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.AttendanceRepositoryFacade = (*SqliteAttendanceRepository)(nil)

func (r *SqliteAttendanceRepository) ListAttendanceByEmployee(ctx context.Context, employeeID int64, from, until time.Time) ([]domain.AttendanceRecord, error) {
	query := selectAttendanceColumns + `
		WHERE employee_id = ? AND record_date >= ? AND record_date < ?
		ORDER BY record_date`
	return r.list(ctx, query, employeeID, mapping.FormatDate(from), mapping.FormatDate(until))
}

func (r *SqliteAttendanceRepository) ListAttendanceBetween(ctx context.Context, from, until time.Time) ([]domain.AttendanceRecord, error) {
	query := selectAttendanceColumns + `
		WHERE record_date >= ? AND record_date < ?
		ORDER BY employee_id, record_date`
	return r.list(ctx, query, mapping.FormatDate(from), mapping.FormatDate(until))
}

func (r *SqliteAttendanceRepository) list(ctx context.Context, query string, args ...any) ([]domain.AttendanceRecord, error) {
	var modelRecords []models.AttendanceRecord
	if err := r.DB.SelectContext(ctx, &modelRecords, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return mapping.ToDomainAttendanceRecordSlice(modelRecords)
}
