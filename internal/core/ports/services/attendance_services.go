package services

import (
	"context"
	"time"

	"github.com/SscSPs/salary_ledger/internal/core/domain"
)

// AttendanceSvcFacade defines attendance marking and lookup.
type AttendanceSvcFacade interface {
	// MarkAttendance upserts one record per marked employee for date and
	// returns how many employees were marked. Entries without a status are skipped.
	MarkAttendance(ctx context.Context, date time.Time, entries []domain.AttendanceMark, markedBy string) (int, error)

	// ListAttendance returns an employee's records in the inclusive range [start, end].
	ListAttendance(ctx context.Context, employeeID int64, start, end time.Time) ([]domain.AttendanceRecord, error)
}
