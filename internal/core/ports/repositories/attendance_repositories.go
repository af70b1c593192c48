package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/salary_ledger/internal/core/domain"
)

// AttendanceReader defines read operations for attendance. Ranges are
// half-open: [from, until).
type AttendanceReader interface {
	ListAttendanceByEmployee(ctx context.Context, employeeID int64, from, until time.Time) ([]domain.AttendanceRecord, error)
	ListAttendanceBetween(ctx context.Context, from, until time.Time) ([]domain.AttendanceRecord, error)
}

// AttendanceRepositoryFacade combines all attendance repository operations.
type AttendanceRepositoryFacade interface {
	AttendanceReader
}
