package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/salary_ledger/internal/apperrors"
	"github.com/SscSPs/salary_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/salary_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/salary_ledger/internal/core/ports/services"
	"github.com/SscSPs/salary_ledger/internal/platform/clock"
)

type attendanceService struct {
	BaseService
	attendanceRepo portsrepo.AttendanceReader
	txManager      portsrepo.TransactionManager
}

// AttendanceOption is a functional option for configuring the attendance service
type AttendanceOption func(*attendanceService)

// WithAttendanceClock overrides the clock used for audit timestamps.
func WithAttendanceClock(c clock.Clock) AttendanceOption {
	return func(s *attendanceService) {
		s.Clock = c
	}
}

// NewAttendanceService creates a new attendance service.
func NewAttendanceService(
	attendanceRepo portsrepo.AttendanceReader,
	txManager portsrepo.TransactionManager,
	options ...AttendanceOption,
) portssvc.AttendanceSvcFacade {
	svc := &attendanceService{
		BaseService:    BaseService{Clock: clock.System{}},
		attendanceRepo: attendanceRepo,
		txManager:      txManager,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AttendanceSvcFacade = (*attendanceService)(nil)

// MarkAttendance validates the whole batch first and then upserts it in a
// single transaction.
func (s *attendanceService) MarkAttendance(ctx context.Context, date time.Time, entries []domain.AttendanceMark, markedBy string) (int, error) {
	if date.IsZero() {
		return 0, fmt.Errorf("attendance date is required: %w", apperrors.ErrValidation)
	}
	date = clock.CivilDate(date.Date())
	now := s.Now()

	records := make([]domain.AttendanceRecord, 0, len(entries))
	seen := make(map[int64]int, len(entries))
	for _, entry := range entries {
		if entry.Status == "" {
			continue
		}
		status, err := domain.ParseAttendanceStatus(entry.Status)
		if err != nil {
			return 0, fmt.Errorf("employee %d: %s: %w", entry.EmployeeID, err.Error(), apperrors.ErrValidation)
		}
		if entry.CheckIn != nil && entry.CheckOut != nil && entry.CheckOut.Before(*entry.CheckIn) {
			return 0, fmt.Errorf("employee %d: check-out %s is before check-in %s: %w",
				entry.EmployeeID, entry.CheckOut, entry.CheckIn, apperrors.ErrValidation)
		}

		record := domain.AttendanceRecord{
			EmployeeID: entry.EmployeeID,
			Date:       date,
			Status:     status,
			CheckIn:    entry.CheckIn,
			CheckOut:   entry.CheckOut,
			Note:       entry.Note,
			MarkedBy:   markedBy,
			AuditFields: domain.AuditFields{
				CreatedAt: now,
				UpdatedAt: now,
			},
		}
		// The same employee twice in one batch keeps the later line.
		if i, ok := seen[entry.EmployeeID]; ok {
			records[i] = record
			continue
		}
		seen[entry.EmployeeID] = len(records)
		records = append(records, record)
	}

	if len(records) == 0 {
		return 0, nil
	}

	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context, tx portsrepo.TxStore) error {
		return tx.UpsertAttendance(ctx, records)
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to mark attendance",
			slog.String("date", date.Format(domain.DateLayout)),
			slog.Int("entries", len(records)))
		return 0, err
	}

	s.LogInfo(ctx, "Attendance marked",
		slog.String("date", date.Format(domain.DateLayout)),
		slog.Int("marked", len(records)),
		slog.String("marked_by", markedBy))
	return len(records), nil
}

func (s *attendanceService) ListAttendance(ctx context.Context, employeeID int64, start, end time.Time) ([]domain.AttendanceRecord, error) {
	start = clock.CivilDate(start.Date())
	end = clock.CivilDate(end.Date())
	if end.Before(start) {
		return nil, fmt.Errorf("end date is before start date: %w", apperrors.ErrValidation)
	}
	records, err := s.attendanceRepo.ListAttendanceByEmployee(ctx, employeeID, start, end.AddDate(0, 0, 1))
	if err != nil {
		s.LogError(ctx, err, "Failed to list attendance", slog.Int64("employee_id", employeeID))
		return nil, err
	}
	if records == nil {
		records = []domain.AttendanceRecord{}
	}
	return records, nil
}
