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
	"github.com/SscSPs/salary_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

type aggregationService struct {
	BaseService
	employeeRepo   portsrepo.EmployeeReader
	ledgerRepo     portsrepo.LedgerReader
	attendanceRepo portsrepo.AttendanceReader
}

// AggregationOption is a functional option for configuring the aggregation service
type AggregationOption func(*aggregationService)

// WithAggregationClock overrides the clock used for trailing windows.
func WithAggregationClock(c clock.Clock) AggregationOption {
	return func(s *aggregationService) {
		s.Clock = c
	}
}

// NewAggregationService creates a new aggregation service.
func NewAggregationService(
	employeeRepo portsrepo.EmployeeReader,
	ledgerRepo portsrepo.LedgerReader,
	attendanceRepo portsrepo.AttendanceReader,
	options ...AggregationOption,
) portssvc.AggregationSvcFacade {
	svc := &aggregationService{
		BaseService:    BaseService{Clock: clock.System{}},
		employeeRepo:   employeeRepo,
		ledgerRepo:     ledgerRepo,
		attendanceRepo: attendanceRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.AggregationSvcFacade = (*aggregationService)(nil)

func (s *aggregationService) MonthlySummary(ctx context.Context, year int, month time.Month) (*domain.MonthlySummary, error) {
	start, end, err := domain.MonthRange(year, month)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), apperrors.ErrValidation)
	}

	entries, err := s.ledgerRepo.ListLedgerEntriesBetween(ctx, start, end)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledger entries for month",
			slog.Int("year", year), slog.Int("month", int(month)))
		return nil, err
	}

	total := decimal.Zero
	for _, e := range entries {
		total = total.Add(e.Amount)
	}
	if entries == nil {
		entries = []domain.LedgerEntryWithEmployee{}
	}

	return &domain.MonthlySummary{
		Year:             year,
		Month:            month,
		Start:            start,
		End:              end,
		TotalWithdrawn:   total,
		TransactionCount: len(entries),
		Entries:          entries,
	}, nil
}

// AttendanceSummary counts records in the inclusive range [start, end].
func (s *aggregationService) AttendanceSummary(ctx context.Context, employeeID int64, start, end time.Time) (*domain.AttendanceSummary, error) {
	start = clock.CivilDate(start.Date())
	end = clock.CivilDate(end.Date())
	if end.Before(start) {
		return nil, fmt.Errorf("end date %s is before start date %s: %w",
			end.Format(domain.DateLayout), start.Format(domain.DateLayout), apperrors.ErrValidation)
	}

	if _, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID); err != nil {
		return nil, err
	}

	records, err := s.attendanceRepo.ListAttendanceByEmployee(ctx, employeeID, start, end.AddDate(0, 0, 1))
	if err != nil {
		s.LogError(ctx, err, "Failed to list attendance", slog.Int64("employee_id", employeeID))
		return nil, err
	}

	summary := &domain.AttendanceSummary{
		EmployeeID: employeeID,
		Start:      start,
		End:        end,
	}
	for _, r := range records {
		summary.Add(r.Status)
	}
	summary.TotalMarked = summary.Total()
	summary.Percentage = accounting.Percentage(summary.Present, summary.TotalMarked)
	return summary, nil
}

func (s *aggregationService) TrailingAttendanceSummary(ctx context.Context, employeeID int64, days int) (*domain.AttendanceSummary, error) {
	if days < 0 {
		return nil, fmt.Errorf("trailing window must not be negative: %w", apperrors.ErrValidation)
	}
	today := s.Today()
	return s.AttendanceSummary(ctx, employeeID, today.AddDate(0, 0, -days), today)
}

func (s *aggregationService) MonthlyAttendanceGrid(ctx context.Context, year int, month time.Month) (map[int64]domain.EmployeeAttendanceGrid, error) {
	start, end, err := domain.MonthRange(year, month)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", err.Error(), apperrors.ErrValidation)
	}

	employees, err := s.employeeRepo.ListEmployees(ctx, "")
	if err != nil {
		s.LogError(ctx, err, "Failed to list employees for attendance grid")
		return nil, err
	}
	records, err := s.attendanceRepo.ListAttendanceBetween(ctx, start, end)
	if err != nil {
		s.LogError(ctx, err, "Failed to list attendance for month",
			slog.Int("year", year), slog.Int("month", int(month)))
		return nil, err
	}

	grid := make(map[int64]domain.EmployeeAttendanceGrid, len(employees))
	for _, e := range employees {
		grid[e.EmployeeID] = domain.EmployeeAttendanceGrid{
			EmployeeID: e.EmployeeID,
			Days:       map[int]domain.AttendanceRecord{},
		}
	}
	for _, r := range records {
		row, ok := grid[r.EmployeeID]
		if !ok {
			continue
		}
		row.Days[r.Date.Day()] = r
		row.Counts.Add(r.Status)
		grid[r.EmployeeID] = row
	}
	return grid, nil
}

func (s *aggregationService) FleetTotals(ctx context.Context) (*domain.FleetTotals, error) {
	employees, err := s.employeeRepo.ListEmployees(ctx, "")
	if err != nil {
		s.LogError(ctx, err, "Failed to list employees for fleet totals")
		return nil, err
	}
	return fleetTotals(employees), nil
}

func fleetTotals(employees []domain.Employee) *domain.FleetTotals {
	totals := &domain.FleetTotals{
		TotalEmployees: len(employees),
		TotalSalaries:  decimal.Zero,
		TotalWithdrawn: decimal.Zero,
	}
	for _, e := range employees {
		totals.TotalSalaries = totals.TotalSalaries.Add(e.Salary)
		totals.TotalWithdrawn = totals.TotalWithdrawn.Add(e.TotalWithdrawn)
	}
	totals.TotalRemaining = accounting.Remaining(totals.TotalSalaries, totals.TotalWithdrawn)
	return totals
}
