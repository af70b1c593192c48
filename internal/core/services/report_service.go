package services

import (
	"context"
	"log/slog"
	"time"

	"github.com/SscSPs/salary_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/salary_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/salary_ledger/internal/core/ports/services"
	"github.com/SscSPs/salary_ledger/internal/platform/clock"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

const (
	dashboardRecentLimit = 10
	historyTrailingDays  = 30
)

type reportService struct {
	BaseService
	employeeRepo portsrepo.EmployeeReader
	ledgerRepo   portsrepo.LedgerReader
	aggregation  portssvc.AggregationSvcFacade
}

// ReportOption is a functional option for configuring the report service
type ReportOption func(*reportService)

// WithReportClock overrides the clock used for GeneratedAt stamps.
func WithReportClock(c clock.Clock) ReportOption {
	return func(s *reportService) {
		s.Clock = c
	}
}

// NewReportService creates a new report data assembler.
func NewReportService(
	employeeRepo portsrepo.EmployeeReader,
	ledgerRepo portsrepo.LedgerReader,
	aggregation portssvc.AggregationSvcFacade,
	options ...ReportOption,
) portssvc.ReportSvcFacade {
	svc := &reportService{
		BaseService:  BaseService{Clock: clock.System{}},
		employeeRepo: employeeRepo,
		ledgerRepo:   ledgerRepo,
		aggregation:  aggregation,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ReportSvcFacade = (*reportService)(nil)

// WithdrawalSlip snapshots the balance as it stood right after the entry.
func (s *reportService) WithdrawalSlip(ctx context.Context, entryID int64) (*domain.WithdrawalSlipData, error) {
	entry, err := s.ledgerRepo.FindLedgerEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, entry.EmployeeID)
	if err != nil {
		return nil, err
	}
	entries, err := s.ledgerRepo.ListLedgerEntriesByEmployee(ctx, entry.EmployeeID, 0, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledger entries for slip", slog.Int64("entry_id", entryID))
		return nil, err
	}

	previous := decimal.Zero
	for _, e := range entries {
		if e.EntryID < entry.EntryID {
			previous = previous.Add(e.Amount)
		}
	}

	return &domain.WithdrawalSlipData{
		Employee:            *employee,
		Entry:               *entry,
		PreviousWithdrawals: previous,
		RemainingAfter:      employee.Salary.Sub(previous.Add(entry.Amount)),
		GeneratedAt:         s.Now(),
	}, nil
}

func (s *reportService) EmployeeHistory(ctx context.Context, employeeID int64) (*domain.EmployeeHistoryData, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	entries, err := s.ledgerRepo.ListLedgerEntriesByEmployee(ctx, employeeID, 0, nil)
	if err != nil {
		s.LogError(ctx, err, "Failed to list ledger entries for history", slog.Int64("employee_id", employeeID))
		return nil, err
	}
	attendance, err := s.aggregation.TrailingAttendanceSummary(ctx, employeeID, historyTrailingDays)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []domain.LedgerEntry{}
	}

	return &domain.EmployeeHistoryData{
		Employee:    *employee,
		Remaining:   employee.Remaining(),
		Entries:     entries,
		Attendance:  *attendance,
		GeneratedAt: s.Now(),
	}, nil
}

func (s *reportService) MonthlyReport(ctx context.Context, year int, month time.Month) (*domain.MonthlyReportData, error) {
	summary, err := s.aggregation.MonthlySummary(ctx, year, month)
	if err != nil {
		return nil, err
	}
	grid, err := s.aggregation.MonthlyAttendanceGrid(ctx, year, month)
	if err != nil {
		return nil, err
	}
	employees, err := s.employeeRepo.ListEmployees(ctx, "")
	if err != nil {
		s.LogError(ctx, err, "Failed to list employees for monthly report")
		return nil, err
	}

	return &domain.MonthlyReportData{
		Summary:     *summary,
		Employees:   employees,
		Attendance:  grid,
		DaysInMonth: domain.DaysInMonth(year, month),
		GeneratedAt: s.Now(),
	}, nil
}

func (s *reportService) EmployeeRoster(ctx context.Context) ([]domain.EmployeeRosterRow, error) {
	employees, err := s.employeeRepo.ListEmployees(ctx, "")
	if err != nil {
		s.LogError(ctx, err, "Failed to list employees for roster")
		return nil, err
	}

	rows := make([]domain.EmployeeRosterRow, len(employees))
	for i, e := range employees {
		rows[i] = domain.EmployeeRosterRow{
			EmployeeID:  e.EmployeeID,
			Name:        e.Name,
			Designation: e.Designation,
			JoinDate:    e.JoinDate,
			Salary:      e.Salary,
			Withdrawn:   e.TotalWithdrawn,
			Remaining:   e.Remaining(),
		}
	}
	return rows, nil
}

// Dashboard loads the totals and the recent entries concurrently.
func (s *reportService) Dashboard(ctx context.Context) (*domain.DashboardData, error) {
	var (
		totals *domain.FleetTotals
		recent []domain.LedgerEntryWithEmployee
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		totals, err = s.aggregation.FleetTotals(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		recent, err = s.ledgerRepo.ListRecentLedgerEntries(gctx, dashboardRecentLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		s.LogError(ctx, err, "Failed to assemble dashboard")
		return nil, err
	}

	if recent == nil {
		recent = []domain.LedgerEntryWithEmployee{}
	}
	return &domain.DashboardData{
		Totals:            *totals,
		RecentWithdrawals: recent,
	}, nil
}
