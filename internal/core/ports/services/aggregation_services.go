package services

import (
	"context"
	"time"

	"github.com/SscSPs/salary_ledger/internal/core/domain"
)

// AggregationSvcFacade produces read-only summaries over date ranges.
type AggregationSvcFacade interface {
	// MonthlySummary totals every withdrawal dated in the given month.
	MonthlySummary(ctx context.Context, year int, month time.Month) (*domain.MonthlySummary, error)

	// AttendanceSummary counts an employee's markings in the inclusive range [start, end].
	AttendanceSummary(ctx context.Context, employeeID int64, start, end time.Time) (*domain.AttendanceSummary, error)

	// TrailingAttendanceSummary summarizes [today - days, today].
	TrailingAttendanceSummary(ctx context.Context, employeeID int64, days int) (*domain.AttendanceSummary, error)

	// MonthlyAttendanceGrid maps each employee to their records keyed by day of month.
	MonthlyAttendanceGrid(ctx context.Context, year int, month time.Month) (map[int64]domain.EmployeeAttendanceGrid, error)

	// FleetTotals sums salaries and withdrawals across all employees.
	FleetTotals(ctx context.Context) (*domain.FleetTotals, error)
}
