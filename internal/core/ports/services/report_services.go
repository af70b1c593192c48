package services

import (
	"context"
	"time"

	"github.com/SscSPs/salary_ledger/internal/core/domain"
)

// ReportSvcFacade assembles the flat data sets consumed by document renderers.
type ReportSvcFacade interface {
	WithdrawalSlip(ctx context.Context, entryID int64) (*domain.WithdrawalSlipData, error)
	EmployeeHistory(ctx context.Context, employeeID int64) (*domain.EmployeeHistoryData, error)
	MonthlyReport(ctx context.Context, year int, month time.Month) (*domain.MonthlyReportData, error)
	EmployeeRoster(ctx context.Context) ([]domain.EmployeeRosterRow, error)
	Dashboard(ctx context.Context) (*domain.DashboardData, error)
}
