package services

import (
	portsrepo "github.com/SscSPs/salary_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/salary_ledger/internal/core/ports/services"
	"github.com/SscSPs/salary_ledger/internal/platform/clock"
	"github.com/SscSPs/salary_ledger/internal/platform/config"
)

// NewServiceContainer wires every service against the given repositories.
// All services share one clock.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, c clock.Clock) *portssvc.ServiceContainer {
	if c == nil {
		c = clock.System{}
	}

	container := &portssvc.ServiceContainer{}

	container.Aggregation = NewAggregationService(
		repos.EmployeeRepo,
		repos.LedgerRepo,
		repos.AttendanceRepo,
		WithAggregationClock(c),
	)
	container.Balance = NewBalanceService(repos.EmployeeRepo, repos.LedgerRepo, repos.TxManager, WithBalanceClock(c))
	container.Attendance = NewAttendanceService(repos.AttendanceRepo, repos.TxManager, WithAttendanceClock(c))
	container.Employee = NewEmployeeService(repos.EmployeeRepo, repos.LedgerRepo, repos.TxManager, WithEmployeeClock(c))
	container.Report = NewReportService(repos.EmployeeRepo, repos.LedgerRepo, container.Aggregation, WithReportClock(c))
	container.User = NewUserService(repos.UserRepo, WithUserClock(c))

	container.Token = NewTokenService(cfg, c)
	container.GoogleOAuth = NewGoogleOAuthService(cfg)

	return container
}
