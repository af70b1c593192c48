package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/salary_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/salary_ledger/internal/core/ports/services"
	"github.com/SscSPs/salary_ledger/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"
)

// --- Mock BalanceService ---
type MockBalanceService struct {
	mock.Mock
}

func (m *MockBalanceService) RemainingBalance(ctx context.Context, employeeID int64) (decimal.Decimal, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}
func (m *MockBalanceService) Reconcile(ctx context.Context, employeeID int64) (*domain.Reconciliation, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reconciliation), args.Error(1)
}
func (m *MockBalanceService) RecordWithdrawal(ctx context.Context, employeeID int64, amount decimal.Decimal, date time.Time, note string) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, employeeID, amount, date, note)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LedgerEntry), args.Error(1)
}
func (m *MockBalanceService) RepairTotal(ctx context.Context, employeeID int64) (*domain.Reconciliation, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reconciliation), args.Error(1)
}

var _ portssvc.BalanceSvcFacade = (*MockBalanceService)(nil)

// --- Mock EmployeeService ---
type MockEmployeeService struct {
	mock.Mock
}

func (m *MockEmployeeService) GetEmployee(ctx context.Context, employeeID int64) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockEmployeeService) ListEmployees(ctx context.Context, search string) ([]domain.Employee, error) {
	args := m.Called(ctx, search)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Employee), args.Error(1)
}
func (m *MockEmployeeService) ListLedgerEntries(ctx context.Context, employeeID int64, params dto.ListLedgerEntriesParams) (*dto.ListLedgerEntriesResponse, error) {
	args := m.Called(ctx, employeeID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListLedgerEntriesResponse), args.Error(1)
}
func (m *MockEmployeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockEmployeeService) UpdateEmployee(ctx context.Context, employeeID int64, req dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockEmployeeService) UpdateSalaryPaymentDate(ctx context.Context, employeeID int64, req dto.UpdateSalaryPaymentDateRequest) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Employee), args.Error(1)
}
func (m *MockEmployeeService) DeleteEmployee(ctx context.Context, employeeID int64) error {
	args := m.Called(ctx, employeeID)
	return args.Error(0)
}

var _ portssvc.EmployeeSvcFacade = (*MockEmployeeService)(nil)

// --- Mock AttendanceService ---
type MockAttendanceService struct {
	mock.Mock
}

func (m *MockAttendanceService) MarkAttendance(ctx context.Context, date time.Time, entries []domain.AttendanceMark, markedBy string) (int, error) {
	args := m.Called(ctx, date, entries, markedBy)
	return args.Int(0), args.Error(1)
}
func (m *MockAttendanceService) ListAttendance(ctx context.Context, employeeID int64, start, end time.Time) ([]domain.AttendanceRecord, error) {
	args := m.Called(ctx, employeeID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AttendanceRecord), args.Error(1)
}

var _ portssvc.AttendanceSvcFacade = (*MockAttendanceService)(nil)

// --- Mock AggregationService ---
type MockAggregationService struct {
	mock.Mock
}

func (m *MockAggregationService) MonthlySummary(ctx context.Context, year int, month time.Month) (*domain.MonthlySummary, error) {
	args := m.Called(ctx, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlySummary), args.Error(1)
}
func (m *MockAggregationService) AttendanceSummary(ctx context.Context, employeeID int64, start, end time.Time) (*domain.AttendanceSummary, error) {
	args := m.Called(ctx, employeeID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AttendanceSummary), args.Error(1)
}
func (m *MockAggregationService) TrailingAttendanceSummary(ctx context.Context, employeeID int64, days int) (*domain.AttendanceSummary, error) {
	args := m.Called(ctx, employeeID, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AttendanceSummary), args.Error(1)
}
func (m *MockAggregationService) MonthlyAttendanceGrid(ctx context.Context, year int, month time.Month) (map[int64]domain.EmployeeAttendanceGrid, error) {
	args := m.Called(ctx, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64]domain.EmployeeAttendanceGrid), args.Error(1)
}
func (m *MockAggregationService) FleetTotals(ctx context.Context) (*domain.FleetTotals, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FleetTotals), args.Error(1)
}

var _ portssvc.AggregationSvcFacade = (*MockAggregationService)(nil)

// --- Mock ReportService ---
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) WithdrawalSlip(ctx context.Context, entryID int64) (*domain.WithdrawalSlipData, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.WithdrawalSlipData), args.Error(1)
}
func (m *MockReportService) EmployeeHistory(ctx context.Context, employeeID int64) (*domain.EmployeeHistoryData, error) {
	args := m.Called(ctx, employeeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.EmployeeHistoryData), args.Error(1)
}
func (m *MockReportService) MonthlyReport(ctx context.Context, year int, month time.Month) (*domain.MonthlyReportData, error) {
	args := m.Called(ctx, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MonthlyReportData), args.Error(1)
}
func (m *MockReportService) EmployeeRoster(ctx context.Context) ([]domain.EmployeeRosterRow, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EmployeeRosterRow), args.Error(1)
}
func (m *MockReportService) Dashboard(ctx context.Context) (*domain.DashboardData, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardData), args.Error(1)
}

var _ portssvc.ReportSvcFacade = (*MockReportService)(nil)

// --- Mock UserService ---
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword, confirmPassword string) error {
	args := m.Called(ctx, userID, oldPassword, newPassword, confirmPassword)
	return args.Error(0)
}
func (m *MockUserService) EnsureDefaultAdmin(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

// --- Mock TokenService ---
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

var _ portssvc.TokenSvcFacade = (*MockTokenService)(nil)

// --- Mock GoogleOAuthService ---
type MockGoogleOAuthService struct {
	mock.Mock
}

func (m *MockGoogleOAuthService) Enabled() bool {
	return m.Called().Bool(0)
}
func (m *MockGoogleOAuthService) ExchangeCodeForToken(ctx context.Context, code string) (*oauth2.Token, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*oauth2.Token), args.Error(1)
}
func (m *MockGoogleOAuthService) ValidateGoogleIDToken(ctx context.Context, idTokenString string) (*idtoken.Payload, error) {
	args := m.Called(ctx, idTokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*idtoken.Payload), args.Error(1)
}

var _ portssvc.GoogleOAuthSvcFacade = (*MockGoogleOAuthService)(nil)
