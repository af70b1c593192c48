package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/salary_ledger/internal/apperrors"
	"github.com/SscSPs/salary_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/salary_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/salary_ledger/internal/core/ports/services"
	"github.com/SscSPs/salary_ledger/internal/core/services"
	"github.com/SscSPs/salary_ledger/internal/platform/clock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ReportServiceTestSuite struct {
	suite.Suite
	mockEmployeeRepo   *MockEmployeeRepository
	mockLedgerRepo     *MockLedgerRepository
	mockAttendanceRepo *MockAttendanceRepository
	service            portssvc.ReportSvcFacade
}

func (suite *ReportServiceTestSuite) SetupTest() {
	suite.mockEmployeeRepo = new(MockEmployeeRepository)
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.mockAttendanceRepo = new(MockAttendanceRepository)
	fixed := clock.Fixed{At: testNow}
	aggregation := services.NewAggregationService(
		suite.mockEmployeeRepo,
		suite.mockLedgerRepo,
		suite.mockAttendanceRepo,
		services.WithAggregationClock(fixed),
	)
	suite.service = services.NewReportService(
		suite.mockEmployeeRepo,
		suite.mockLedgerRepo,
		aggregation,
		services.WithReportClock(fixed),
	)
}

func (suite *ReportServiceTestSuite) TestWithdrawalSlip_PreviousAndRemaining() {
	ctx := context.Background()
	employee := &domain.Employee{EmployeeID: 1, Name: "Ali", Salary: decimal.NewFromInt(50000), TotalWithdrawn: decimal.NewFromInt(35000)}
	entries := []domain.LedgerEntry{
		{EntryID: 9, EmployeeID: 1, Amount: decimal.NewFromInt(5000)},
		{EntryID: 4, EmployeeID: 1, Amount: decimal.NewFromInt(10000)},
		{EntryID: 2, EmployeeID: 1, Amount: decimal.NewFromInt(20000)},
	}
	suite.mockLedgerRepo.On("FindLedgerEntryByID", ctx, int64(4)).Return(&entries[1], nil).Once()
	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, int64(1)).Return(employee, nil).Once()
	suite.mockLedgerRepo.On("ListLedgerEntriesByEmployee", ctx, int64(1), 0, (*portsrepo.LedgerCursor)(nil)).Return(entries, nil).Once()

	slip, err := suite.service.WithdrawalSlip(ctx, 4)

	suite.Require().NoError(err)
	suite.True(slip.PreviousWithdrawals.Equal(decimal.NewFromInt(20000)))
	suite.True(slip.RemainingAfter.Equal(decimal.NewFromInt(20000)))
	suite.Equal("WS-000004", slip.Entry.SlipNumber())
	suite.True(slip.GeneratedAt.Equal(testNow))
}

func (suite *ReportServiceTestSuite) TestWithdrawalSlip_UnknownEntry() {
	ctx := context.Background()
	suite.mockLedgerRepo.On("FindLedgerEntryByID", ctx, int64(404)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.WithdrawalSlip(ctx, 404)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ReportServiceTestSuite) TestEmployeeHistory() {
	ctx := context.Background()
	employee := &domain.Employee{EmployeeID: 1, Salary: decimal.NewFromInt(50000), TotalWithdrawn: decimal.NewFromInt(20000)}
	today := clock.CivilDate(2025, time.March, 15)
	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, int64(1)).Return(employee, nil)
	suite.mockLedgerRepo.On("ListLedgerEntriesByEmployee", ctx, int64(1), 0, (*portsrepo.LedgerCursor)(nil)).
		Return([]domain.LedgerEntry{{EntryID: 1, Amount: decimal.NewFromInt(20000)}}, nil).Once()
	suite.mockAttendanceRepo.On("ListAttendanceByEmployee", ctx, int64(1), today.AddDate(0, 0, -30), today.AddDate(0, 0, 1)).
		Return([]domain.AttendanceRecord{{Status: domain.StatusPresent}}, nil).Once()

	history, err := suite.service.EmployeeHistory(ctx, 1)

	suite.Require().NoError(err)
	suite.True(history.Remaining.Equal(decimal.NewFromInt(30000)))
	suite.Len(history.Entries, 1)
	suite.Equal(1, history.Attendance.Present)
	suite.True(history.Attendance.Percentage.Equal(decimal.NewFromInt(100)))
}

func (suite *ReportServiceTestSuite) TestMonthlyReport() {
	ctx := context.Background()
	start := clock.CivilDate(2025, time.February, 1)
	end := clock.CivilDate(2025, time.March, 1)
	employees := []domain.Employee{{EmployeeID: 1, Name: "Ali"}}
	suite.mockLedgerRepo.On("ListLedgerEntriesBetween", ctx, start, end).Return([]domain.LedgerEntryWithEmployee{
		{LedgerEntry: domain.LedgerEntry{EntryID: 1, Amount: decimal.NewFromInt(700)}, EmployeeName: "Ali"},
	}, nil).Once()
	suite.mockEmployeeRepo.On("ListEmployees", ctx, "").Return(employees, nil)
	suite.mockAttendanceRepo.On("ListAttendanceBetween", ctx, start, end).Return(nil, nil).Once()

	report, err := suite.service.MonthlyReport(ctx, 2025, time.February)

	suite.Require().NoError(err)
	suite.Equal(28, report.DaysInMonth)
	suite.Equal(1, report.Summary.TransactionCount)
	suite.Contains(report.Attendance, int64(1))
	suite.Len(report.Employees, 1)
}

func (suite *ReportServiceTestSuite) TestEmployeeRoster() {
	ctx := context.Background()
	suite.mockEmployeeRepo.On("ListEmployees", ctx, "").Return([]domain.Employee{
		{EmployeeID: 1, Name: "Ali", Salary: decimal.NewFromInt(50000), TotalWithdrawn: decimal.NewFromInt(20000)},
	}, nil).Once()

	rows, err := suite.service.EmployeeRoster(ctx)

	suite.Require().NoError(err)
	suite.Require().Len(rows, 1)
	suite.True(rows[0].Remaining.Equal(decimal.NewFromInt(30000)))
}

func (suite *ReportServiceTestSuite) TestDashboard() {
	suite.mockEmployeeRepo.On("ListEmployees", mock.Anything, "").Return([]domain.Employee{
		{EmployeeID: 1, Salary: decimal.NewFromInt(50000), TotalWithdrawn: decimal.NewFromInt(20000)},
	}, nil).Once()
	suite.mockLedgerRepo.On("ListRecentLedgerEntries", mock.Anything, 10).Return([]domain.LedgerEntryWithEmployee{
		{LedgerEntry: domain.LedgerEntry{EntryID: 1}, EmployeeName: "Ali"},
	}, nil).Once()

	dashboard, err := suite.service.Dashboard(context.Background())

	suite.Require().NoError(err)
	suite.Equal(1, dashboard.Totals.TotalEmployees)
	suite.Len(dashboard.RecentWithdrawals, 1)
}

func (suite *ReportServiceTestSuite) TestDashboard_PropagatesError() {
	suite.mockEmployeeRepo.On("ListEmployees", mock.Anything, "").Return(nil, assert.AnError).Once()
	suite.mockLedgerRepo.On("ListRecentLedgerEntries", mock.Anything, 10).Return(nil, nil).Maybe()

	_, err := suite.service.Dashboard(context.Background())

	suite.ErrorIs(err, assert.AnError)
}

func TestReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}
