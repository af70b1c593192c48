package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/salary_ledger/internal/apperrors"
	"github.com/SscSPs/salary_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/salary_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/salary_ledger/internal/core/ports/services"
	"github.com/SscSPs/salary_ledger/internal/core/services"
	"github.com/SscSPs/salary_ledger/internal/dto"
	"github.com/SscSPs/salary_ledger/internal/platform/clock"
	"github.com/SscSPs/salary_ledger/internal/repositories/database/sqlite"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

// 2025-01-10 09:00 PKT
var testNow = time.Date(2025, time.January, 10, 4, 0, 0, 0, time.UTC)

type LedgerStoreTestSuite struct {
	suite.Suite
	ctx   context.Context
	db    *sqlx.DB
	repos portsrepo.RepositoryProvider

	employees   portssvc.EmployeeSvcFacade
	balance     portssvc.BalanceSvcFacade
	attendance  portssvc.AttendanceSvcFacade
	aggregation portssvc.AggregationSvcFacade
}

func (s *LedgerStoreTestSuite) SetupTest() {
	s.ctx = context.Background()
	db, err := sqlite.Open(s.ctx, filepath.Join(s.T().TempDir(), "ledger.db"))
	s.Require().NoError(err)
	s.db = db
	s.repos = sqlite.NewRepositoryProvider(db)

	c := clock.Fixed{At: testNow}
	s.employees = services.NewEmployeeService(s.repos.EmployeeRepo, s.repos.LedgerRepo, s.repos.TxManager, services.WithEmployeeClock(c))
	s.balance = services.NewBalanceService(s.repos.EmployeeRepo, s.repos.LedgerRepo, s.repos.TxManager, services.WithBalanceClock(c))
	s.attendance = services.NewAttendanceService(s.repos.AttendanceRepo, s.repos.TxManager, services.WithAttendanceClock(c))
	s.aggregation = services.NewAggregationService(s.repos.EmployeeRepo, s.repos.LedgerRepo, s.repos.AttendanceRepo, services.WithAggregationClock(c))
}

func (s *LedgerStoreTestSuite) TearDownTest() {
	s.NoError(s.db.Close())
}

func TestLedgerStoreTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerStoreTestSuite))
}

func (s *LedgerStoreTestSuite) createEmployee(name string, salary int64) *domain.Employee {
	amount := decimal.NewFromInt(salary)
	emp, err := s.employees.CreateEmployee(s.ctx, dto.CreateEmployeeRequest{
		Name:        name,
		Designation: "Cook",
		Salary:      &amount,
		JoinDate:    "2024-06-01",
	})
	s.Require().NoError(err)
	return emp
}

func (s *LedgerStoreTestSuite) withdraw(employeeID int64, amount int64, date time.Time) (*domain.LedgerEntry, error) {
	return s.balance.RecordWithdrawal(s.ctx, employeeID, decimal.NewFromInt(amount), date, "")
}

func (s *LedgerStoreTestSuite) TestEmployeeRoundTrip() {
	emp := s.createEmployee("Ali Raza", 50000)

	got, err := s.repos.EmployeeRepo.FindEmployeeByID(s.ctx, emp.EmployeeID)
	s.Require().NoError(err)
	s.Equal("Ali Raza", got.Name)
	s.True(got.Salary.Equal(decimal.NewFromInt(50000)))
	s.True(got.TotalWithdrawn.IsZero())
	s.Equal(clock.CivilDate(2024, time.June, 1), got.JoinDate)
	s.Nil(got.SalaryPaymentDate)

	_, err = s.repos.EmployeeRepo.FindEmployeeByID(s.ctx, emp.EmployeeID+100)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *LedgerStoreTestSuite) TestListEmployeesSearch() {
	s.createEmployee("Bilal", 30000)
	s.createEmployee("ahmed", 40000)

	all, err := s.repos.EmployeeRepo.ListEmployees(s.ctx, "")
	s.Require().NoError(err)
	s.Len(all, 2)

	found, err := s.repos.EmployeeRepo.ListEmployees(s.ctx, "AHM")
	s.Require().NoError(err)
	s.Require().Len(found, 1)
	s.Equal("ahmed", found[0].Name)
}

func (s *LedgerStoreTestSuite) TestWithdrawalScenario() {
	emp := s.createEmployee("Kashif", 50000)

	_, err := s.withdraw(emp.EmployeeID, 20000, time.Time{})
	s.Require().NoError(err)

	remaining, err := s.balance.RemainingBalance(s.ctx, emp.EmployeeID)
	s.Require().NoError(err)
	s.True(remaining.Equal(decimal.NewFromInt(30000)))

	_, err = s.withdraw(emp.EmployeeID, 35000, time.Time{})
	s.ErrorIs(err, apperrors.ErrInsufficientBalance)

	sum, count, err := s.repos.LedgerRepo.SumLedgerEntriesByEmployee(s.ctx, emp.EmployeeID)
	s.Require().NoError(err)
	s.Equal(1, count)
	s.True(sum.Equal(decimal.NewFromInt(20000)))

	rec, err := s.balance.Reconcile(s.ctx, emp.EmployeeID)
	s.Require().NoError(err)
	s.True(rec.Consistent)
}

func (s *LedgerStoreTestSuite) TestWithdrawalStoresDateAndTime() {
	emp := s.createEmployee("Nadeem", 10000)

	entry, err := s.withdraw(emp.EmployeeID, 2500, time.Time{})
	s.Require().NoError(err)

	got, err := s.repos.LedgerRepo.FindLedgerEntryByID(s.ctx, entry.EntryID)
	s.Require().NoError(err)
	s.Equal(clock.CivilDate(2025, time.January, 10), got.Date)
	s.Equal(domain.TimeOfDay{Hour: 9}, got.Time)
	s.True(got.Amount.Equal(decimal.NewFromInt(2500)))
}

func (s *LedgerStoreTestSuite) TestConcurrentWithdrawalsDoNotDoubleSpend() {
	emp := s.createEmployee("Sajid", 50000)
	_, err := s.withdraw(emp.EmployeeID, 20000, time.Time{})
	s.Require().NoError(err)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = s.withdraw(emp.EmployeeID, 20000, time.Time{})
		}(i)
	}
	wg.Wait()

	succeeded, rejected := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, apperrors.ErrInsufficientBalance):
			rejected++
		default:
			s.Failf("unexpected error", "%v", err)
		}
	}
	s.Equal(1, succeeded)
	s.Equal(1, rejected)

	remaining, err := s.balance.RemainingBalance(s.ctx, emp.EmployeeID)
	s.Require().NoError(err)
	s.True(remaining.Equal(decimal.NewFromInt(10000)), "remaining %s", remaining)
}

func (s *LedgerStoreTestSuite) TestMonthlySummaryRollover() {
	emp := s.createEmployee("Imran", 100000)
	_, err := s.withdraw(emp.EmployeeID, 1000, clock.CivilDate(2024, time.December, 31))
	s.Require().NoError(err)
	_, err = s.withdraw(emp.EmployeeID, 2000, clock.CivilDate(2025, time.January, 1))
	s.Require().NoError(err)
	_, err = s.withdraw(emp.EmployeeID, 3000, clock.CivilDate(2025, time.January, 31))
	s.Require().NoError(err)

	dec, err := s.aggregation.MonthlySummary(s.ctx, 2024, time.December)
	s.Require().NoError(err)
	s.Equal(1, dec.TransactionCount)
	s.True(dec.TotalWithdrawn.Equal(decimal.NewFromInt(1000)))

	jan, err := s.aggregation.MonthlySummary(s.ctx, 2025, time.January)
	s.Require().NoError(err)
	s.Equal(2, jan.TransactionCount)
	s.True(jan.TotalWithdrawn.Equal(decimal.NewFromInt(5000)))
	s.Require().Len(jan.Entries, 2)
	s.Equal(clock.CivilDate(2025, time.January, 31), jan.Entries[0].Date)
	s.Equal("Imran", jan.Entries[0].EmployeeName)
}

func (s *LedgerStoreTestSuite) TestMarkAttendanceUpsertKeepsLatest() {
	emp := s.createEmployee("Usman", 20000)
	day := clock.CivilDate(2025, time.January, 8)

	n, err := s.attendance.MarkAttendance(s.ctx, day, []domain.AttendanceMark{{EmployeeID: emp.EmployeeID, Status: "present"}}, "admin")
	s.Require().NoError(err)
	s.Equal(1, n)

	in := domain.TimeOfDay{Hour: 9}
	n, err = s.attendance.MarkAttendance(s.ctx, day, []domain.AttendanceMark{{EmployeeID: emp.EmployeeID, Status: "Half Day", CheckIn: &in, Note: "left early"}}, "admin")
	s.Require().NoError(err)
	s.Equal(1, n)

	records, err := s.attendance.ListAttendance(s.ctx, emp.EmployeeID, day, day)
	s.Require().NoError(err)
	s.Require().Len(records, 1)
	s.Equal(domain.StatusHalfDay, records[0].Status)
	s.Equal("left early", records[0].Note)
	s.Require().NotNil(records[0].CheckIn)
	s.Equal(in, *records[0].CheckIn)
	s.Nil(records[0].CheckOut)
}

func (s *LedgerStoreTestSuite) TestMarkAttendanceUnknownEmployeeRollsBack() {
	emp := s.createEmployee("Hamza", 20000)
	day := clock.CivilDate(2025, time.January, 9)

	_, err := s.attendance.MarkAttendance(s.ctx, day, []domain.AttendanceMark{
		{EmployeeID: emp.EmployeeID, Status: "present"},
		{EmployeeID: emp.EmployeeID + 999, Status: "absent"},
	}, "admin")
	s.ErrorIs(err, apperrors.ErrNotFound)

	records, err := s.attendance.ListAttendance(s.ctx, emp.EmployeeID, day, day)
	s.Require().NoError(err)
	s.Empty(records)
}

func (s *LedgerStoreTestSuite) TestAttendanceSummaryAndGrid() {
	emp := s.createEmployee("Zubair", 20000)
	marks := map[int]string{2: "present", 3: "present", 4: "absent", 5: "leave"}
	for day, status := range marks {
		_, err := s.attendance.MarkAttendance(s.ctx, clock.CivilDate(2025, time.January, day),
			[]domain.AttendanceMark{{EmployeeID: emp.EmployeeID, Status: status}}, "admin")
		s.Require().NoError(err)
	}

	summary, err := s.aggregation.AttendanceSummary(s.ctx, emp.EmployeeID,
		clock.CivilDate(2025, time.January, 1), clock.CivilDate(2025, time.January, 5))
	s.Require().NoError(err)
	s.Equal(2, summary.Present)
	s.Equal(1, summary.Absent)
	s.Equal(1, summary.Leave)
	s.Equal(4, summary.TotalMarked)
	s.True(summary.Percentage.Equal(decimal.NewFromInt(50)), "percentage %s", summary.Percentage)

	grid, err := s.aggregation.MonthlyAttendanceGrid(s.ctx, 2025, time.January)
	s.Require().NoError(err)
	s.Require().Contains(grid, emp.EmployeeID)
	s.Len(grid[emp.EmployeeID].Days, 4)
	s.Equal(domain.StatusAbsent, grid[emp.EmployeeID].Days[4].Status)
	_, marked := grid[emp.EmployeeID].Days[6]
	s.False(marked)
}

func (s *LedgerStoreTestSuite) TestDeleteEmployeeCascades() {
	emp := s.createEmployee("Farhan", 30000)
	entry, err := s.withdraw(emp.EmployeeID, 5000, time.Time{})
	s.Require().NoError(err)
	_, err = s.attendance.MarkAttendance(s.ctx, clock.CivilDate(2025, time.January, 10),
		[]domain.AttendanceMark{{EmployeeID: emp.EmployeeID, Status: "present"}}, "admin")
	s.Require().NoError(err)

	s.Require().NoError(s.employees.DeleteEmployee(s.ctx, emp.EmployeeID))

	_, err = s.repos.LedgerRepo.FindLedgerEntryByID(s.ctx, entry.EntryID)
	s.ErrorIs(err, apperrors.ErrNotFound)

	records, err := s.repos.AttendanceRepo.ListAttendanceBetween(s.ctx,
		clock.CivilDate(2025, time.January, 1), clock.CivilDate(2025, time.February, 1))
	s.Require().NoError(err)
	s.Empty(records)

	s.ErrorIs(s.employees.DeleteEmployee(s.ctx, emp.EmployeeID), apperrors.ErrNotFound)
}

func (s *LedgerStoreTestSuite) TestLedgerPagination() {
	emp := s.createEmployee("Tariq", 100000)
	for day := 1; day <= 5; day++ {
		_, err := s.withdraw(emp.EmployeeID, int64(day*100), clock.CivilDate(2025, time.January, day))
		s.Require().NoError(err)
	}

	page1, err := s.employees.ListLedgerEntries(s.ctx, emp.EmployeeID, dto.ListLedgerEntriesParams{Limit: 2})
	s.Require().NoError(err)
	s.Require().Len(page1.Entries, 2)
	s.Require().NotNil(page1.NextToken)
	s.Equal("2025-01-05", page1.Entries[0].Date)
	s.Equal("2025-01-04", page1.Entries[1].Date)

	page2, err := s.employees.ListLedgerEntries(s.ctx, emp.EmployeeID, dto.ListLedgerEntriesParams{Limit: 2, NextToken: *page1.NextToken})
	s.Require().NoError(err)
	s.Require().Len(page2.Entries, 2)
	s.Equal("2025-01-03", page2.Entries[0].Date)

	page3, err := s.employees.ListLedgerEntries(s.ctx, emp.EmployeeID, dto.ListLedgerEntriesParams{Limit: 2, NextToken: *page2.NextToken})
	s.Require().NoError(err)
	s.Require().Len(page3.Entries, 1)
	s.Nil(page3.NextToken)
}

func (s *LedgerStoreTestSuite) TestUserRepository() {
	now := testNow.In(clock.Location)
	err := s.repos.UserRepo.SaveUser(s.ctx, domain.User{
		UserID:       "u-1",
		Username:     "admin",
		PasswordHash: "hash",
		Name:         "Administrator",
		Email:        "Owner@Example.com",
		AuditFields:  domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	})
	s.Require().NoError(err)

	byEmail, err := s.repos.UserRepo.FindUserByEmail(s.ctx, "owner@example.com")
	s.Require().NoError(err)
	s.Equal("u-1", byEmail.UserID)
	s.True(byEmail.CreatedAt.Equal(now))

	err = s.repos.UserRepo.SaveUser(s.ctx, domain.User{UserID: "u-2", Username: "admin", PasswordHash: "x",
		AuditFields: domain.AuditFields{CreatedAt: now, UpdatedAt: now}})
	s.ErrorIs(err, apperrors.ErrDuplicate)

	s.Require().NoError(s.repos.UserRepo.UpdatePasswordHash(s.ctx, "u-1", "new-hash", now))
	byName, err := s.repos.UserRepo.FindUserByUsername(s.ctx, "admin")
	s.Require().NoError(err)
	s.Equal("new-hash", byName.PasswordHash)

	_, err = s.repos.UserRepo.FindUserByID(s.ctx, "missing")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "ledger.db")
	db, err := sqlite.Open(context.Background(), path)
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = sqlite.Open(context.Background(), path)
	require.NoError(t, err)
	assert.NoError(t, db.Close())
}
