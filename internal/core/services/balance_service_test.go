package services_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/SscSPs/salary_ledger/internal/apperrors"
	"github.com/SscSPs/salary_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/salary_ledger/internal/core/ports/services"
	"github.com/SscSPs/salary_ledger/internal/core/services"
	"github.com/SscSPs/salary_ledger/internal/middleware"
	"github.com/SscSPs/salary_ledger/internal/platform/clock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// 10:30 in UTC+5.
var testNow = time.Date(2025, time.March, 15, 5, 30, 0, 0, time.UTC)

func decEq(v int64) interface{} {
	want := decimal.NewFromInt(v)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) })
}

type BalanceServiceTestSuite struct {
	suite.Suite
	mockEmployeeRepo *MockEmployeeRepository
	mockLedgerRepo   *MockLedgerRepository
	txManager        *MockTxManager
	service          portssvc.BalanceSvcFacade
}

func (suite *BalanceServiceTestSuite) SetupTest() {
	suite.mockEmployeeRepo = new(MockEmployeeRepository)
	suite.mockLedgerRepo = new(MockLedgerRepository)
	suite.txManager = NewMockTxManager()
	suite.service = services.NewBalanceService(
		suite.mockEmployeeRepo,
		suite.mockLedgerRepo,
		suite.txManager,
		services.WithBalanceClock(clock.Fixed{At: testNow}),
	)
}

func (suite *BalanceServiceTestSuite) employee(salary, withdrawn int64) *domain.Employee {
	return &domain.Employee{
		EmployeeID:     1,
		Name:           "Ali",
		Designation:    "Chef",
		Salary:         decimal.NewFromInt(salary),
		TotalWithdrawn: decimal.NewFromInt(withdrawn),
		JoinDate:       clock.CivilDate(2024, time.January, 1),
	}
}

func (suite *BalanceServiceTestSuite) TestRecordWithdrawal_Success() {
	ctx := context.Background()
	store := suite.txManager.Store
	date := clock.CivilDate(2025, time.March, 10)

	store.On("LockEmployee", mock.Anything, int64(1)).Return(suite.employee(50000, 0), nil).Once()
	store.On("InsertLedgerEntry", mock.Anything, mock.MatchedBy(func(e domain.LedgerEntry) bool {
		return e.EmployeeID == 1 &&
			e.Amount.Equal(decimal.NewFromInt(20000)) &&
			e.Date.Equal(date) &&
			e.Time == domain.TimeOfDay{Hour: 10, Minute: 30} &&
			e.Note == "advance"
	})).Return(&domain.LedgerEntry{EntryID: 7, EmployeeID: 1, Amount: decimal.NewFromInt(20000), Date: date}, nil).Once()
	store.On("SetTotalWithdrawn", mock.Anything, int64(1), decEq(20000), mock.AnythingOfType("time.Time")).Return(nil).Once()

	entry, err := suite.service.RecordWithdrawal(ctx, 1, decimal.NewFromInt(20000), date, "advance")

	suite.Require().NoError(err)
	suite.Require().NotNil(entry)
	suite.Equal(int64(7), entry.EntryID)
	suite.Equal(1, suite.txManager.Committed)
	store.AssertExpectations(suite.T())
}

func (suite *BalanceServiceTestSuite) TestRecordWithdrawal_DefaultsToToday() {
	ctx := context.Background()
	store := suite.txManager.Store
	today := clock.CivilDate(2025, time.March, 15)

	store.On("LockEmployee", mock.Anything, int64(1)).Return(suite.employee(50000, 0), nil).Once()
	store.On("InsertLedgerEntry", mock.Anything, mock.MatchedBy(func(e domain.LedgerEntry) bool {
		return e.Date.Equal(today)
	})).Return(&domain.LedgerEntry{EntryID: 1, Date: today}, nil).Once()
	store.On("SetTotalWithdrawn", mock.Anything, int64(1), decEq(100), mock.Anything).Return(nil).Once()

	_, err := suite.service.RecordWithdrawal(ctx, 1, decimal.NewFromInt(100), time.Time{}, "")

	suite.Require().NoError(err)
	store.AssertExpectations(suite.T())
}

func (suite *BalanceServiceTestSuite) TestRecordWithdrawal_ExactRemainingAllowed() {
	ctx := context.Background()
	store := suite.txManager.Store

	store.On("LockEmployee", mock.Anything, int64(1)).Return(suite.employee(50000, 20000), nil).Once()
	store.On("InsertLedgerEntry", mock.Anything, mock.Anything).Return(&domain.LedgerEntry{EntryID: 2}, nil).Once()
	store.On("SetTotalWithdrawn", mock.Anything, int64(1), decEq(50000), mock.Anything).Return(nil).Once()

	_, err := suite.service.RecordWithdrawal(ctx, 1, decimal.NewFromInt(30000), time.Time{}, "")

	suite.Require().NoError(err)
	store.AssertExpectations(suite.T())
}

func (suite *BalanceServiceTestSuite) TestRecordWithdrawal_InsufficientBalance() {
	ctx := context.Background()
	store := suite.txManager.Store

	store.On("LockEmployee", mock.Anything, int64(1)).Return(suite.employee(50000, 20000), nil).Once()

	entry, err := suite.service.RecordWithdrawal(ctx, 1, decimal.NewFromInt(35000), time.Time{}, "")

	suite.Require().Error(err)
	suite.Nil(entry)
	suite.ErrorIs(err, apperrors.ErrInsufficientBalance)
	suite.Equal(1, suite.txManager.RolledBack)
	store.AssertNotCalled(suite.T(), "InsertLedgerEntry", mock.Anything, mock.Anything)
	store.AssertNotCalled(suite.T(), "SetTotalWithdrawn", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BalanceServiceTestSuite) TestRecordWithdrawal_LogLevels() {
	var buf bytes.Buffer
	ctx := middleware.WithLogger(context.Background(), slog.New(slog.NewJSONHandler(&buf, nil)))
	store := suite.txManager.Store

	store.On("LockEmployee", mock.Anything, int64(1)).Return(suite.employee(50000, 20000), nil).Once()
	_, err := suite.service.RecordWithdrawal(ctx, 1, decimal.NewFromInt(35000), time.Time{}, "")
	suite.ErrorIs(err, apperrors.ErrInsufficientBalance)
	_, err = suite.service.RecordWithdrawal(ctx, 1, decimal.Zero, time.Time{}, "")
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.Contains(buf.String(), `"level":"WARN"`)
	suite.NotContains(buf.String(), `"level":"ERROR"`)

	buf.Reset()
	store.On("LockEmployee", mock.Anything, int64(2)).Return(nil, errors.New("connection reset")).Once()
	_, err = suite.service.RecordWithdrawal(ctx, 2, decimal.NewFromInt(10), time.Time{}, "")
	suite.Error(err)
	suite.Contains(buf.String(), `"level":"ERROR"`)
}

func (suite *BalanceServiceTestSuite) TestRecordWithdrawal_InvalidAmount() {
	ctx := context.Background()

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		entry, err := suite.service.RecordWithdrawal(ctx, 1, amount, time.Time{}, "")
		suite.Nil(entry)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
	suite.Equal(0, suite.txManager.Calls)
}

func (suite *BalanceServiceTestSuite) TestRecordWithdrawal_EmployeeNotFound() {
	ctx := context.Background()
	store := suite.txManager.Store

	store.On("LockEmployee", mock.Anything, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.RecordWithdrawal(ctx, 99, decimal.NewFromInt(10), time.Time{}, "")

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Equal(1, suite.txManager.RolledBack)
}

func (suite *BalanceServiceTestSuite) TestRecordWithdrawal_InsertFailureRollsBack() {
	ctx := context.Background()
	store := suite.txManager.Store

	store.On("LockEmployee", mock.Anything, int64(1)).Return(suite.employee(50000, 0), nil).Once()
	store.On("InsertLedgerEntry", mock.Anything, mock.Anything).Return(nil, assert.AnError).Once()

	_, err := suite.service.RecordWithdrawal(ctx, 1, decimal.NewFromInt(10), time.Time{}, "")

	suite.ErrorIs(err, assert.AnError)
	suite.Equal(1, suite.txManager.RolledBack)
	store.AssertNotCalled(suite.T(), "SetTotalWithdrawn", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BalanceServiceTestSuite) TestRemainingBalance() {
	ctx := context.Background()
	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, int64(1)).Return(suite.employee(50000, 20000), nil).Once()

	remaining, err := suite.service.RemainingBalance(ctx, 1)

	suite.Require().NoError(err)
	suite.True(remaining.Equal(decimal.NewFromInt(30000)))
}

func (suite *BalanceServiceTestSuite) TestRemainingBalance_NotFound() {
	ctx := context.Background()
	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, int64(3)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.RemainingBalance(ctx, 3)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *BalanceServiceTestSuite) TestReconcile_DetectsDrift() {
	ctx := context.Background()
	suite.mockEmployeeRepo.On("FindEmployeeByID", ctx, int64(1)).Return(suite.employee(50000, 25000), nil).Once()
	suite.mockLedgerRepo.On("SumLedgerEntriesByEmployee", ctx, int64(1)).Return(decimal.NewFromInt(20000), 2, nil).Once()

	rec, err := suite.service.Reconcile(ctx, 1)

	suite.Require().NoError(err)
	suite.False(rec.Consistent)
	suite.True(rec.Drift.Equal(decimal.NewFromInt(5000)))
	suite.Equal(2, rec.EntryCount)
	suite.False(rec.Repaired)
}

func (suite *BalanceServiceTestSuite) TestRepairTotal_RewritesStoredTotal() {
	ctx := context.Background()
	store := suite.txManager.Store

	store.On("LockEmployee", mock.Anything, int64(1)).Return(suite.employee(50000, 25000), nil).Once()
	store.On("SumLedgerEntries", mock.Anything, int64(1)).Return(decimal.NewFromInt(20000), 2, nil).Once()
	store.On("SetTotalWithdrawn", mock.Anything, int64(1), decEq(20000), mock.Anything).Return(nil).Once()

	rec, err := suite.service.RepairTotal(ctx, 1)

	suite.Require().NoError(err)
	suite.True(rec.Repaired)
	suite.True(rec.Consistent)
	suite.True(rec.PreviousStored.Equal(decimal.NewFromInt(25000)))
	suite.True(rec.StoredTotal.Equal(decimal.NewFromInt(20000)))
	store.AssertExpectations(suite.T())
}

func (suite *BalanceServiceTestSuite) TestRepairTotal_NoopWhenConsistent() {
	ctx := context.Background()
	store := suite.txManager.Store

	store.On("LockEmployee", mock.Anything, int64(1)).Return(suite.employee(50000, 20000), nil).Once()
	store.On("SumLedgerEntries", mock.Anything, int64(1)).Return(decimal.NewFromInt(20000), 1, nil).Once()

	rec, err := suite.service.RepairTotal(ctx, 1)

	suite.Require().NoError(err)
	suite.False(rec.Repaired)
	store.AssertNotCalled(suite.T(), "SetTotalWithdrawn", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestBalanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BalanceServiceTestSuite))
}
