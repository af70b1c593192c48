package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/salary_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/salary_ledger/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock EmployeeRepository ---
type MockEmployeeRepository struct {
	mock.Mock
}

func (m *MockEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID int64) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	var employee *domain.Employee
	if args.Get(0) != nil {
		employee = args.Get(0).(*domain.Employee)
	}
	return employee, args.Error(1)
}

func (m *MockEmployeeRepository) ListEmployees(ctx context.Context, search string) ([]domain.Employee, error) {
	args := m.Called(ctx, search)
	var employees []domain.Employee
	if args.Get(0) != nil {
		employees = args.Get(0).([]domain.Employee)
	}
	return employees, args.Error(1)
}

func (m *MockEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) (*domain.Employee, error) {
	args := m.Called(ctx, employee)
	var saved *domain.Employee
	if args.Get(0) != nil {
		saved = args.Get(0).(*domain.Employee)
	}
	return saved, args.Error(1)
}

func (m *MockEmployeeRepository) UpdateSalaryPaymentDate(ctx context.Context, employeeID int64, date time.Time, at time.Time) error {
	args := m.Called(ctx, employeeID, date, at)
	return args.Error(0)
}

func (m *MockEmployeeRepository) DeleteEmployee(ctx context.Context, employeeID int64) error {
	args := m.Called(ctx, employeeID)
	return args.Error(0)
}

// --- Mock LedgerRepository ---
type MockLedgerRepository struct {
	mock.Mock
}

func (m *MockLedgerRepository) FindLedgerEntryByID(ctx context.Context, entryID int64) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, entryID)
	var entry *domain.LedgerEntry
	if args.Get(0) != nil {
		entry = args.Get(0).(*domain.LedgerEntry)
	}
	return entry, args.Error(1)
}

func (m *MockLedgerRepository) ListLedgerEntriesByEmployee(ctx context.Context, employeeID int64, limit int, after *portsrepo.LedgerCursor) ([]domain.LedgerEntry, error) {
	args := m.Called(ctx, employeeID, limit, after)
	var entries []domain.LedgerEntry
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.LedgerEntry)
	}
	return entries, args.Error(1)
}

func (m *MockLedgerRepository) ListLedgerEntriesBetween(ctx context.Context, from, until time.Time) ([]domain.LedgerEntryWithEmployee, error) {
	args := m.Called(ctx, from, until)
	var entries []domain.LedgerEntryWithEmployee
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.LedgerEntryWithEmployee)
	}
	return entries, args.Error(1)
}

func (m *MockLedgerRepository) ListRecentLedgerEntries(ctx context.Context, limit int) ([]domain.LedgerEntryWithEmployee, error) {
	args := m.Called(ctx, limit)
	var entries []domain.LedgerEntryWithEmployee
	if args.Get(0) != nil {
		entries = args.Get(0).([]domain.LedgerEntryWithEmployee)
	}
	return entries, args.Error(1)
}

func (m *MockLedgerRepository) SumLedgerEntriesByEmployee(ctx context.Context, employeeID int64) (decimal.Decimal, int, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).(decimal.Decimal), args.Int(1), args.Error(2)
}

// --- Mock AttendanceRepository ---
type MockAttendanceRepository struct {
	mock.Mock
}

func (m *MockAttendanceRepository) ListAttendanceByEmployee(ctx context.Context, employeeID int64, from, until time.Time) ([]domain.AttendanceRecord, error) {
	args := m.Called(ctx, employeeID, from, until)
	var records []domain.AttendanceRecord
	if args.Get(0) != nil {
		records = args.Get(0).([]domain.AttendanceRecord)
	}
	return records, args.Error(1)
}

func (m *MockAttendanceRepository) ListAttendanceBetween(ctx context.Context, from, until time.Time) ([]domain.AttendanceRecord, error) {
	args := m.Called(ctx, from, until)
	var records []domain.AttendanceRecord
	if args.Get(0) != nil {
		records = args.Get(0).([]domain.AttendanceRecord)
	}
	return records, args.Error(1)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdatePasswordHash(ctx context.Context, userID string, passwordHash string, at time.Time) error {
	args := m.Called(ctx, userID, passwordHash, at)
	return args.Error(0)
}

// --- Mock TxStore ---
type MockTxStore struct {
	mock.Mock
}

func (m *MockTxStore) LockEmployee(ctx context.Context, employeeID int64) (*domain.Employee, error) {
	args := m.Called(ctx, employeeID)
	var employee *domain.Employee
	if args.Get(0) != nil {
		employee = args.Get(0).(*domain.Employee)
	}
	return employee, args.Error(1)
}

func (m *MockTxStore) UpdateEmployee(ctx context.Context, employee domain.Employee) error {
	args := m.Called(ctx, employee)
	return args.Error(0)
}

func (m *MockTxStore) SetTotalWithdrawn(ctx context.Context, employeeID int64, total decimal.Decimal, at time.Time) error {
	args := m.Called(ctx, employeeID, total, at)
	return args.Error(0)
}

func (m *MockTxStore) InsertLedgerEntry(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error) {
	args := m.Called(ctx, entry)
	var created *domain.LedgerEntry
	if args.Get(0) != nil {
		created = args.Get(0).(*domain.LedgerEntry)
	}
	return created, args.Error(1)
}

func (m *MockTxStore) SumLedgerEntries(ctx context.Context, employeeID int64) (decimal.Decimal, int, error) {
	args := m.Called(ctx, employeeID)
	return args.Get(0).(decimal.Decimal), args.Int(1), args.Error(2)
}

func (m *MockTxStore) UpsertAttendance(ctx context.Context, records []domain.AttendanceRecord) error {
	args := m.Called(ctx, records)
	return args.Error(0)
}

// MockTxManager runs the callback against Store and records whether the
// transaction would have committed.
type MockTxManager struct {
	Store      *MockTxStore
	Calls      int
	Committed  int
	RolledBack int
}

func NewMockTxManager() *MockTxManager {
	return &MockTxManager{Store: new(MockTxStore)}
}

func (m *MockTxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context, tx portsrepo.TxStore) error) error {
	m.Calls++
	if err := fn(ctx, m.Store); err != nil {
		m.RolledBack++
		return err
	}
	m.Committed++
	return nil
}

var (
	_ portsrepo.EmployeeRepositoryFacade   = (*MockEmployeeRepository)(nil)
	_ portsrepo.LedgerRepositoryFacade     = (*MockLedgerRepository)(nil)
	_ portsrepo.AttendanceRepositoryFacade = (*MockAttendanceRepository)(nil)
	_ portsrepo.UserRepositoryFacade       = (*MockUserRepository)(nil)
	_ portsrepo.TxStore                    = (*MockTxStore)(nil)
	_ portsrepo.TransactionManager         = (*MockTxManager)(nil)
)
