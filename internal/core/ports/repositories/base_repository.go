package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/salary_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// TxStore is the set of writes that must happen under one database
// transaction. Implementations hold row locks taken by LockEmployee until the
// transaction ends.
type TxStore interface {
	// LockEmployee reads the employee row and locks it against concurrent writers.
	LockEmployee(ctx context.Context, employeeID int64) (*domain.Employee, error)
	// UpdateEmployee writes profile fields. TotalWithdrawn is not touched.
	UpdateEmployee(ctx context.Context, employee domain.Employee) error
	// SetTotalWithdrawn overwrites the running withdrawal total.
	SetTotalWithdrawn(ctx context.Context, employeeID int64, total decimal.Decimal, at time.Time) error
	// InsertLedgerEntry appends an entry and returns it with its new ID.
	InsertLedgerEntry(ctx context.Context, entry domain.LedgerEntry) (*domain.LedgerEntry, error)
	// SumLedgerEntries totals the employee's entries and counts them.
	SumLedgerEntries(ctx context.Context, employeeID int64) (decimal.Decimal, int, error)
	// UpsertAttendance inserts or overwrites records keyed by (employee, date).
	UpsertAttendance(ctx context.Context, records []domain.AttendanceRecord) error
}

// TransactionManager runs fn inside a transaction. The transaction commits when
// fn returns nil and rolls back otherwise; fn's error is returned unchanged.
type TransactionManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context, tx TxStore) error) error
}
