package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/salary_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerCursor marks the last entry of a page in (date desc, entry id desc) order.
type LedgerCursor struct {
	Date    time.Time
	EntryID int64
}

// LedgerReader defines read operations for ledger entries. Entries are
// written only through TxStore.
type LedgerReader interface {
	FindLedgerEntryByID(ctx context.Context, entryID int64) (*domain.LedgerEntry, error)
	// ListLedgerEntriesByEmployee returns entries newest first, starting after
	// the cursor when one is given. limit <= 0 returns everything.
	ListLedgerEntriesByEmployee(ctx context.Context, employeeID int64, limit int, after *LedgerCursor) ([]domain.LedgerEntry, error)
	// ListLedgerEntriesBetween returns every employee's entries dated in
	// [from, until), newest first.
	ListLedgerEntriesBetween(ctx context.Context, from, until time.Time) ([]domain.LedgerEntryWithEmployee, error)
	// ListRecentLedgerEntries returns the most recently created entries.
	ListRecentLedgerEntries(ctx context.Context, limit int) ([]domain.LedgerEntryWithEmployee, error)
	SumLedgerEntriesByEmployee(ctx context.Context, employeeID int64) (decimal.Decimal, int, error)
}

// LedgerRepositoryFacade combines all ledger repository operations.
type LedgerRepositoryFacade interface {
	LedgerReader
}
