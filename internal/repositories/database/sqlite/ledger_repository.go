package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/salary_ledger/internal/apperrors"
	"github.com/SscSPs/salary_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/salary_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/salary_ledger/internal/models"
	"github.com/SscSPs/salary_ledger/internal/utils/mapping"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

const selectLedgerColumns = `
	SELECT l.entry_id, l.employee_id, l.amount, l.entry_date, l.recorded_time, l.note, l.created_at`

type SqliteLedgerRepository struct {
	BaseRepository
}

func newSqliteLedgerRepository(db *sqlx.DB) *SqliteLedgerRepository {
	return &SqliteLedgerRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.LedgerRepositoryFacade = (*SqliteLedgerRepository)(nil)

// sumLedgerEntries adds amounts in Go. Amounts are stored as TEXT, and SQL
// SUM over them would go through floating point.
func sumLedgerEntries(ctx context.Context, q sqlx.QueryerContext, employeeID int64) (decimal.Decimal, int, error) {
	var amounts []decimal.Decimal
	err := sqlx.SelectContext(ctx, q, &amounts, `SELECT amount FROM ledger_entries WHERE employee_id = ?`, employeeID)
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("failed to sum ledger entries for employee %d: %w", employeeID, err)
	}
	sum := decimal.Zero
	for _, a := range amounts {
		sum = sum.Add(a)
	}
	return sum, len(amounts), nil
}

func (r *SqliteLedgerRepository) FindLedgerEntryByID(ctx context.Context, entryID int64) (*domain.LedgerEntry, error) {
	var m models.LedgerEntry
	err := r.DB.GetContext(ctx, &m, selectLedgerColumns+` FROM ledger_entries l WHERE l.entry_id = ?`, entryID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("ledger entry %d: %w", entryID, apperrors.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find ledger entry %d: %w", entryID, err)
	}
	entry, err := mapping.ToDomainLedgerEntry(m)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *SqliteLedgerRepository) ListLedgerEntriesByEmployee(ctx context.Context, employeeID int64, limit int, after *portsrepo.LedgerCursor) ([]domain.LedgerEntry, error) {
	var sb strings.Builder
	sb.WriteString(selectLedgerColumns)
	sb.WriteString(` FROM ledger_entries l WHERE l.employee_id = ?`)
	args := []any{employeeID}

	if after != nil {
		sb.WriteString(` AND (l.entry_date, l.entry_id) < (?, ?)`)
		args = append(args, mapping.FormatDate(after.Date), after.EntryID)
	}
	sb.WriteString(` ORDER BY l.entry_date DESC, l.entry_id DESC`)
	if limit > 0 {
		sb.WriteString(` LIMIT ?`)
		args = append(args, limit)
	}

	var modelEntries []models.LedgerEntry
	if err := r.DB.SelectContext(ctx, &modelEntries, sb.String(), args...); err != nil {
		return nil, fmt.Errorf("failed to list ledger entries for employee %d: %w", employeeID, err)
	}
	return mapping.ToDomainLedgerEntrySlice(modelEntries)
}

func (r *SqliteLedgerRepository) ListLedgerEntriesBetween(ctx context.Context, from, until time.Time) ([]domain.LedgerEntryWithEmployee, error) {
	query := selectLedgerColumns + `, e.name AS employee_name, e.designation AS employee_designation
		FROM ledger_entries l
		JOIN employees e ON e.employee_id = l.employee_id
		WHERE l.entry_date >= ? AND l.entry_date < ?
		ORDER BY l.entry_date DESC, l.entry_id DESC`
	return r.listWithEmployee(ctx, query, mapping.FormatDate(from), mapping.FormatDate(until))
}

// ListRecentLedgerEntries orders by entry_id, which follows insertion order
// under AUTOINCREMENT.
func (r *SqliteLedgerRepository) ListRecentLedgerEntries(ctx context.Context, limit int) ([]domain.LedgerEntryWithEmployee, error) {
	query := selectLedgerColumns + `, e.name AS employee_name, e.designation AS employee_designation
		FROM ledger_entries l
		JOIN employees e ON e.employee_id = l.employee_id
		ORDER BY l.entry_id DESC
		LIMIT ?`
	return r.listWithEmployee(ctx, query, limit)
}

func (r *SqliteLedgerRepository) listWithEmployee(ctx context.Context, query string, args ...any) ([]domain.LedgerEntryWithEmployee, error) {
	var modelEntries []models.LedgerEntryWithEmployee
	if err := r.DB.SelectContext(ctx, &modelEntries, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	return mapping.ToDomainLedgerEntryWithEmployeeSlice(modelEntries)
}

func (r *SqliteLedgerRepository) SumLedgerEntriesByEmployee(ctx context.Context, employeeID int64) (decimal.Decimal, int, error) {
	return sumLedgerEntries(ctx, r.DB, employeeID)
}
