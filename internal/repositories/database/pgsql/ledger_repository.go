package pgsql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/salary_ledger/internal/apperrors"
	"github.com/SscSPs/salary_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/salary_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/salary_ledger/internal/models"
	"github.com/SscSPs/salary_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const selectLedgerColumns = `
	SELECT l.entry_id, l.employee_id, l.amount, l.entry_date::text AS entry_date,
		l.recorded_time::text AS recorded_time, l.note, l.created_at`

type PgxLedgerRepository struct {
	BaseRepository
}

func newPgxLedgerRepository(pool *pgxpool.Pool) *PgxLedgerRepository {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

// querier is satisfied by both the pool and a transaction.
type querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func sumLedgerEntries(ctx context.Context, q querier, employeeID int64) (decimal.Decimal, int, error) {
	var (
		sum   decimal.Decimal
		count int
	)
	err := q.QueryRow(ctx,
		`SELECT COALESCE(SUM(amount), 0), COUNT(*) FROM ledger_entries WHERE employee_id = $1`,
		employeeID).Scan(&sum, &count)
	if err != nil {
		return decimal.Zero, 0, fmt.Errorf("failed to sum ledger entries for employee %d: %w", employeeID, err)
	}
	return sum, count, nil
}

func (r *PgxLedgerRepository) FindLedgerEntryByID(ctx context.Context, entryID int64) (*domain.LedgerEntry, error) {
	rows, err := r.Pool.Query(ctx, selectLedgerColumns+` FROM ledger_entries l WHERE l.entry_id = $1`, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find ledger entry %d: %w", entryID, err)
	}
	modelEntries, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.LedgerEntry])
	if err != nil {
		return nil, fmt.Errorf("failed to scan ledger entry: %w", err)
	}
	if len(modelEntries) == 0 {
		return nil, fmt.Errorf("ledger entry %d: %w", entryID, apperrors.ErrNotFound)
	}
	entry, err := mapping.ToDomainLedgerEntry(modelEntries[0])
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *PgxLedgerRepository) ListLedgerEntriesByEmployee(ctx context.Context, employeeID int64, limit int, after *portsrepo.LedgerCursor) ([]domain.LedgerEntry, error) {
	var sb strings.Builder
	sb.WriteString(selectLedgerColumns)
	sb.WriteString(` FROM ledger_entries l WHERE l.employee_id = $1`)
	args := []any{employeeID}

	if after != nil {
		args = append(args, mapping.FormatDate(after.Date), after.EntryID)
		sb.WriteString(` AND (l.entry_date, l.entry_id) < ($2::date, $3)`)
	}
	sb.WriteString(` ORDER BY l.entry_date DESC, l.entry_id DESC`)
	if limit > 0 {
		args = append(args, limit)
		sb.WriteString(fmt.Sprintf(` LIMIT $%d`, len(args)))
	}

	rows, err := r.Pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries for employee %d: %w", employeeID, err)
	}
	modelEntries, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.LedgerEntry])
	if err != nil {
		return nil, fmt.Errorf("failed to scan ledger entries: %w", err)
	}
	return mapping.ToDomainLedgerEntrySlice(modelEntries)
}

func (r *PgxLedgerRepository) ListLedgerEntriesBetween(ctx context.Context, from, until time.Time) ([]domain.LedgerEntryWithEmployee, error) {
	query := selectLedgerColumns + `, e.name AS employee_name, e.designation AS employee_designation
		FROM ledger_entries l
		JOIN employees e ON e.employee_id = l.employee_id
		WHERE l.entry_date >= $1::date AND l.entry_date < $2::date
		ORDER BY l.entry_date DESC, l.entry_id DESC`
	return r.listWithEmployee(ctx, query, mapping.FormatDate(from), mapping.FormatDate(until))
}

func (r *PgxLedgerRepository) ListRecentLedgerEntries(ctx context.Context, limit int) ([]domain.LedgerEntryWithEmployee, error) {
	query := selectLedgerColumns + `, e.name AS employee_name, e.designation AS employee_designation
		FROM ledger_entries l
		JOIN employees e ON e.employee_id = l.employee_id
		ORDER BY l.created_at DESC, l.entry_id DESC
		LIMIT $1`
	return r.listWithEmployee(ctx, query, limit)
}

func (r *PgxLedgerRepository) listWithEmployee(ctx context.Context, query string, args ...any) ([]domain.LedgerEntryWithEmployee, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list ledger entries: %w", err)
	}
	modelEntries, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.LedgerEntryWithEmployee])
	if err != nil {
		return nil, fmt.Errorf("failed to scan ledger entries: %w", err)
	}
	return mapping.ToDomainLedgerEntryWithEmployeeSlice(modelEntries)
}

func (r *PgxLedgerRepository) SumLedgerEntriesByEmployee(ctx context.Context, employeeID int64) (decimal.Decimal, int, error) {
	return sumLedgerEntries(ctx, r.Pool, employeeID)
}
