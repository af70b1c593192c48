package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/salary_ledger/internal/apperrors"
	portsrepo "github.com/SscSPs/salary_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// Begin starts a new database transaction
func (r *BaseRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Commit(ctx); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

// PgxTransactionManager runs callbacks inside a pgx transaction.
type PgxTransactionManager struct {
	BaseRepository
}

func newPgxTransactionManager(pool *pgxpool.Pool) *PgxTransactionManager {
	return &PgxTransactionManager{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionManager = (*PgxTransactionManager)(nil)

func (m *PgxTransactionManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context, tx portsrepo.TxStore) error) error {
	tx, err := m.Begin(ctx)
	if err != nil {
		return err
	}
	defer m.Rollback(ctx, tx) //nolint:errcheck

	if err := fn(ctx, &pgxTxStore{tx: tx}); err != nil {
		return err
	}
	return m.Commit(ctx, tx)
}

// mapPgError translates driver errors into application sentinels.
func mapPgError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), apperrors.ErrDuplicate)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), apperrors.ErrNotFound)
		case "23514": // check_violation
			return fmt.Errorf("%s: %s: %w", fmt.Sprintf(format, args...), pgErr.ConstraintName, apperrors.ErrValidation)
		}
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
