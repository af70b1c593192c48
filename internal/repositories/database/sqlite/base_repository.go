package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SscSPs/salary_ledger/internal/apperrors"
	portsrepo "github.com/SscSPs/salary_ledger/internal/core/ports/repositories"
	"github.com/jmoiron/sqlx"
)

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	DB *sqlx.DB
}

// Begin starts a new database transaction. The DSN sets _txlock=immediate,
// so the write lock is taken here rather than on first write.
func (r *BaseRepository) Begin(ctx context.Context) (*sqlx.Tx, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to begin transaction", err)
	}
	return tx, nil
}

// Commit commits a transaction
func (r *BaseRepository) Commit(tx *sqlx.Tx) error {
	if err := tx.Commit(); err != nil {
		return apperrors.NewAppError(500, "failed to commit transaction", err)
	}
	return nil
}

// Rollback rolls back a transaction
func (r *BaseRepository) Rollback(tx *sqlx.Tx) error {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		return apperrors.NewAppError(500, "failed to rollback transaction", err)
	}
	return nil
}

// SqliteTransactionManager runs callbacks inside an immediate transaction.
type SqliteTransactionManager struct {
	BaseRepository
}

func newSqliteTransactionManager(db *sqlx.DB) *SqliteTransactionManager {
	return &SqliteTransactionManager{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.TransactionManager = (*SqliteTransactionManager)(nil)

func (m *SqliteTransactionManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context, tx portsrepo.TxStore) error) error {
	tx, err := m.Begin(ctx)
	if err != nil {
		return err
	}
	defer m.Rollback(tx) //nolint:errcheck

	if err := fn(ctx, &sqliteTxStore{tx: tx}); err != nil {
		return err
	}
	return m.Commit(tx)
}

func requireRow(res sql.Result, what string, id any) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%s %v: %w", what, id, apperrors.ErrNotFound)
	}
	return nil
}
