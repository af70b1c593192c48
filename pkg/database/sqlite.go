package database

import (
	"context"
	"log/slog"

	"github.com/SscSPs/salary_ledger/internal/repositories/database/sqlite"
	"github.com/jmoiron/sqlx"
)

// NewSQLiteDB opens the SQLite file at path, migrating it on the way.
func NewSQLiteDB(ctx context.Context, path string) (*sqlx.DB, error) {
	db, err := sqlite.Open(ctx, path)
	if err != nil {
		return nil, err
	}
	slog.Info("Opened SQLite database", slog.String("path", path))
	return db, nil
}

// CloseSQLiteDB closes the SQLite handle.
func CloseSQLiteDB(db *sqlx.DB) {
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		slog.Error("Error closing SQLite database", slog.String("error", err.Error()))
		return
	}
	slog.Info("SQLite database closed")
}
