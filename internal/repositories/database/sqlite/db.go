// Package sqlite stores the ledger in a single SQLite file. Writers are
// serialized by starting every transaction with BEGIN IMMEDIATE.
package sqlite

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/SscSPs/salary_ledger/internal/apperrors"
	"github.com/jmoiron/sqlx"
	moderncsqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const driverName = "sqlite"

// DSN builds the connection string for path with the pragmas every
// connection needs.
func DSN(path string) string {
	return "file:" + path + "?_txlock=immediate&_time_format=sqlite&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"
}

// Open creates the parent directory, migrates the schema and returns a
// ready handle.
func Open(ctx context.Context, path string) (*sqlx.DB, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db directory: %w", err)
		}
	}

	dsn := DSN(path)
	if err := RunMigrations(dsn); err != nil {
		return nil, err
	}

	db, err := sqlx.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// mapSQLiteError translates driver errors into application sentinels.
func mapSQLiteError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	msg := fmt.Sprintf(format, args...)
	var se *moderncsqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return fmt.Errorf("%s: %w", msg, apperrors.ErrDuplicate)
		case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
			return fmt.Errorf("%s: %w", msg, apperrors.ErrNotFound)
		case sqlite3.SQLITE_CONSTRAINT_CHECK:
			return fmt.Errorf("%s: %w", msg, apperrors.ErrValidation)
		}
		// Without extended result codes only the primary code is set.
		if se.Code()&0xff == sqlite3.SQLITE_CONSTRAINT {
			text := se.Error()
			switch {
			case strings.Contains(text, "UNIQUE"):
				return fmt.Errorf("%s: %w", msg, apperrors.ErrDuplicate)
			case strings.Contains(text, "FOREIGN KEY"):
				return fmt.Errorf("%s: %w", msg, apperrors.ErrNotFound)
			case strings.Contains(text, "CHECK"):
				return fmt.Errorf("%s: %w", msg, apperrors.ErrValidation)
			}
		}
	}
	return fmt.Errorf("%s: %w", msg, err)
}
