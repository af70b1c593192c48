package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/salary_ledger/internal/apperrors"
	"github.com/SscSPs/salary_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/salary_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/salary_ledger/internal/models"
	"github.com/SscSPs/salary_ledger/internal/utils/mapping"
	"github.com/jmoiron/sqlx"
)

type SqliteUserRepository struct {
	BaseRepository
}

func newSqliteUserRepository(db *sqlx.DB) *SqliteUserRepository {
	return &SqliteUserRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.UserRepositoryFacade = (*SqliteUserRepository)(nil)

func (r *SqliteUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	_, err := r.DB.NamedExecContext(ctx, `
		INSERT INTO users (user_id, username, password_hash, name, email, created_at, updated_at)
		VALUES (:user_id, :username, :password_hash, :name, :email, :created_at, :updated_at)`, m)
	if err != nil {
		return mapSQLiteError(err, "failed to save user %s", user.Username)
	}
	return nil
}

func (r *SqliteUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findOne(ctx, `user_id = ?`, userID)
}

func (r *SqliteUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, `username = ?`, username)
}

func (r *SqliteUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, `lower(email) = lower(?)`, email)
}

func (r *SqliteUserRepository) findOne(ctx context.Context, where string, value string) (*domain.User, error) {
	var m models.User
	err := r.DB.GetContext(ctx, &m, `
		SELECT user_id, username, password_hash, name, email, created_at, updated_at
		FROM users
		WHERE `+where, value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	user := mapping.ToDomainUser(m)
	return &user, nil
}

func (r *SqliteUserRepository) UpdatePasswordHash(ctx context.Context, userID string, passwordHash string, at time.Time) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE users SET password_hash = ?, updated_at = ? WHERE user_id = ?`,
		passwordHash, at, userID)
	if err != nil {
		return fmt.Errorf("failed to update password for user %s: %w", userID, err)
	}
	return requireRow(res, "user", userID)
}
