package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/salary_ledger/internal/apperrors"
	"github.com/SscSPs/salary_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/salary_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/salary_ledger/internal/models"
	"github.com/SscSPs/salary_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	BaseRepository
}

func newPgxUserRepository(pool *pgxpool.Pool) *PgxUserRepository {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxUserRepository implements portsrepo.UserRepositoryFacade
var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	query := `
		INSERT INTO users (user_id, username, password_hash, name, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query, m.UserID, m.Username, m.PasswordHash, m.Name, m.Email, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		return mapPgError(err, "failed to save user %s", user.Username)
	}
	return nil
}

func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findOne(ctx, "user_id", userID)
}

func (r *PgxUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, "username", username)
}

func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, "lower(email)", email)
}

// findOne looks up a user by one of the fixed key columns above.
func (r *PgxUserRepository) findOne(ctx context.Context, column string, value string) (*domain.User, error) {
	query := `
		SELECT user_id, username, password_hash, name, email, created_at, updated_at
		FROM users
		WHERE ` + column + ` = `
	if column == "lower(email)" {
		query += `lower($1)`
	} else {
		query += `$1`
	}

	var m models.User
	err := r.Pool.QueryRow(ctx, query, value).Scan(
		&m.UserID,
		&m.Username,
		&m.PasswordHash,
		&m.Name,
		&m.Email,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	if err != nil {
		return nil, mapPgError(err, "failed to find user by %s", column)
	}
	user := mapping.ToDomainUser(m)
	return &user, nil
}

func (r *PgxUserRepository) UpdatePasswordHash(ctx context.Context, userID string, passwordHash string, at time.Time) error {
	ct, err := r.Pool.Exec(ctx,
		`UPDATE users SET password_hash = $2, updated_at = $3 WHERE user_id = $1;`,
		userID, passwordHash, at)
	if err != nil {
		return fmt.Errorf("failed to update password for user %s: %w", userID, err)
	}
	if ct.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
