package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/salary_ledger/internal/core/domain"
)

// UserReader defines read operations for admin users.
type UserReader interface {
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserWriter defines write operations for admin users.
type UserWriter interface {
	SaveUser(ctx context.Context, user domain.User) error
	UpdatePasswordHash(ctx context.Context, userID string, passwordHash string, at time.Time) error
}

// UserRepositoryFacade combines all user repository operations.
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
