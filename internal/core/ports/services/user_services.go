package services

import (
	"context"

	"github.com/SscSPs/salary_ledger/internal/core/domain"
)

// UserReaderSvc defines read operations for admin users.
type UserReaderSvc interface {
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}

// UserAuthSvc defines credential operations.
type UserAuthSvc interface {
	// AuthenticateUser checks a username and password pair.
	AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error)

	// ChangePassword replaces the password after verifying the current one.
	ChangePassword(ctx context.Context, userID, oldPassword, newPassword, confirmPassword string) error

	// EnsureDefaultAdmin creates the bootstrap administrator when it does not exist.
	EnsureDefaultAdmin(ctx context.Context, username, password string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserAuthSvc
}
