package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/salary_ledger/internal/apperrors"
	"github.com/SscSPs/salary_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/salary_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/salary_ledger/internal/core/ports/services"
	"github.com/SscSPs/salary_ledger/internal/platform/clock"
	"github.com/SscSPs/salary_ledger/internal/utils"
	"github.com/google/uuid"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
}

// UserOption is a functional option for configuring the user service
type UserOption func(*userService)

// WithUserClock overrides the clock used for audit timestamps.
func WithUserClock(c clock.Clock) UserOption {
	return func(s *userService) {
		s.Clock = c
	}
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, options ...UserOption) portssvc.UserSvcFacade {
	svc := &userService{
		BaseService: BaseService{Clock: clock.System{}},
		userRepo:    userRepo,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}
	return user, nil
}

func (s *userService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}
	return user, nil
}

func (s *userService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "Login attempt for unknown user", slog.String("username", username))
			return nil, fmt.Errorf("invalid username or password: %w", apperrors.ErrUnauthorized)
		}
		s.LogError(ctx, err, "Failed to look up user", slog.String("username", username))
		return nil, err
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogDebug(ctx, "Password mismatch", slog.String("user_id", user.UserID))
		return nil, fmt.Errorf("invalid username or password: %w", apperrors.ErrUnauthorized)
	}
	return user, nil
}

func (s *userService) ChangePassword(ctx context.Context, userID, oldPassword, newPassword, confirmPassword string) error {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}

	if !utils.CheckPasswordHash(oldPassword, user.PasswordHash) {
		return fmt.Errorf("current password is incorrect: %w", apperrors.ErrUnauthorized)
	}
	if newPassword != confirmPassword {
		return fmt.Errorf("new passwords do not match: %w", apperrors.ErrValidation)
	}
	if len(newPassword) < utils.MinPasswordLength {
		return fmt.Errorf("password must be at least %d characters: %w", utils.MinPasswordLength, apperrors.ErrValidation)
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password", slog.String("user_id", userID))
		return fmt.Errorf("failed to hash password: %w", err)
	}
	if err := s.userRepo.UpdatePasswordHash(ctx, userID, hash, s.Now()); err != nil {
		s.LogError(ctx, err, "Failed to store password", slog.String("user_id", userID))
		return err
	}

	s.LogInfo(ctx, "Password changed", slog.String("user_id", userID))
	return nil
}

// EnsureDefaultAdmin seeds the bootstrap account on first start. An empty
// password is replaced with a random one that is logged once.
func (s *userService) EnsureDefaultAdmin(ctx context.Context, username, password string) (*domain.User, error) {
	existing, err := s.userRepo.FindUserByUsername(ctx, username)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	if password == "" {
		password, err = utils.GenerateSecureRandomString(12)
		if err != nil {
			return nil, fmt.Errorf("failed to generate admin password: %w", err)
		}
		s.GetLogger(ctx).Warn("DEFAULT_ADMIN_PASSWORD not set, generated a random password for the default admin",
			slog.String("username", username),
			slog.String("password", password))
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := s.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     username,
		PasswordHash: hash,
		Name:         "Administrator",
		AuditFields: domain.AuditFields{
			CreatedAt: now,
			UpdatedAt: now,
		},
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		s.LogError(ctx, err, "Failed to create default admin", slog.String("username", username))
		return nil, err
	}

	s.LogInfo(ctx, "Default admin created", slog.String("username", username))
	return &user, nil
}
