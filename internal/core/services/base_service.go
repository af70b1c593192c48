package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/salary_ledger/internal/apperrors"
	"github.com/SscSPs/salary_ledger/internal/middleware"
	"github.com/SscSPs/salary_ledger/internal/platform/clock"
)

// BaseService provides common functionality for all services
type BaseService struct {
	Clock clock.Clock
}

// GetLogger gets the logger from context or returns a default one
func (s *BaseService) GetLogger(ctx context.Context) *slog.Logger {
	logger := middleware.GetLoggerFromCtx(ctx)
	if logger == nil {
		return slog.Default()
	}
	return logger
}

// LogError logs an error with consistent formatting. Rejections the caller
// is expected to handle (bad input, missing rows, balance checks) go out at
// Warn; everything else at Error.
func (s *BaseService) LogError(ctx context.Context, err error, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	if isRejection(err) {
		logger.Warn(msg, args...)
		return
	}
	logger.Error(msg, args...)
}

func isRejection(err error) bool {
	return errors.Is(err, apperrors.ErrValidation) ||
		errors.Is(err, apperrors.ErrInsufficientBalance) ||
		errors.Is(err, apperrors.ErrNotFound) ||
		errors.Is(err, apperrors.ErrDuplicate) ||
		errors.Is(err, apperrors.ErrUnauthorized)
}

// LogInfo logs an info message with consistent formatting
func (s *BaseService) LogInfo(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Info(msg, keyvals...)
}

// LogDebug logs a debug message with consistent formatting
func (s *BaseService) LogDebug(ctx context.Context, msg string, keyvals ...any) {
	logger := s.GetLogger(ctx)
	logger.Debug(msg, keyvals...)
}

// Now returns the current instant in the business time zone.
func (s *BaseService) Now() time.Time {
	if s.Clock == nil {
		return clock.System{}.Now()
	}
	return s.Clock.Now()
}

// Today returns the current business date.
func (s *BaseService) Today() time.Time {
	return clock.Date(s.Now())
}
