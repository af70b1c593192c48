package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/salary_ledger/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is returned by endpoints that have nothing else to report.
type MessageResponse struct {
	Message string `json:"message"`
}

// statusForError maps service errors onto HTTP status codes.
func statusForError(err error) int {
	var appErr *apperrors.AppError
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperrors.ErrInsufficientBalance):
		return http.StatusUnprocessableEntity
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperrors.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict
	case errors.As(err, &appErr) && appErr.Code != 0:
		return appErr.Code
	}
	return http.StatusInternalServerError
}

// respondError writes the mapped status. Client errors echo the service
// message; server errors only say what failed.
func respondError(c *gin.Context, logger *slog.Logger, err error, failedTo string) {
	status := statusForError(err)
	if status >= http.StatusInternalServerError {
		logger.Error("Failed to "+failedTo, slog.String("error", err.Error()))
		c.JSON(status, ErrorResponse{Error: "Failed to " + failedTo})
		return
	}
	logger.Warn("Request rejected", slog.String("action", failedTo), slog.Int("status", status), slog.String("error", err.Error()))
	c.JSON(status, ErrorResponse{Error: err.Error()})
}

// int64Param reads a positive integer path parameter and answers 400 when it
// is malformed.
func int64Param(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid " + name})
		return 0, false
	}
	return id, true
}
