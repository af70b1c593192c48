package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/salary_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/salary_ledger/internal/core/ports/services"
	"github.com/SscSPs/salary_ledger/internal/dto"
	"github.com/SscSPs/salary_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// authHandler handles login and password changes.
type authHandler struct {
	userService  portssvc.UserSvcFacade
	tokenService portssvc.TokenSvcFacade
}

func newAuthHandler(us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade) *authHandler {
	return &authHandler{userService: us, tokenService: ts}
}

// registerAuthRoutes sets up the public authentication routes.
func registerAuthRoutes(r *gin.Engine, services *portssvc.ServiceContainer, loginLimiter *limiter.Limiter) {
	h := newAuthHandler(services.User, services.Token)
	g := newGoogleOAuthHandler(services.GoogleOAuth, services.User, services.Token)

	auth := r.Group("/api/v1/auth")
	{
		auth.POST("/login", middleware.RateLimit(loginLimiter), h.login)
		auth.POST("/google/exchange-code", middleware.RateLimit(loginLimiter), g.exchangeCode)
	}
}

// registerPasswordRoutes sets up the authenticated account routes.
func registerPasswordRoutes(rg *gin.RouterGroup, us portssvc.UserSvcFacade) {
	h := newAuthHandler(us, nil)
	rg.POST("/auth/change-password", h.changePassword)
}

// login godoc
// @Summary Administrator login
// @Description Authenticates an administrator and returns a JWT access token.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *authHandler) login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		if statusForError(err) == http.StatusUnauthorized {
			logger.Warn("Login failed", slog.String("username", req.Username))
			c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid username or password"})
			return
		}
		respondError(c, logger, err, "log in")
		return
	}

	issueToken(c, logger, h.tokenService, user)
}

// issueToken answers a successful sign-in with a fresh access token.
func issueToken(c *gin.Context, logger *slog.Logger, tokens portssvc.TokenSvcFacade, user *domain.User) {
	token, expiresAt, err := tokens.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		logger.Error("Failed to sign JWT token", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to generate token"})
		return
	}
	logger.Info("User logged in", slog.String("user_id", user.UserID))
	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      dto.ToUserResponse(user),
	})
}

// changePassword godoc
// @Summary Change password
// @Description Replaces the caller's password after checking the current one.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ChangePasswordRequest true "Current and new password"
// @Success 200 {object} MessageResponse
// @Failure 400 {object} ErrorResponse "New passwords differ or are too short"
// @Failure 401 {object} ErrorResponse "Current password is wrong"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /auth/change-password [post]
func (h *authHandler) changePassword(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	if err := h.userService.ChangePassword(c.Request.Context(), userID, req.OldPassword, req.NewPassword, req.ConfirmPassword); err != nil {
		respondError(c, logger, err, "change password")
		return
	}
	logger.Info("Password changed")
	c.JSON(http.StatusOK, MessageResponse{Message: "Password updated successfully"})
}
