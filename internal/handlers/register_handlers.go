package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/salary_ledger/cmd/docs"
	"github.com/SscSPs/salary_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/salary_ledger/internal/core/ports/services"
	"github.com/SscSPs/salary_ledger/internal/middleware"
	"github.com/SscSPs/salary_ledger/internal/platform/clock"
	"github.com/SscSPs/salary_ledger/internal/platform/config"
	"github.com/SscSPs/salary_ledger/internal/reports"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RouteDeps carries what the routes need besides the services.
// Nil limiters are built in memory from the configured rates.
type RouteDeps struct {
	Clock        clock.Clock
	LoginLimiter *limiter.Limiter
	APILimiter   *limiter.Limiter
	Analytics    middleware.EventSink
}

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	deps RouteDeps,
) error {
	if deps.Clock == nil {
		deps.Clock = clock.System{}
	}
	if err := registerValidators(); err != nil {
		return err
	}

	var err error
	if deps.LoginLimiter == nil {
		if deps.LoginLimiter, err = middleware.NewLimiter(cfg.LoginRateLimit, "login", nil); err != nil {
			return err
		}
	}
	if deps.APILimiter == nil {
		if deps.APILimiter, err = middleware.NewLimiter(cfg.APIRateLimit, "api", nil); err != nil {
			return err
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	// Public authentication routes
	registerAuthRoutes(r, services, deps.LoginLimiter)

	setupAPIV1Routes(r, cfg, services, deps)

	setupSwaggerRoutes(r, cfg)
	return nil
}

// setupAPIV1Routes configures the authenticated /api/v1 group.
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	deps RouteDeps,
) {
	v1 := r.Group("/api/v1",
		middleware.AuthMiddleware(cfg.JWTSecret),
		middleware.RateLimit(deps.APILimiter),
		middleware.AnalyticsMiddleware(deps.Analytics),
	)

	renderer := reports.NewRenderer(cfg.CompanyName)

	registerPasswordRoutes(v1, services.User)
	registerEmployeeRoutes(v1, services.Employee, services.Balance)
	registerWithdrawalRoutes(v1, services.Balance, services.Employee, services.Report, renderer)
	registerAttendanceRoutes(v1, services.Attendance, services.Aggregation, deps.Clock)
	registerReportRoutes(v1, services.Report, services.Aggregation, renderer, deps.Clock)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// registerValidators adds the custom binding tags used by the DTOs.
func registerValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		slog.Warn("Gin validator engine is not go-playground/validator; custom tags unavailable")
		return nil
	}
	if err := v.RegisterValidation("attendance_status", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseAttendanceStatus(fl.Field().String())
		return err == nil
	}); err != nil {
		return err
	}
	return v.RegisterValidation("time_of_day", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseTimeOfDay(fl.Field().String())
		return err == nil
	})
}
