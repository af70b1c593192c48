package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	portsrepo "github.com/SscSPs/salary_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/salary_ledger/internal/core/services"
	"github.com/SscSPs/salary_ledger/internal/handlers"
	"github.com/SscSPs/salary_ledger/internal/middleware"
	"github.com/SscSPs/salary_ledger/internal/platform/clock"
	"github.com/SscSPs/salary_ledger/internal/platform/config"
	"github.com/SscSPs/salary_ledger/internal/repositories/database/pgsql"
	"github.com/SscSPs/salary_ledger/internal/repositories/database/sqlite"
	"github.com/SscSPs/salary_ledger/internal/utils"
	"github.com/SscSPs/salary_ledger/pkg/database"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// @title Salary Ledger API
// @version 1.0
// @description Back-office salary withdrawals, attendance and reports.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	repos, closeDB, err := openRepositories(ctx, cfg, logger)
	if err != nil {
		logger.Error("Failed to initialize storage", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer closeDB()

	clk := clock.System{}
	serviceContainer := services.NewServiceContainer(cfg, repos, clk)

	if _, err := serviceContainer.User.EnsureDefaultAdmin(ctx, cfg.DefaultAdminUsername, cfg.DefaultAdminPassword); err != nil {
		logger.Error("Failed to ensure default admin", slog.String("error", err.Error()))
		os.Exit(1)
	}

	deps := handlers.RouteDeps{Clock: clk}
	if cfg.RedisURL != "" {
		redisClient, err := middleware.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			logger.Error("Failed to connect to redis", slog.String("error", err.Error()))
			os.Exit(1)
		}
		defer closeRedis(redisClient, logger)
		if deps.LoginLimiter, err = middleware.NewLimiter(cfg.LoginRateLimit, "login", redisClient); err != nil {
			logger.Error("Failed to create login limiter", slog.String("error", err.Error()))
			os.Exit(1)
		}
		if deps.APILimiter, err = middleware.NewLimiter(cfg.APIRateLimit, "api", redisClient); err != nil {
			logger.Error("Failed to create api limiter", slog.String("error", err.Error()))
			os.Exit(1)
		}
		logger.Info("Rate limits shared through redis")
	}

	analytics := utils.InitializePosthogClient(cfg.PosthogAPIKey, cfg.PosthogEndpoint, logger)
	defer analytics.Close()
	deps.Analytics = analytics

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(logger), gin.Recovery())

	if len(cfg.CORSAllowedOrigins) > 0 {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
		corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"}
		corsConfig.ExposeHeaders = []string{"Content-Disposition", "X-Request-ID"}
		corsConfig.AllowCredentials = true
		r.Use(cors.New(corsConfig))
	}

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := handlers.RegisterRoutes(r, cfg, serviceContainer, deps); err != nil {
		logger.Error("Failed to register routes", slog.String("error", err.Error()))
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown failed", slog.String("error", err.Error()))
	}
}

// openRepositories connects to Postgres when DATABASE_URL is set and to the
// SQLite file otherwise. The returned func releases the connection.
func openRepositories(ctx context.Context, cfg *config.Config, logger *slog.Logger) (portsrepo.RepositoryProvider, func(), error) {
	if cfg.UsePostgres() {
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return portsrepo.RepositoryProvider{}, nil, err
		}
		logger.Info("Running database migrations...", slog.String("dir", cfg.MigrationsDir))
		if err := database.RunPostgresMigrations(cfg.DatabaseURL, cfg.MigrationsDir); err != nil {
			database.ClosePgxPool(pool)
			return portsrepo.RepositoryProvider{}, nil, err
		}
		return pgsql.NewRepositoryProvider(pool), func() { database.ClosePgxPool(pool) }, nil
	}

	db, err := database.NewSQLiteDB(ctx, cfg.SQLitePath)
	if err != nil {
		return portsrepo.RepositoryProvider{}, nil, err
	}
	return sqlite.NewRepositoryProvider(db), func() { database.CloseSQLiteDB(db) }, nil
}

func closeRedis(client *redis.Client, logger *slog.Logger) {
	if err := client.Close(); err != nil {
		logger.Error("Error closing redis client", slog.String("error", err.Error()))
	}
}
