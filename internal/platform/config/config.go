package config

import (
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	// DatabaseURL selects Postgres. When empty the embedded SQLite database at
	// SQLitePath is used instead.
	DatabaseURL   string
	SQLitePath    string
	MigrationsDir string

	Port               string
	IsProduction       bool
	CORSAllowedOrigins []string

	JWTSecret         string
	JWTExpiryDuration time.Duration
	JWTIssuer         string

	DefaultAdminUsername string
	DefaultAdminPassword string

	LoginRateLimit string
	APIRateLimit   string
	RedisURL       string

	CompanyName string

	GoogleClientID     string
	GoogleClientSecret string
	GoogleRedirectURL  string

	PosthogAPIKey   string
	PosthogEndpoint string
}

// UsePostgres reports whether a Postgres URL was configured.
func (c *Config) UsePostgres() bool {
	return c.DatabaseURL != ""
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("SQLITE_PATH", "salary_ledger.db")
	v.SetDefault("MIGRATIONS_DIR", "migrations")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_EXPIRY_DURATION", "12h")
	v.SetDefault("JWT_ISSUER", "salary-ledger")
	v.SetDefault("DEFAULT_ADMIN_USERNAME", "admin")
	v.SetDefault("DEFAULT_ADMIN_PASSWORD", "")
	v.SetDefault("LOGIN_RATE_LIMIT", "5-M")
	v.SetDefault("API_RATE_LIMIT", "300-M")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("COMPANY_NAME", "RASS CUISINE RESTAURANT")
	v.SetDefault("GOOGLE_CLIENT_ID", "")
	v.SetDefault("GOOGLE_CLIENT_SECRET", "")
	v.SetDefault("GOOGLE_REDIRECT_URL", "")
	v.SetDefault("POSTHOG_API_KEY", "")
	v.SetDefault("POSTHOG_ENDPOINT", "https://eu.i.posthog.com")

	v.AutomaticEnv()

	cfg := &Config{
		DatabaseURL:          v.GetString("DATABASE_URL"),
		SQLitePath:           v.GetString("SQLITE_PATH"),
		MigrationsDir:        v.GetString("MIGRATIONS_DIR"),
		Port:                 v.GetString("PORT"),
		IsProduction:         v.GetBool("IS_PRODUCTION"),
		JWTSecret:            v.GetString("JWT_SECRET"),
		JWTIssuer:            v.GetString("JWT_ISSUER"),
		DefaultAdminUsername: v.GetString("DEFAULT_ADMIN_USERNAME"),
		DefaultAdminPassword: v.GetString("DEFAULT_ADMIN_PASSWORD"),
		LoginRateLimit:       v.GetString("LOGIN_RATE_LIMIT"),
		APIRateLimit:         v.GetString("API_RATE_LIMIT"),
		RedisURL:             v.GetString("REDIS_URL"),
		CompanyName:          v.GetString("COMPANY_NAME"),
		GoogleClientID:       v.GetString("GOOGLE_CLIENT_ID"),
		GoogleClientSecret:   v.GetString("GOOGLE_CLIENT_SECRET"),
		GoogleRedirectURL:    v.GetString("GOOGLE_REDIRECT_URL"),
		PosthogAPIKey:        v.GetString("POSTHOG_API_KEY"),
		PosthogEndpoint:      v.GetString("POSTHOG_ENDPOINT"),
	}

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.JWTSecret == "" {
		// !! CHANGE IN PRODUCTION !!
		cfg.JWTSecret = "a-very-secret-key-should-be-longer-and-random"
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	jwtExpiryStr := v.GetString("JWT_EXPIRY_DURATION")
	jwtExpiryDuration, err := time.ParseDuration(jwtExpiryStr)
	if err != nil || jwtExpiryDuration <= 0 {
		jwtExpiryDuration = 12 * time.Hour
		log.Printf("Warning: Invalid value for JWT_EXPIRY_DURATION ('%s'). Defaulting to %s.\n", jwtExpiryStr, jwtExpiryDuration)
	}
	cfg.JWTExpiryDuration = jwtExpiryDuration

	if cfg.DatabaseURL == "" {
		log.Printf("DATABASE_URL not set, using SQLite database at %s\n", cfg.SQLitePath)
	}
	if cfg.GoogleClientID == "" {
		log.Println("GOOGLE_CLIENT_ID not set. Google sign-in is disabled.")
	}

	return cfg, nil
}
