package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL     string
	Port            string
	IsProduction    bool
	EnableDBCheck   bool
	JWTSecret       string
	JWTIssuer       string // empty disables the issuer check
	FrontendBaseURL string
	RateLimit       string // ulule limiter format, e.g. "100-M"
	MigrationsPath  string

	// Reporting
	Timezone      string
	Location      *time.Location
	Locale        string
	TrendMonths   int
	SummaryMonths int
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	return load(v)
}

// setDefaults registers the default for every supported key.
func setDefaults(v *viper.Viper) {
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("JWT_ISSUER", "")
	v.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.SetDefault("TIMEZONE", "UTC")
	v.SetDefault("LOCALE", "en")
	v.SetDefault("TREND_MONTHS", 6)
	v.SetDefault("SUMMARY_MONTHS", 3)
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	cfg := &Config{
		DatabaseURL:     v.GetString("PGSQL_URL"),
		Port:            v.GetString("PORT"),
		IsProduction:    v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:   v.GetBool("ENABLE_DB_CHECK"),
		JWTSecret:       v.GetString("JWT_SECRET"),
		JWTIssuer:       v.GetString("JWT_ISSUER"),
		FrontendBaseURL: v.GetString("FRONTEND_BASE_URL"),
		RateLimit:       v.GetString("RATE_LIMIT"),
		MigrationsPath:  v.GetString("MIGRATIONS_PATH"),
		Timezone:        v.GetString("TIMEZONE"),
		Locale:          v.GetString("LOCALE"),
		TrendMonths:     v.GetInt("TREND_MONTHS"),
		SummaryMonths:   v.GetInt("SUMMARY_MONTHS"),
	}

	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	if cfg.JWTSecret == "" || cfg.JWTSecret == defaultJWTSecret {
		if cfg.IsProduction {
			return nil, fmt.Errorf("JWT_SECRET must be set in production")
		}
		cfg.JWTSecret = defaultJWTSecret
		log.Println("Warning: JWT_SECRET environment variable not set. Using default insecure key.")
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", cfg.Timezone, err)
	}
	cfg.Location = loc

	if cfg.TrendMonths <= 0 {
		log.Printf("Warning: invalid TREND_MONTHS (%d). Defaulting to 6.\n", cfg.TrendMonths)
		cfg.TrendMonths = 6
	}
	if cfg.SummaryMonths <= 0 {
		log.Printf("Warning: invalid SUMMARY_MONTHS (%d). Defaulting to 3.\n", cfg.SummaryMonths)
		cfg.SummaryMonths = 3
	}

	return cfg, nil
}
