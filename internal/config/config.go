package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Application
	AppName string
	AppEnv  string
	Port    string

	// Database (optional driver switch via ENV, default: sqlite)
	DBDriver     string
	DBConnection string

	// Locale and calendar
	Locale   string
	Timezone *time.Location

	// Journal
	TrailingWindowDays   int
	PulseLogLimit        int
	DecisionLogLimit     int
	PriorityPreviewLimit int

	// Server
	ShutdownTimeout time.Duration

	// Observability (optional)
	SentryDSN string
}

func Load() *Config {
	// Load .env file if it exists
	err := godotenv.Load()
	if err != nil {
		slog.Info("no .env file found, using environment variables")
	}

	return &Config{
		// Application
		AppName: envString("APP_NAME", "Leader Compass"),
		AppEnv:  envString("APP_ENV", "development"),
		Port:    envString("PORT", "8090"),

		// Database
		DBDriver:     envString("DB_DRIVER", "sqlite"),
		DBConnection: envString("DB_CONNECTION", "./data/journal.db?_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"),

		// Locale and calendar
		Locale:   envString("LOCALE", "en"),
		Timezone: envLocation("TIMEZONE", time.Local),

		// Journal
		TrailingWindowDays:   envInt("TRAILING_WINDOW_DAYS", 7),
		PulseLogLimit:        envInt("PULSE_LOG_LIMIT", 25),
		DecisionLogLimit:     envInt("DECISION_LOG_LIMIT", 15),
		PriorityPreviewLimit: envInt("PRIORITY_PREVIEW_LIMIT", 3),

		// Server
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT", 10*time.Second),

		// Observability
		SentryDSN: envString("SENTRY_DSN", ""),
	}
}

func envString(key, def string) string {
	value := os.Getenv(key)
	if value == "" {
		value = def
	}
	return value
}

// envInt accepts positive integers only.
func envInt(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("config invalid positive int, using default", "key", key, "value", v, "default", def)
		return def
	}
	return n
}

func envDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		slog.Warn("config invalid duration, using default", "key", key, "value", v, "default", def)
		return def
	}
	return d
}

func envLocation(key string, def *time.Location) *time.Location {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return def
	}
	loc, err := time.LoadLocation(v)
	if err != nil {
		slog.Warn("config invalid timezone, using default", "key", key, "value", v, "default", def.String())
		return def
	}
	return loc
}

func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// Sanitized returns a copy of the config without connection strings or DSNs.
// Safe to expose in ctx and templates.
func (c *Config) Sanitized() *Config {
	return &Config{
		AppName:              c.AppName,
		AppEnv:               c.AppEnv,
		Port:                 c.Port,
		Locale:               c.Locale,
		Timezone:             c.Timezone,
		TrailingWindowDays:   c.TrailingWindowDays,
		PulseLogLimit:        c.PulseLogLimit,
		DecisionLogLimit:     c.DecisionLogLimit,
		PriorityPreviewLimit: c.PriorityPreviewLimit,
	}
}
