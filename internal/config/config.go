package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	App      AppConfig
	Storage  StorageConfig
	Jobs     JobsConfig
	SMTP     SMTPConfig
}

// DatabaseConfig is optional: an empty Host runs on the in-memory store.
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
	MaxConns int32
}

// AppConfig holds application configuration
type AppConfig struct {
	Name               string
	Version            string
	Port               int
	Env                string
	LogLevel           string
	FixtureDir         string
	CORSAllowedOrigins []string
	UpcomingWindowDays int
	ShutdownTimeout    time.Duration
}

type StorageConfig struct {
	BasePath string
	BaseURL  string
}

// SMTPConfig is optional: an empty Host only logs the reminder digest.
type SMTPConfig struct {
	Host         string
	Port         int
	Username     string
	Password     string
	From         string
	FromName     string
	Recipients   []string
	RetryBackoff time.Duration
}

// JobsConfig sets the background job intervals
type JobsConfig struct {
	MaintenanceReminderInterval time.Duration
	RevalueInterval             time.Duration
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file loaded, using process environment", "error", err)
	}

	config := &Config{}

	// Database configuration
	dbPort, err := getEnvInt("DB_PORT", 5432)
	if err != nil {
		return nil, err
	}
	maxConns, err := getEnvInt("DB_MAX_CONNS", 0)
	if err != nil {
		return nil, err
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", ""),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "hr_dashboard"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		MaxConns: int32(maxConns),
	}

	// Application configuration
	appPort, err := getEnvInt("APP_PORT", 8080)
	if err != nil {
		return nil, err
	}
	upcoming, err := getEnvInt("UPCOMING_WINDOW_DAYS", 30)
	if err != nil {
		return nil, err
	}
	shutdown, err := getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	config.App = AppConfig{
		Name:               getEnv("APP_NAME", "hr-dashboard"),
		Version:            getEnv("APP_VERSION", "v1.0.0"),
		Port:               appPort,
		Env:                getEnv("APP_ENV", "development"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		FixtureDir:         getEnv("FIXTURE_DIR", ""),
		CORSAllowedOrigins: getEnvSlice("CORS_ALLOWED_ORIGINS", "http://localhost:3000"),
		UpcomingWindowDays: upcoming,
		ShutdownTimeout:    shutdown,
	}

	config.Storage = StorageConfig{
		BasePath: getEnv("STORAGE_BASE_PATH", "./storage"),
		BaseURL:  getEnv("STORAGE_BASE_URL", "/files"),
	}

	// Job intervals
	reminder, err := getEnvDuration("MAINTENANCE_REMINDER_INTERVAL", time.Hour)
	if err != nil {
		return nil, err
	}
	revalue, err := getEnvDuration("REVALUE_INTERVAL", 24*time.Hour)
	if err != nil {
		return nil, err
	}
	config.Jobs = JobsConfig{
		MaintenanceReminderInterval: reminder,
		RevalueInterval:             revalue,
	}

	// SMTP configuration
	smtpPort, err := getEnvInt("SMTP_PORT", 587)
	if err != nil {
		return nil, err
	}
	config.SMTP = SMTPConfig{
		Host:         getEnv("SMTP_HOST", ""),
		Port:         smtpPort,
		Username:     getEnv("SMTP_USERNAME", ""),
		Password:     getEnv("SMTP_PASSWORD", ""),
		From:         getEnv("SMTP_FROM", "noreply@hr-dashboard.local"),
		FromName:     getEnv("SMTP_FROM_NAME", "HR Dashboard"),
		Recipients:   getEnvSlice("MAINTENANCE_REMINDER_RECIPIENTS", ""),
		RetryBackoff: time.Second,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	var errs []error
	if c.UseDatabase() && c.Database.Password == "" {
		errs = append(errs, fmt.Errorf("DB_PASSWORD is required when DB_HOST is set"))
	}
	if c.App.Port <= 0 || c.App.Port > 65535 {
		errs = append(errs, fmt.Errorf("APP_PORT must be between 1 and 65535"))
	}
	if c.App.UpcomingWindowDays < 0 {
		errs = append(errs, fmt.Errorf("UPCOMING_WINDOW_DAYS must be non-negative"))
	}
	if c.Storage.BasePath == "" {
		errs = append(errs, fmt.Errorf("STORAGE_BASE_PATH is required"))
	}
	if c.Jobs.MaintenanceReminderInterval <= 0 {
		errs = append(errs, fmt.Errorf("MAINTENANCE_REMINDER_INTERVAL must be positive"))
	}
	if c.Jobs.RevalueInterval <= 0 {
		errs = append(errs, fmt.Errorf("REVALUE_INTERVAL must be positive"))
	}
	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// UseDatabase reports whether a PostgreSQL primary store is configured.
func (c *Config) UseDatabase() bool {
	return c.Database.Host != ""
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// SlogLevel parses LOG_LEVEL (debug, info, warn, error).
func (c *Config) SlogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.App.LogLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid LOG_LEVEL %q", c.App.LogLevel)
	}
	return level, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getEnvDuration(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func getEnvSlice(key, fallback string) []string {
	value := getEnv(key, fallback)
	result := make([]string, 0)
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}
	return result
}
