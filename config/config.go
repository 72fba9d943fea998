package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"

	defaultJWTSecret  = "dev-insecure-secret"
	defaultServiceKey = "dev-service-key"
	defaultPublicKey  = "dev-public-key"
)

type Config struct {
	App struct {
		Env            string
		Port           string
		FrontendURL    string
		RequestTimeout time.Duration
	}
	DataStore struct {
		Driver     string
		URL        string
		ServiceKey string
		PublicKey  string
	}
	DB struct {
		Host     string
		Port     string
		User     string
		Password string
		Name     string
		SSLMode  string
	}
	JWT struct {
		Secret string
		Expiry time.Duration
	}
	Security struct {
		BcryptCost int
	}
	Log struct {
		Level  string
		Format string
	}
	Admin struct {
		Email    string
		Password string
		Nickname string
	}

	// Warnings lists insecure fallbacks in use; main logs them once the logger exists.
	Warnings []string
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// DSN returns DATA_STORE_URL or a DSN assembled from the DB_* settings.
func (c *Config) DSN() string {
	if c.DataStore.URL != "" {
		return c.DataStore.URL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
		c.DB.Host,
		c.DB.User,
		c.DB.Password,
		c.DB.Name,
		c.DB.Port,
		c.DB.SSLMode,
	)
}

// Load reads configuration from the environment, loading .env first if present.
func Load() (*Config, error) {
	var warnings []string
	if err := godotenv.Load(); err != nil {
		warnings = append(warnings, "no .env file found, relying on system environment variables")
	}
	cfg, err := FromEnv()
	if err != nil {
		return nil, err
	}
	cfg.Warnings = append(warnings, cfg.Warnings...)
	return cfg, nil
}

// FromEnv builds the configuration from the process environment only.
func FromEnv() (*Config, error) {
	cfg := &Config{}

	// --- App ---
	cfg.App.Env = getEnv("APP_ENV", "development")
	cfg.App.Port = getEnv("PORT", "3001")
	cfg.App.FrontendURL = getEnv("FRONTEND_URL", "http://localhost:5173")

	var err error
	cfg.App.RequestTimeout, err = getEnvAsDuration("REQUEST_TIMEOUT", 15*time.Second)
	if err != nil {
		return nil, err
	}

	// --- Data store ---
	cfg.DataStore.Driver = strings.ToLower(getEnv("DATA_STORE_DRIVER", DriverPostgres))
	if cfg.DataStore.Driver != DriverPostgres && cfg.DataStore.Driver != DriverMemory {
		return nil, fmt.Errorf("invalid DATA_STORE_DRIVER %q: expected %s or %s", cfg.DataStore.Driver, DriverPostgres, DriverMemory)
	}
	cfg.DataStore.URL = getEnv("DATA_STORE_URL", "")
	cfg.DataStore.ServiceKey = getEnv("DATA_STORE_SERVICE_KEY", defaultServiceKey)
	cfg.DataStore.PublicKey = getEnv("DATA_STORE_PUBLIC_KEY", defaultPublicKey)

	cfg.DB.Host = getEnv("DB_HOST", "localhost")
	cfg.DB.Port = getEnv("DB_PORT", "5432")
	cfg.DB.User = getEnv("DB_USER", "postgres")
	cfg.DB.Password = getEnv("DB_PASSWORD", cfg.DataStore.ServiceKey)
	cfg.DB.Name = getEnv("DB_NAME", "pitchup")
	cfg.DB.SSLMode = getEnv("DB_SSLMODE", "disable")

	// --- JWT ---
	cfg.JWT.Secret = getEnv("JWT_SECRET", defaultJWTSecret)
	hours, err := getEnvAsInt("JWT_EXPIRY_HOURS", 168)
	if err != nil {
		return nil, err
	}
	if hours <= 0 {
		return nil, fmt.Errorf("invalid JWT_EXPIRY_HOURS: must be positive, got %d", hours)
	}
	cfg.JWT.Expiry = time.Duration(hours) * time.Hour

	// --- Security ---
	cfg.Security.BcryptCost, err = getEnvAsInt("BCRYPT_COST", 12)
	if err != nil {
		return nil, err
	}

	// --- Logging ---
	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	// --- Admin bootstrap ---
	cfg.Admin.Email = getEnv("ADMIN_EMAIL", "")
	cfg.Admin.Password = getEnv("ADMIN_PASSWORD", "")
	cfg.Admin.Nickname = getEnv("ADMIN_NICKNAME", "admin")

	if err := cfg.checkSecrets(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var ErrInsecureSecret = errors.New("JWT_SECRET must be set in production")

func (c *Config) checkSecrets() error {
	if c.JWT.Secret == "" {
		return errors.New("JWT_SECRET must not be empty")
	}
	if c.JWT.Secret == defaultJWTSecret {
		if c.IsProduction() {
			return ErrInsecureSecret
		}
		c.Warnings = append(c.Warnings, "using default JWT_SECRET; set it before deploying")
	}
	if c.DataStore.Driver == DriverPostgres && c.DataStore.URL == "" && c.DataStore.ServiceKey == defaultServiceKey {
		c.Warnings = append(c.Warnings, "using default DATA_STORE_SERVICE_KEY as database password")
	}
	if c.DataStore.PublicKey == defaultPublicKey {
		c.Warnings = append(c.Warnings, "using default DATA_STORE_PUBLIC_KEY")
	}
	return nil
}

// PublicKeyConfigured reports whether a real public key was supplied.
func (c *Config) PublicKeyConfigured() bool {
	return c.DataStore.PublicKey != "" && c.DataStore.PublicKey != defaultPublicKey
}

// Helper function to get an environment variable or return a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get an environment variable as an integer or return a default value.
func getEnvAsInt(key string, fallback int) (int, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return fallback, fmt.Errorf("env var %s: expected integer, got '%s'", key, valueStr)
	}
	return value, nil
}

func getEnvAsDuration(key string, fallback time.Duration) (time.Duration, error) {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback, nil
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return fallback, fmt.Errorf("env var %s: expected duration, got '%s'", key, valueStr)
	}
	return value, nil
}
