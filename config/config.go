package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config is the process-wide configuration snapshot. It is resolved once at
// startup and read-only afterwards; every component receives it explicitly.
type Config struct {
	AppEnv    string `validate:"required"`
	Debug     bool
	SecretKey string `validate:"required"`

	OpenAI OpenAIConfig

	// DatabaseURL is the storage connection string. Only postgres:// URLs
	// result in an actual connection; anything else is carried as-is.
	DatabaseURL string

	// Raw comma-separated fields. The derived list views are computed fresh
	// on every AllowedOrigins / AllowedFileTypes call, never stored.
	AllowedOriginsRaw   string
	AllowedFileTypesRaw string

	MaxFileSizeMB int `validate:"min=1"`

	Server        ServerConfig
	Observability ObservabilityConfig
}

// OpenAIConfig holds the external model provider configuration
type OpenAIConfig struct {
	APIKey string
	Model  string `validate:"required"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int `validate:"min=1,max=65535"`
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

// ObservabilityConfig holds logging configuration
type ObservabilityConfig struct {
	LogLevel  string `validate:"oneof=debug info warn error"`
	LogFormat string `validate:"oneof=json console"`
}

var validate = validator.New()

var (
	loadOnce  sync.Once
	loadedCfg *Config
	loadedErr error
)

// Load resolves the configuration exactly once per process and caches the
// result. Later calls return the identical snapshot (or the original error)
// without re-reading the environment.
func Load() (*Config, error) {
	loadOnce.Do(func() {
		loadedCfg, loadedErr = New()
	})
	return loadedCfg, loadedErr
}

// New resolves a fresh Config from defaults, the optional .env file, and the
// process environment, in that priority order (godotenv never overrides a
// variable that is already set). It fails with a *ConfigError when a value
// cannot be coerced to its field type.
func New() (*Config, error) {
	_ = godotenv.Load(".env")

	debug, err := getEnvAsBool("DEBUG", true)
	if err != nil {
		return nil, err
	}
	maxFileSize, err := getEnvAsInt("MAX_FILE_SIZE_MB", 10)
	if err != nil {
		return nil, err
	}
	port, err := getPort()
	if err != nil {
		return nil, err
	}
	readTimeout, err := getEnvAsDuration("SERVER_READ_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}
	writeTimeout, err := getEnvAsDuration("SERVER_WRITE_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}
	shutdownTimeout, err := getEnvAsDuration("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		AppEnv:    getEnv("APP_ENV", "development"),
		Debug:     debug,
		SecretKey: getEnv("SECRET_KEY", "your-secret-key-here"),
		OpenAI: OpenAIConfig{
			APIKey: getEnv("OPENAI_API_KEY", "sk-your-api-key-here"),
			Model:  getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		},
		DatabaseURL:         getEnv("DATABASE_URL", "sqlite:///./chatbot.db"),
		AllowedOriginsRaw:   getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:8501"),
		AllowedFileTypesRaw: getEnv("ALLOWED_FILE_TYPES", "txt,md,pdf,py,js,ts,jsx,tsx"),
		MaxFileSizeMB:       maxFileSize,
		Server: ServerConfig{
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			Port:            port,
			ReadTimeout:     readTimeout,
			WriteTimeout:    writeTimeout,
			ShutdownTimeout: shutdownTimeout,
		},
		Observability: ObservabilityConfig{
			LogLevel:  getEnv("LOG_LEVEL", "info"),
			LogFormat: getEnv("LOG_FORMAT", "json"),
		},
	}

	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// AllowedOrigins returns the CORS origin allow-list derived from the raw
// comma-separated field: split on commas, trim whitespace, drop empties,
// preserve order and duplicates.
func (c *Config) AllowedOrigins() []string {
	return splitAndTrim(c.AllowedOriginsRaw)
}

// AllowedFileTypes returns the upload extension allow-list, derived the same
// way as AllowedOrigins.
func (c *Config) AllowedFileTypes() []string {
	return splitAndTrim(c.AllowedFileTypesRaw)
}

// FileTypeAllowed reports whether the file name's extension is on the upload
// allow-list. Matching is case-insensitive and ignores the leading dot.
func (c *Config) FileTypeAllowed(name string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
	if ext == "" {
		return false
	}
	for _, allowed := range c.AllowedFileTypes() {
		if strings.ToLower(allowed) == ext {
			return true
		}
	}
	return false
}

// MaxFileSizeBytes returns the upload size ceiling in bytes.
func (c *Config) MaxFileSizeBytes() int64 {
	return int64(c.MaxFileSizeMB) << 20
}

// IsProduction returns true if running in production environment
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production" || c.AppEnv == "prod"
}

// IsDevelopment returns true if running in development environment
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development" || c.AppEnv == "dev"
}

// DatabaseIsPostgres reports whether DATABASE_URL points at a PostgreSQL
// server the service should actually connect to.
func (c *Config) DatabaseIsPostgres() bool {
	return strings.HasPrefix(c.DatabaseURL, "postgres://") ||
		strings.HasPrefix(c.DatabaseURL, "postgresql://")
}

// DatabaseLogString returns a safe representation of DATABASE_URL for
// logging (credentials stripped).
func (c *Config) DatabaseLogString() string {
	u, err := url.Parse(c.DatabaseURL)
	if err != nil {
		return "<unparseable database url>"
	}
	if u.User != nil {
		u.User = url.User(u.User.Username())
	}
	return u.Redacted()
}

func splitAndTrim(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// Address returns the HTTP server address
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Helper functions

// getPort returns the server port from PORT or SERVER_PORT env vars (default: 8000)
func getPort() (int, error) {
	for _, key := range []string{"PORT", "SERVER_PORT"} {
		if value := os.Getenv(key); value != "" {
			p, err := strconv.Atoi(value)
			if err != nil {
				return 0, &ConfigError{Key: key, Value: value, Err: err}
			}
			return p, nil
		}
	}
	return 8000, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) (int, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return 0, &ConfigError{Key: key, Value: valueStr, Err: err}
	}
	return value, nil
}

func getEnvAsBool(key string, defaultValue bool) (bool, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return false, &ConfigError{Key: key, Value: valueStr, Err: err}
	}
	return value, nil
}

func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue, nil
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		return 0, &ConfigError{Key: key, Value: valueStr, Err: err}
	}
	return value, nil
}
