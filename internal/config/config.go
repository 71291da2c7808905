// Package config loads server configuration from TEACHASSIST_* environment
// variables, optionally seeded from a .env file.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the service settings. LLM provider settings live in
// llm.Config and are read by llm.ConfigFromEnv.
type Config struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
	MaxBodyBytes    int64

	LogLevel string
	DBPath   string // empty means store.DefaultDBPath

	SessionTTL    time.Duration
	SweepInterval time.Duration
	SessionSecret string // empty generates an ephemeral key
	CookieSecure  bool

	RateLimit float64 // generations per second per session; 0 disables
	RateBurst int

	OTELEndpoint string
	OTELInsecure bool
}

// LoadDotEnv reads path (".env" when empty) into the environment without
// overriding variables that are already set. A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("config: load %s: %w", path, err)
	}
	return nil
}

// Load reads configuration from the environment with defaults.
func Load() (Config, error) {
	cfg := Config{
		Addr:            envStr("TEACHASSIST_ADDR", ":8080"),
		ReadTimeout:     envDuration("TEACHASSIST_READ_TIMEOUT", 30*time.Second),
		WriteTimeout:    envDuration("TEACHASSIST_WRITE_TIMEOUT", 90*time.Second),
		ShutdownTimeout: envDuration("TEACHASSIST_SHUTDOWN_TIMEOUT", 15*time.Second),
		MaxBodyBytes:    int64(envInt("TEACHASSIST_MAX_BODY_BYTES", 1<<20)),
		LogLevel:        envStr("TEACHASSIST_LOG_LEVEL", "info"),
		DBPath:          envStr("TEACHASSIST_DB", ""),
		SessionTTL:      envDuration("TEACHASSIST_SESSION_TTL", 12*time.Hour),
		SweepInterval:   envDuration("TEACHASSIST_SESSION_SWEEP", 5*time.Minute),
		SessionSecret:   envStr("TEACHASSIST_SESSION_SECRET", ""),
		CookieSecure:    envBool("TEACHASSIST_COOKIE_SECURE", false),
		RateLimit:       envFloat("TEACHASSIST_RATE_LIMIT", 0.5),
		RateBurst:       envInt("TEACHASSIST_RATE_BURST", 5),
		OTELEndpoint:    envStr("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		OTELInsecure:    envBool("OTEL_EXPORTER_OTLP_INSECURE", false),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c Config) Validate() error {
	var errs []error
	if c.Addr == "" {
		errs = append(errs, errors.New("config: TEACHASSIST_ADDR is required"))
	}
	if c.ReadTimeout <= 0 || c.WriteTimeout <= 0 {
		errs = append(errs, errors.New("config: read and write timeouts must be positive"))
	}
	if c.MaxBodyBytes <= 0 {
		errs = append(errs, errors.New("config: TEACHASSIST_MAX_BODY_BYTES must be positive"))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, errors.New("config: TEACHASSIST_SESSION_TTL must be positive"))
	}
	if c.SweepInterval <= 0 {
		errs = append(errs, errors.New("config: TEACHASSIST_SESSION_SWEEP must be positive"))
	}
	if c.RateLimit < 0 || c.RateBurst < 0 {
		errs = append(errs, errors.New("config: rate limit settings must not be negative"))
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("config: unknown log level %q", c.LogLevel))
	}
	return errors.Join(errs...)
}

func envStr(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultVal
}

func envFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func envBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultVal
}

func envDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
