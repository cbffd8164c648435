package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "FINCALC"

// Config represents the complete application configuration
type Config struct {
	Server    ServerConfig    `yaml:"server" envconfig:"SERVER"`
	Cache     CacheConfig     `yaml:"cache" envconfig:"CACHE"`
	History   HistoryConfig   `yaml:"history" envconfig:"HISTORY"`
	RateLimit RateLimitConfig `yaml:"rate_limit" envconfig:"RATE_LIMIT"`
	Logging   LoggingConfig   `yaml:"logging" envconfig:"LOGGING"`
	Calc      CalcConfig      `yaml:"calc" envconfig:"CALC"`
}

// ServerConfig contains HTTP server configuration. TrustProxy takes the
// client address from X-Forwarded-For/X-Real-IP; enable it only behind a
// proxy that sets those headers.
type ServerConfig struct {
	Addr            string        `yaml:"addr" envconfig:"ADDR"`
	ReadTimeout     time.Duration `yaml:"read_timeout" envconfig:"READ_TIMEOUT"`
	WriteTimeout    time.Duration `yaml:"write_timeout" envconfig:"WRITE_TIMEOUT"`
	IdleTimeout     time.Duration `yaml:"idle_timeout" envconfig:"IDLE_TIMEOUT"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" envconfig:"SHUTDOWN_TIMEOUT"`
	TrustProxy      bool          `yaml:"trust_proxy" envconfig:"TRUST_PROXY"`
}

// CacheConfig controls the Redis result cache. When disabled an in-memory
// cache is used instead.
type CacheConfig struct {
	Enabled  bool          `yaml:"enabled" envconfig:"ENABLED"`
	Addr     string        `yaml:"addr" envconfig:"ADDR"`
	Password string        `yaml:"password" envconfig:"PASSWORD"`
	DB       int           `yaml:"db" envconfig:"DB"`
	TTL      time.Duration `yaml:"ttl" envconfig:"TTL"`
}

type HistoryConfig struct {
	Capacity int `yaml:"capacity" envconfig:"CAPACITY"`
}

// RateLimitConfig contains per-client rate limiting configuration
type RateLimitConfig struct {
	Enabled  bool          `yaml:"enabled" envconfig:"ENABLED"`
	Capacity int           `yaml:"capacity" envconfig:"CAPACITY"`
	Refill   time.Duration `yaml:"refill" envconfig:"REFILL"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL"`
	Format string `yaml:"format" envconfig:"FORMAT"`
}

// CalcConfig tunes how results are presented. Precision is the number of
// decimal places results are rounded to; -1 returns them unrounded.
type CalcConfig struct {
	Precision int `yaml:"precision" envconfig:"PRECISION"`
}

// Default returns the configuration used when nothing else is set.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			IdleTimeout:     60 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Cache: CacheConfig{
			Addr: "localhost:6379",
			TTL:  24 * time.Hour,
		},
		History: HistoryConfig{
			Capacity: 1000,
		},
		RateLimit: RateLimitConfig{
			Enabled:  true,
			Capacity: 60,
			Refill:   time.Minute,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Calc: CalcConfig{
			Precision: 2,
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file at path,
// an optional .env file in the working directory and FINCALC_* environment
// variables, in increasing order of precedence.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to load config from file: %w", err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.UnmarshalStrict(data, cfg)
}

// Validate checks the configuration for values the application cannot run with.
func (c *Config) Validate() error {
	if c.Server.Addr == "" {
		return errors.New("server addr must not be empty")
	}
	if c.Server.ReadTimeout <= 0 || c.Server.WriteTimeout <= 0 || c.Server.IdleTimeout <= 0 {
		return errors.New("server timeouts must be positive")
	}
	if c.Server.ShutdownTimeout <= 0 {
		return errors.New("server shutdown timeout must be positive")
	}
	if c.Cache.Enabled && c.Cache.Addr == "" {
		return errors.New("cache addr must be set when the cache is enabled")
	}
	if c.Cache.TTL < 0 {
		return errors.New("cache ttl must not be negative")
	}
	if c.History.Capacity < 0 {
		return errors.New("history capacity must not be negative")
	}
	if c.RateLimit.Enabled && (c.RateLimit.Capacity <= 0 || c.RateLimit.Refill <= 0) {
		return errors.New("rate limit capacity and refill must be positive")
	}
	if c.Calc.Precision < -1 || c.Calc.Precision > 12 {
		return fmt.Errorf("calc precision must be between -1 and 12, got %d", c.Calc.Precision)
	}

	switch strings.ToLower(c.Logging.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Logging.Level)
	}
	switch strings.ToLower(c.Logging.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("unknown log format %q", c.Logging.Format)
	}

	return nil
}
