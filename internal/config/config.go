// Package config loads the engine's settings from the environment.
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

// Config holds every runtime setting of the API server.
type Config struct {
	Port            int
	LogLevel        string
	ShutdownTimeout time.Duration
	MaxBodyBytes    int64

	AllowedOrigins []string

	// RateLimitRPS of 0 disables rate limiting.
	RateLimitRPS   float64
	RateLimitBurst int

	// RedisAddr empty disables the response cache.
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration
	CachePrefix   string

	OTelEnabled     bool
	OTelLogsEnabled bool
	ServiceName     string
}

// Default returns the settings used when no variable is set.
func Default() Config {
	return Config{
		Port:            8000,
		LogLevel:        "info",
		ShutdownTimeout: 5 * time.Second,
		MaxBodyBytes:    64 << 10,
		AllowedOrigins:  []string{"*"},
		RateLimitBurst:  20,
		CacheTTL:        10 * time.Minute,
		CachePrefix:     "fincalc:",
		OTelEnabled:     true,
		ServiceName:     "finance-calculator",
	}
}

// LoadDotEnv loads environment variables from .env when present.
// Existing process environment variables are not overridden.
func LoadDotEnv(filenames ...string) error {
	err := godotenv.Load(filenames...)
	if err == nil {
		return nil
	}

	if errors.Is(err, os.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("load .env: %w", err)
}

// Load merges .env into the environment and reads the configuration.
func Load() (Config, error) {
	if err := LoadDotEnv(); err != nil {
		return Config{}, err
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from the given lookup function, starting from
// Default. Malformed values are errors, never silently ignored.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Default()
	p := parser{getenv: getenv}

	p.int("PORT", &cfg.Port)
	p.string("LOG_LEVEL", &cfg.LogLevel)
	p.duration("SHUTDOWN_TIMEOUT", &cfg.ShutdownTimeout)
	p.int64("MAX_BODY_BYTES", &cfg.MaxBodyBytes)
	p.list("CORS_ALLOWED_ORIGINS", &cfg.AllowedOrigins)
	p.float("RATE_LIMIT_RPS", &cfg.RateLimitRPS)
	p.int("RATE_LIMIT_BURST", &cfg.RateLimitBurst)
	p.string("REDIS_ADDR", &cfg.RedisAddr)
	p.string("REDIS_PASSWORD", &cfg.RedisPassword)
	p.int("REDIS_DB", &cfg.RedisDB)
	p.duration("CACHE_TTL", &cfg.CacheTTL)
	p.string("CACHE_PREFIX", &cfg.CachePrefix)
	p.bool("OTEL_ENABLED", &cfg.OTelEnabled)
	p.bool("OTEL_LOGS_ENABLED", &cfg.OTelLogsEnabled)
	p.string("OTEL_SERVICE_NAME", &cfg.ServiceName)

	if err := errors.Join(p.errs...); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	var errs []error
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("PORT must be between 1 and 65535, got %d", c.Port))
	}
	if c.MaxBodyBytes <= 0 {
		errs = append(errs, fmt.Errorf("MAX_BODY_BYTES must be positive, got %d", c.MaxBodyBytes))
	}
	if c.RateLimitRPS < 0 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_RPS must not be negative, got %g", c.RateLimitRPS))
	}
	if c.RateLimitRPS > 0 && c.RateLimitBurst < 1 {
		errs = append(errs, fmt.Errorf("RATE_LIMIT_BURST must be at least 1, got %d", c.RateLimitBurst))
	}
	if c.RedisAddr != "" && c.CacheTTL <= 0 {
		errs = append(errs, fmt.Errorf("CACHE_TTL must be positive, got %s", c.CacheTTL))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("SHUTDOWN_TIMEOUT must be positive, got %s", c.ShutdownTimeout))
	}
	return errors.Join(errs...)
}

// Addr is the listen address for http.Server.
func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

type parser struct {
	getenv func(string) string
	errs   []error
}

func (p *parser) lookup(key string) (string, bool) {
	v := strings.TrimSpace(p.getenv(key))
	return v, v != ""
}

func (p *parser) fail(key, raw string, err error) {
	p.errs = append(p.errs, fmt.Errorf("invalid %s %q: %w", key, raw, err))
}

func (p *parser) string(key string, dst *string) {
	if v, ok := p.lookup(key); ok {
		*dst = v
	}
}

func (p *parser) int(key string, dst *int) {
	v, ok := p.lookup(key)
	if !ok {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		p.fail(key, v, err)
		return
	}
	*dst = n
}

func (p *parser) int64(key string, dst *int64) {
	v, ok := p.lookup(key)
	if !ok {
		return
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		p.fail(key, v, err)
		return
	}
	*dst = n
}

func (p *parser) float(key string, dst *float64) {
	v, ok := p.lookup(key)
	if !ok {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		p.fail(key, v, err)
		return
	}
	*dst = f
}

func (p *parser) bool(key string, dst *bool) {
	v, ok := p.lookup(key)
	if !ok {
		return
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		p.fail(key, v, err)
		return
	}
	*dst = b
}

func (p *parser) duration(key string, dst *time.Duration) {
	v, ok := p.lookup(key)
	if !ok {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		p.fail(key, v, err)
		return
	}
	*dst = d
}

func (p *parser) list(key string, dst *[]string) {
	v, ok := p.lookup(key)
	if !ok {
		return
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	*dst = out
}
