package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config aggregates runtime configuration used across the service.
type Config struct {
	HTTP          HTTPConfig          `yaml:"http"`
	Numerology    NumerologyConfig    `yaml:"numerology"`
	Compatibility CompatibilityConfig `yaml:"compatibility"`
	Journal       JournalConfig       `yaml:"journal"`
	Metrics       MetricsConfig       `yaml:"metrics"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
	Retry          RetryConfig     `yaml:"retry"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool `yaml:"enabled"`
	RequestsPerMinute int  `yaml:"requestsPerMinute"`
	Burst             int  `yaml:"burst"`
}

// RetryConfig configures best-effort retries for idempotent requests.
type RetryConfig struct {
	Enabled     bool          `yaml:"enabled"`
	MaxAttempts int           `yaml:"maxAttempts"`
	BaseBackoff time.Duration `yaml:"baseBackoff"`
	Exclude     []string      `yaml:"exclude"`
}

// NumerologyConfig tunes the numerology service.
type NumerologyConfig struct {
	ProfileCacheSize int `yaml:"profileCacheSize"`
}

// CompatibilityConfig controls pair scoring and trending stats.
type CompatibilityConfig struct {
	TrendingLimit int         `yaml:"trendingLimit"`
	Redis         RedisConfig `yaml:"redis"`
}

// RedisConfig contains connection information for the trending store.
type RedisConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// JournalConfig controls reading journal persistence and export.
type JournalConfig struct {
	ListLimit int            `yaml:"listLimit"`
	Postgres  PostgresConfig `yaml:"postgres"`
	Archive   ArchiveConfig  `yaml:"archive"`
}

// PostgresConfig contains DSN and pooling settings.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
	Migrate  bool   `yaml:"migrate"`
}

// ArchiveConfig points journal exports at an S3-compatible bucket.
type ArchiveConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"accessKey"`
	SecretKey string `yaml:"secretKey"`
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
}

// MetricsConfig toggles the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// Load reads configuration from a YAML file and environment variables.
func Load() (*Config, error) {
	cfg := defaultConfig()

	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := hydrateFromFile(cfg, path); err != nil {
			return nil, err
		}
	} else if _, err := os.Stat("configs/config.yaml"); err == nil {
		if err := hydrateFromFile(cfg, "configs/config.yaml"); err != nil {
			return nil, err
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

func hydrateFromFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) {
	envString("HTTP_ADDRESS", &cfg.HTTP.Address)
	envBool("HTTP_RATE_LIMIT_ENABLED", &cfg.HTTP.RateLimit.Enabled)
	envInt("HTTP_RATE_LIMIT_RPM", &cfg.HTTP.RateLimit.RequestsPerMinute)
	envInt("HTTP_RATE_LIMIT_BURST", &cfg.HTTP.RateLimit.Burst)
	envBool("HTTP_RETRY_ENABLED", &cfg.HTTP.Retry.Enabled)
	envInt("HTTP_RETRY_MAX_ATTEMPTS", &cfg.HTTP.Retry.MaxAttempts)
	envDuration("HTTP_RETRY_BASE_BACKOFF", &cfg.HTTP.Retry.BaseBackoff)
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}

	envInt("NUMEROLOGY_PROFILE_CACHE_SIZE", &cfg.Numerology.ProfileCacheSize)

	envInt("COMPAT_TRENDING_LIMIT", &cfg.Compatibility.TrendingLimit)
	envBool("COMPAT_REDIS_ENABLED", &cfg.Compatibility.Redis.Enabled)
	envString("COMPAT_REDIS_ADDR", &cfg.Compatibility.Redis.Addr)

	envInt("JOURNAL_LIST_LIMIT", &cfg.Journal.ListLimit)
	envString("JOURNAL_POSTGRES_DSN", &cfg.Journal.Postgres.DSN)
	envInt32("JOURNAL_POSTGRES_MAX_CONNS", &cfg.Journal.Postgres.MaxConns)
	envInt32("JOURNAL_POSTGRES_MIN_CONNS", &cfg.Journal.Postgres.MinConns)
	envBool("JOURNAL_POSTGRES_MIGRATE", &cfg.Journal.Postgres.Migrate)
	envBool("JOURNAL_ARCHIVE_ENABLED", &cfg.Journal.Archive.Enabled)
	envString("JOURNAL_ARCHIVE_ENDPOINT", &cfg.Journal.Archive.Endpoint)
	envString("JOURNAL_ARCHIVE_ACCESS_KEY", &cfg.Journal.Archive.AccessKey)
	envString("JOURNAL_ARCHIVE_SECRET_KEY", &cfg.Journal.Archive.SecretKey)
	envString("JOURNAL_ARCHIVE_BUCKET", &cfg.Journal.Archive.Bucket)
	envString("JOURNAL_ARCHIVE_REGION", &cfg.Journal.Archive.Region)

	envBool("METRICS_ENABLED", &cfg.Metrics.Enabled)
	envString("METRICS_PATH", &cfg.Metrics.Path)
}

func envString(key string, dst *string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func envBool(key string, dst *bool) {
	if v := os.Getenv(key); v != "" {
		*dst = v == "1" || strings.EqualFold(v, "true")
	}
}

func envInt(key string, dst *int) {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			*dst = parsed
		}
	}
}

func envInt32(key string, dst *int32) {
	if v := os.Getenv(key); v != "" {
		if parsed, err := strconv.ParseInt(v, 10, 32); err == nil {
			*dst = int32(parsed)
		}
	}
}

func envDuration(key string, dst *time.Duration) {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			*dst = parsed
		}
	}
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func defaultConfig() *Config {
	return &Config{
		HTTP: HTTPConfig{
			Address:      ":8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 5 * time.Second,
			RateLimit: RateLimitConfig{
				Enabled:           true,
				RequestsPerMinute: 120,
				Burst:             30,
			},
			Retry: RetryConfig{
				Enabled:     true,
				MaxAttempts: 3,
				BaseBackoff: 100 * time.Millisecond,
				Exclude: []string{
					"/api/v1/journal",
					"/api/v1/journal/export",
				},
			},
			AllowedOrigins: []string{
				"http://localhost:5173",
				"http://localhost:3000",
			},
		},
		Numerology: NumerologyConfig{
			ProfileCacheSize: 512,
		},
		Compatibility: CompatibilityConfig{
			TrendingLimit: 10,
		},
		Journal: JournalConfig{
			ListLimit: 50,
			Postgres: PostgresConfig{
				MaxConns: 4,
				Migrate:  true,
			},
			Archive: ArchiveConfig{
				Bucket: "daily-secrets-journal",
				Region: "auto",
			},
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	if c.HTTP.Retry.Enabled {
		if c.HTTP.Retry.MaxAttempts <= 0 {
			return errors.New("http.retry.maxAttempts must be positive")
		}
		if c.HTTP.Retry.BaseBackoff <= 0 {
			return errors.New("http.retry.baseBackoff must be positive")
		}
	}
	if c.Numerology.ProfileCacheSize < 0 {
		return errors.New("numerology.profileCacheSize cannot be negative")
	}
	if c.Compatibility.TrendingLimit <= 0 {
		return errors.New("compatibility.trendingLimit must be positive")
	}
	if c.Compatibility.Redis.Enabled && strings.TrimSpace(c.Compatibility.Redis.Addr) == "" {
		return errors.New("compatibility.redis.addr cannot be empty when redis is enabled")
	}
	if c.Journal.ListLimit <= 0 {
		return errors.New("journal.listLimit must be positive")
	}
	if c.Journal.Postgres.MinConns < 0 || c.Journal.Postgres.MaxConns < 0 {
		return errors.New("journal.postgres connection counts cannot be negative")
	}
	if c.Journal.Postgres.MaxConns > 0 && c.Journal.Postgres.MinConns > c.Journal.Postgres.MaxConns {
		return errors.New("journal.postgres.minConns cannot exceed maxConns")
	}
	if c.Journal.Archive.Enabled {
		if strings.TrimSpace(c.Journal.Archive.Endpoint) == "" {
			return errors.New("journal.archive.endpoint cannot be empty when archive is enabled")
		}
		if strings.TrimSpace(c.Journal.Archive.Bucket) == "" {
			return errors.New("journal.archive.bucket cannot be empty when archive is enabled")
		}
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return errors.New("metrics.path must start with /")
	}
	return nil
}
