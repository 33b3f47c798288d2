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
	HTTP      HTTPConfig      `yaml:"http"`
	Generator GeneratorConfig `yaml:"generator"`
	Storage   StorageConfig   `yaml:"storage"`
	Admin     AdminConfig     `yaml:"admin"`
}

// HTTPConfig controls server level behavior.
type HTTPConfig struct {
	Address        string          `yaml:"address"`
	ReadTimeout    time.Duration   `yaml:"readTimeout"`
	WriteTimeout   time.Duration   `yaml:"writeTimeout"`
	RateLimit      RateLimitConfig `yaml:"rateLimit"`
	AllowedOrigins []string        `yaml:"allowedOrigins"`
}

// RateLimitConfig drives the request limiting middleware.
type RateLimitConfig struct {
	Enabled           bool          `yaml:"enabled"`
	RequestsPerMinute int           `yaml:"requestsPerMinute"`
	Burst             int           `yaml:"burst"`
	VisitorTTL        time.Duration `yaml:"visitorTtl"`
}

// GeneratorConfig controls month generation.
type GeneratorConfig struct {
	Workers  int           `yaml:"workers"`
	CacheTTL time.Duration `yaml:"cacheTtl"`
	Years    []int         `yaml:"years"`
	QueueKey string        `yaml:"queueKey"`
}

// StorageConfig groups the persistence and publishing backends.
type StorageConfig struct {
	Postgres  PostgresConfig `yaml:"postgres"`
	Valkey    ValkeyConfig   `yaml:"valkey"`
	Object    ObjectConfig   `yaml:"object"`
	OutputDir string         `yaml:"outputDir"`
}

// PostgresConfig contains DSN and pooling settings.
type PostgresConfig struct {
	DSN      string `yaml:"dsn"`
	MaxConns int32  `yaml:"maxConns"`
	MinConns int32  `yaml:"minConns"`
}

// ValkeyConfig contains connection information for cache and queue.
type ValkeyConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// ObjectConfig contains the S3-compatible publishing target.
type ObjectConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"accessKey"`
	SecretKey string `yaml:"secretKey"`
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
}

// AdminConfig guards the generation endpoint.
type AdminConfig struct {
	JWTSecret string        `yaml:"jwtSecret"`
	TokenTTL  time.Duration `yaml:"tokenTtl"`
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
	if v := os.Getenv("HTTP_ADDRESS"); v != "" {
		cfg.HTTP.Address = v
	}
	if v := os.Getenv("HTTP_ALLOWED_ORIGINS"); v != "" {
		cfg.HTTP.AllowedOrigins = splitList(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_ENABLED"); v != "" {
		cfg.HTTP.RateLimit.Enabled = parseBool(v)
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_RPM"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.RequestsPerMinute = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_BURST"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.HTTP.RateLimit.Burst = parsed
		}
	}
	if v := os.Getenv("HTTP_RATE_LIMIT_VISITOR_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.HTTP.RateLimit.VisitorTTL = parsed
		}
	}
	if v := os.Getenv("GENERATOR_WORKERS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Generator.Workers = parsed
		}
	}
	if v := os.Getenv("GENERATOR_CACHE_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Generator.CacheTTL = parsed
		}
	}
	if v := os.Getenv("GENERATOR_YEARS"); v != "" {
		if years := parseIntList(v); len(years) > 0 {
			cfg.Generator.Years = years
		}
	}
	if v := os.Getenv("GENERATOR_QUEUE_KEY"); v != "" {
		cfg.Generator.QueueKey = v
	}
	if v := os.Getenv("POSTGRES_DSN"); v != "" {
		cfg.Storage.Postgres.DSN = v
	}
	if v := os.Getenv("POSTGRES_MAX_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Storage.Postgres.MaxConns = int32(parsed)
		}
	}
	if v := os.Getenv("POSTGRES_MIN_CONNS"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			cfg.Storage.Postgres.MinConns = int32(parsed)
		}
	}
	if v := os.Getenv("VALKEY_ENABLED"); v != "" {
		cfg.Storage.Valkey.Enabled = parseBool(v)
	}
	if v := os.Getenv("VALKEY_ADDR"); v != "" {
		cfg.Storage.Valkey.Addr = v
	}
	if v := os.Getenv("OBJECT_ENABLED"); v != "" {
		cfg.Storage.Object.Enabled = parseBool(v)
	}
	if v := os.Getenv("OBJECT_ENDPOINT"); v != "" {
		cfg.Storage.Object.Endpoint = v
	}
	if v := os.Getenv("OBJECT_ACCESS_KEY"); v != "" {
		cfg.Storage.Object.AccessKey = v
	}
	if v := os.Getenv("OBJECT_SECRET_KEY"); v != "" {
		cfg.Storage.Object.SecretKey = v
	}
	if v := os.Getenv("OBJECT_BUCKET"); v != "" {
		cfg.Storage.Object.Bucket = v
	}
	if v := os.Getenv("OBJECT_REGION"); v != "" {
		cfg.Storage.Object.Region = v
	}
	if v := os.Getenv("OUTPUT_DIR"); v != "" {
		cfg.Storage.OutputDir = v
	}
	if v := os.Getenv("ADMIN_JWT_SECRET"); v != "" {
		cfg.Admin.JWTSecret = v
	}
	if v := os.Getenv("ADMIN_TOKEN_TTL"); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			cfg.Admin.TokenTTL = parsed
		}
	}
}

func parseBool(v string) bool {
	return v == "1" || strings.EqualFold(v, "true")
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func parseIntList(v string) []int {
	parts := strings.Split(v, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		if parsed, err := strconv.Atoi(strings.TrimSpace(p)); err == nil {
			out = append(out, parsed)
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
				RequestsPerMinute: 60,
				Burst:             20,
				VisitorTTL:        5 * time.Minute,
			},
		},
		Generator: GeneratorConfig{
			Workers:  4,
			CacheTTL: 6 * time.Hour,
			Years:    []int{2025, 2026},
			QueueKey: "almanac:jobs",
		},
		Storage: StorageConfig{
			Postgres: PostgresConfig{
				DSN:      "",
				MaxConns: 4,
				MinConns: 0,
			},
			Valkey: ValkeyConfig{
				Enabled: false,
				Addr:    "",
			},
			OutputDir: "data/general",
		},
		Admin: AdminConfig{
			TokenTTL: time.Hour,
		},
	}
}

// Validate ensures the configuration is safe to use.
func (c *Config) Validate() error {
	if c.HTTP.Address == "" {
		return errors.New("http.address cannot be empty")
	}
	if c.Generator.Workers <= 0 {
		return errors.New("generator.workers must be positive")
	}
	if c.Generator.CacheTTL < 0 {
		return errors.New("generator.cacheTtl cannot be negative")
	}
	if len(c.Generator.Years) == 0 {
		return errors.New("generator.years cannot be empty")
	}
	if c.Storage.Valkey.Enabled && strings.TrimSpace(c.Storage.Valkey.Addr) == "" {
		return errors.New("storage.valkey.addr cannot be empty when valkey is enabled")
	}
	if c.Storage.Object.Enabled {
		if strings.TrimSpace(c.Storage.Object.Endpoint) == "" {
			return errors.New("storage.object.endpoint cannot be empty when object publishing is enabled")
		}
		if strings.TrimSpace(c.Storage.Object.Bucket) == "" {
			return errors.New("storage.object.bucket cannot be empty when object publishing is enabled")
		}
	}
	if c.Storage.OutputDir == "" {
		return errors.New("storage.outputDir cannot be empty")
	}
	if c.Admin.TokenTTL <= 0 {
		return errors.New("admin.tokenTtl must be positive")
	}
	if c.HTTP.RateLimit.Enabled {
		if c.HTTP.RateLimit.RequestsPerMinute <= 0 {
			return errors.New("http.rateLimit.requestsPerMinute must be positive")
		}
		if c.HTTP.RateLimit.Burst <= 0 {
			return errors.New("http.rateLimit.burst must be positive")
		}
	}
	return nil
}
