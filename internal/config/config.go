package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/orbitwatch/backend/pkg/utils"
)

const (
	DefaultPort            = "8080"
	DefaultEnv             = "development"
	DefaultN2YOBaseURL     = "https://api.n2yo.com/rest/v1"
	DefaultUpstreamTimeout = 10 * time.Second
	DefaultAllowOrigins    = "*"
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultMetricsPath     = "/metrics"
	DefaultTracingExporter = "stdout"
	DefaultTracingService  = "satellite-tracker"
)

// Config holds server settings
type Config struct {
	Port     string         `yaml:"port"`
	Env      string         `yaml:"env"`
	Upstream UpstreamConfig `yaml:"upstream"`
	CORS     CORSConfig     `yaml:"cors"`
	Log      LogConfig      `yaml:"log"`
	Metrics  MetricsConfig  `yaml:"metrics"`
	Tracing  TracingConfig  `yaml:"tracing"`
}

// UpstreamConfig describes the N2YO API. An empty APIKey is allowed: every
// proxy then answers with a configuration error.
type UpstreamConfig struct {
	APIKey  string        `yaml:"api_key"`
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

type CORSConfig struct {
	AllowOrigins string `yaml:"allow_origins"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type MetricsConfig struct {
	Enabled *bool  `yaml:"enabled"`
	Path    string `yaml:"path"`
}

type TracingConfig struct {
	Enabled     bool     `yaml:"enabled"`
	Exporter    string   `yaml:"exporter"`
	ServiceName string   `yaml:"service_name"`
	Endpoint    string   `yaml:"endpoint"`
	SampleRatio *float64 `yaml:"sample_ratio"`
}

// Load builds the configuration from an optional YAML file followed by
// environment overrides. An empty path skips the file.
func Load(path string) (Config, error) {
	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := ApplyEnv(&cfg); err != nil {
		return Config{}, err
	}
	ApplyDefaults(&cfg)

	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ApplyEnv overrides fields whose environment variable is set
func ApplyEnv(cfg *Config) error {
	setString(&cfg.Port, "PORT")
	setString(&cfg.Env, "GO_ENV")
	setString(&cfg.Upstream.APIKey, "N2YO_API_KEY")
	setString(&cfg.Upstream.BaseURL, "N2YO_BASE_URL")
	setString(&cfg.CORS.AllowOrigins, "CORS_ALLOW_ORIGINS")
	setString(&cfg.Log.Level, "LOG_LEVEL")
	setString(&cfg.Log.Format, "LOG_FORMAT")
	setString(&cfg.Metrics.Path, "METRICS_PATH")
	setString(&cfg.Tracing.Exporter, "TRACING_EXPORTER")
	setString(&cfg.Tracing.ServiceName, "TRACING_SERVICE_NAME")
	setString(&cfg.Tracing.Endpoint, "OTLP_ENDPOINT")

	if v := os.Getenv("UPSTREAM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("config: UPSTREAM_TIMEOUT: %w", err)
		}
		cfg.Upstream.Timeout = d
	}
	if v := os.Getenv("METRICS_ENABLED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: METRICS_ENABLED: %w", err)
		}
		cfg.Metrics.Enabled = &b
	}
	if v := os.Getenv("TRACING_ENABLED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: TRACING_ENABLED: %w", err)
		}
		cfg.Tracing.Enabled = b
	}
	if v := os.Getenv("TRACING_SAMPLE_RATIO"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("config: TRACING_SAMPLE_RATIO: %w", err)
		}
		cfg.Tracing.SampleRatio = &f
	}
	return nil
}

// ApplyDefaults fills in default values when empty.
func ApplyDefaults(cfg *Config) {
	if cfg.Port == "" {
		cfg.Port = DefaultPort
	}
	if cfg.Env == "" {
		cfg.Env = DefaultEnv
	}
	if cfg.Upstream.BaseURL == "" {
		cfg.Upstream.BaseURL = DefaultN2YOBaseURL
	}
	cfg.Upstream.BaseURL = strings.TrimRight(cfg.Upstream.BaseURL, "/")
	if cfg.Upstream.Timeout == 0 {
		cfg.Upstream.Timeout = DefaultUpstreamTimeout
	}
	if cfg.CORS.AllowOrigins == "" {
		cfg.CORS.AllowOrigins = DefaultAllowOrigins
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = DefaultLogLevel
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = DefaultLogFormat
	}
	if cfg.Metrics.Enabled == nil {
		enabled := true
		cfg.Metrics.Enabled = &enabled
	}
	if cfg.Metrics.Path == "" {
		cfg.Metrics.Path = DefaultMetricsPath
	}
	if cfg.Tracing.Exporter == "" {
		cfg.Tracing.Exporter = DefaultTracingExporter
	}
	if cfg.Tracing.ServiceName == "" {
		cfg.Tracing.ServiceName = DefaultTracingService
	}
	if cfg.Tracing.SampleRatio == nil {
		ratio := 1.0
		cfg.Tracing.SampleRatio = &ratio
	}
}

// Validate performs minimal validation for required fields.
func Validate(cfg Config) error {
	if _, err := strconv.Atoi(cfg.Port); err != nil {
		return fmt.Errorf("config: port must be numeric, got %q", cfg.Port)
	}
	u, err := url.Parse(cfg.Upstream.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("config: upstream.base_url must be an absolute URL, got %q", cfg.Upstream.BaseURL)
	}
	if cfg.Upstream.Timeout < 0 {
		return fmt.Errorf("config: upstream.timeout must be positive")
	}
	if r := cfg.Tracing.SampleRatio; r != nil && utils.Clamp(*r, 0, 1) != *r {
		return fmt.Errorf("config: tracing.sample_ratio must be within [0, 1], got %v", *r)
	}
	return nil
}

// MetricsEnabled reports whether the /metrics endpoint is served
func (c Config) MetricsEnabled() bool {
	return c.Metrics.Enabled == nil || *c.Metrics.Enabled
}

// UpstreamConfigured reports whether an N2YO key is present
func (c Config) UpstreamConfigured() bool {
	return c.Upstream.APIKey != ""
}

// IsProduction reports whether the server runs with GO_ENV=production
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Env, "production")
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
