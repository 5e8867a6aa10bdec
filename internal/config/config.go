// Package config loads and validates app config from env and an optional .env file using Viper.
package config

import (
	"errors"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

// Config holds application configuration loaded from the environment.
type Config struct {
	// Env is the application environment (e.g. "development", "production").
	Env string `mapstructure:"APP_ENV"`
	// ServiceName is reported as service.name on telemetry and as the "service" log field.
	ServiceName string `mapstructure:"SERVICE_NAME"`
	// LogLevel is a zerolog level name (trace, debug, info, warn, error, fatal, panic, disabled).
	LogLevel string `mapstructure:"LOG_LEVEL"`
	// LogFormat is "json" or "console".
	LogFormat string `mapstructure:"LOG_FORMAT"`

	// OTLPEndpoint is the OTLP gRPC collector (e.g. http://localhost:4317). Empty disables export.
	OTLPEndpoint string `mapstructure:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	// OTLPInsecure disables TLS for https endpoints.
	OTLPInsecure bool `mapstructure:"OTEL_EXPORTER_OTLP_INSECURE"`

	// NotifyOnCreate makes study creation notify the new study and its owner through the member service.
	NotifyOnCreate bool `mapstructure:"STUDY_NOTIFY_ON_CREATE"`
}

// Load reads .env (if present), then builds and validates Config from the environment via Viper.
// Missing .env is ignored. Env vars override .env.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.ReadInConfig() // ignore ErrConfigFileNotFound

	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("SERVICE_NAME", "study-service")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	v.SetDefault("OTEL_EXPORTER_OTLP_INSECURE", false)
	v.SetDefault("STUDY_NOTIFY_ON_CREATE", false)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks field values and normalizes case. Returns the first problem found.
func (c *Config) Validate() error {
	c.ServiceName = strings.TrimSpace(c.ServiceName)
	if c.ServiceName == "" {
		return errors.New("config: SERVICE_NAME must be set")
	}
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return errors.New("config: LOG_LEVEL must be a zerolog level (trace, debug, info, warn, error, fatal, panic, disabled)")
	}
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	if c.LogFormat != "json" && c.LogFormat != "console" {
		return errors.New("config: LOG_FORMAT must be json or console")
	}
	c.OTLPEndpoint = strings.TrimSpace(c.OTLPEndpoint)
	return nil
}

// IsProduction reports whether APP_ENV is production.
func (c *Config) IsProduction() bool {
	return c != nil && strings.EqualFold(c.Env, "production")
}

// TelemetryEnabled reports whether an OTLP endpoint is configured.
func (c *Config) TelemetryEnabled() bool {
	return c != nil && c.OTLPEndpoint != ""
}
