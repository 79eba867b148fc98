// Package config provides configuration management for WebNode. It handles
// loading, validation, and access to configuration values from YAML files
// and environment variables via viper.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/viper"

	"github.com/jonesrussell/webnode/internal/logger"
)

// Generator defaults.
const (
	// DefaultRequestTimeout bounds each page and icon fetch.
	DefaultRequestTimeout = 5 * time.Second
)

// AppConfig represents application-specific configuration settings.
type AppConfig struct {
	// Name is the name of the application.
	Name string `mapstructure:"name"`
	// Version is the version of the application.
	Version string `mapstructure:"version"`
	// Environment is the application environment (development, production).
	Environment string `mapstructure:"environment"`
	// Debug indicates whether debug mode is enabled.
	Debug bool `mapstructure:"debug"`
}

// LoggerConfig holds logging configuration settings.
type LoggerConfig struct {
	// Level is the logging level (debug, info, warn, error).
	Level string `mapstructure:"level"`
	// Encoding is the log encoding format (json, console).
	Encoding string `mapstructure:"encoding"`
	// Development enables development mode formatting.
	Development bool `mapstructure:"development"`
}

// GeneratorConfig holds launcher-generation settings.
type GeneratorConfig struct {
	// BaseFolder overrides the documents-folder heuristic when set.
	BaseFolder string `mapstructure:"base_folder"`
	// RequestTimeout bounds each page and icon fetch.
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	// UserAgent is sent with every HTTP request.
	UserAgent string `mapstructure:"user_agent"`
}

// Config represents the application configuration.
type Config struct {
	// App holds application-specific configuration.
	App AppConfig `mapstructure:"app"`
	// Logger holds logging configuration.
	Logger LoggerConfig `mapstructure:"logger"`
	// Generator holds launcher-generation configuration.
	Generator GeneratorConfig `mapstructure:"generator"`
}

// FromViper decodes the current viper state into a typed Config. Duration
// fields accept "5s"-style strings.
func FromViper() (*Config, error) {
	var cfg Config

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build config decoder: %w", err)
	}

	if decodeErr := decoder.Decode(viper.AllSettings()); decodeErr != nil {
		return nil, fmt.Errorf("failed to decode configuration: %w", decodeErr)
	}

	if validateErr := cfg.Validate(); validateErr != nil {
		return nil, validateErr
	}

	return &cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.App.Name == "" {
		return errors.New("application name must be specified")
	}

	if c.Generator.RequestTimeout < 0 {
		return fmt.Errorf("request timeout must not be negative: %s", c.Generator.RequestTimeout)
	}

	return nil
}

// LoggerConfigFor returns the logger configuration derived from this config.
func (c *Config) LoggerConfigFor() *logger.Config {
	return &logger.Config{
		Level:       logger.Level(c.Logger.Level),
		Encoding:    c.Logger.Encoding,
		Development: c.Logger.Development,
	}
}

// RequestTimeout returns the configured fetch timeout, falling back to the
// default when unset.
func (c *Config) RequestTimeout() time.Duration {
	if c.Generator.RequestTimeout <= 0 {
		return DefaultRequestTimeout
	}
	return c.Generator.RequestTimeout
}
