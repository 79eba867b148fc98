package config_test

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/webnode/internal/config"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestFromViper_TypedValues(t *testing.T) {
	resetViper(t)

	viper.Set("app.name", "webnode")
	viper.Set("app.version", "1.0.0")
	viper.Set("app.environment", "development")
	viper.Set("logger.level", "debug")
	viper.Set("logger.encoding", "console")
	viper.Set("generator.base_folder", "/tmp/apps")
	viper.Set("generator.request_timeout", "7s")
	viper.Set("generator.user_agent", "TestAgent/1.0")

	cfg, err := config.FromViper()
	require.NoError(t, err)

	assert.Equal(t, "webnode", cfg.App.Name)
	assert.Equal(t, "debug", cfg.Logger.Level)
	assert.Equal(t, "/tmp/apps", cfg.Generator.BaseFolder)
	assert.Equal(t, 7*time.Second, cfg.Generator.RequestTimeout)
	assert.Equal(t, "TestAgent/1.0", cfg.Generator.UserAgent)
}

func TestFromViper_MissingAppName(t *testing.T) {
	resetViper(t)

	_, err := config.FromViper()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "application name")
}

func TestRequestTimeout_Default(t *testing.T) {
	cfg := &config.Config{}
	assert.Equal(t, config.DefaultRequestTimeout, cfg.RequestTimeout())

	cfg.Generator.RequestTimeout = 9 * time.Second
	assert.Equal(t, 9*time.Second, cfg.RequestTimeout())
}

func TestLoggerConfigFor(t *testing.T) {
	cfg := &config.Config{}
	cfg.Logger.Level = "warn"
	cfg.Logger.Encoding = "json"
	cfg.Logger.Development = true

	lc := cfg.LoggerConfigFor()
	assert.Equal(t, "warn", string(lc.Level))
	assert.Equal(t, "json", lc.Encoding)
	assert.True(t, lc.Development)
}
