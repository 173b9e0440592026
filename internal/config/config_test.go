package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	cfg, err := build(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, []string{"*"}, cfg.HTTP.CORSAllowOrigins)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.False(t, cfg.Cache.Enabled)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Empty(t, cfg.Content.Dir)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestBuild_EnvOverrides(t *testing.T) {
	t.Setenv("PORTFOLIO_APP_PORT", "9090")
	t.Setenv("PORTFOLIO_APP_ENV", "production")
	t.Setenv("PORTFOLIO_LOG_FORMAT", "json")
	t.Setenv("PORTFOLIO_CACHE_ENABLED", "true")
	t.Setenv("PORTFOLIO_CACHE_TTL", "30s")
	t.Setenv("PORT", "7000")

	cfg, err := build(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.App.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.Cache.Enabled)
	assert.Equal(t, 30*time.Second, cfg.Cache.TTL)
}

func TestBuild_PlainPortFallback(t *testing.T) {
	t.Setenv("PORT", "7000")
	cfg, err := build(viper.New())
	require.NoError(t, err)
	assert.Equal(t, "7000", cfg.App.Port)
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			App: AppConfig{Port: "8080"},
			HTTP: HTTPConfig{
				ReadTimeout: time.Second, WriteTimeout: time.Second,
				IdleTimeout: time.Second, ShutdownTimeout: time.Second,
			},
			Log:     LogConfig{Format: "json"},
			Metrics: MetricsConfig{Enabled: true, Path: "/metrics"},
		}
	}
	require.NoError(t, valid().Validate())

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad port", func(c *Config) { c.App.Port = "http" }},
		{"port out of range", func(c *Config) { c.App.Port = "70000" }},
		{"zero timeout", func(c *Config) { c.HTTP.WriteTimeout = 0 }},
		{"unknown log format", func(c *Config) { c.Log.Format = "xml" }},
		{"cache without ttl", func(c *Config) { c.Cache = CacheConfig{Enabled: true} }},
		{"relative metrics path", func(c *Config) { c.Metrics.Path = "metrics" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			assert.Error(t, c.Validate())
		})
	}
}
