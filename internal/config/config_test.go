package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func env(values map[string]string) func(string) string {
	return func(key string) string { return values[key] }
}

func TestDefaults(t *testing.T) {
	cfg, err := FromEnv(env(nil))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.True(t, cfg.ThirdPlace)
	assert.Equal(t, 1, cfg.BestOf)
	assert.False(t, cfg.Strict)
	assert.Equal(t, 24*time.Hour, cfg.SessionLifetime)
	assert.Equal(t, "Black", cfg.DefaultTheme)
}

func TestOverrides(t *testing.T) {
	cfg, err := FromEnv(env(map[string]string{
		"ADDR":             "127.0.0.1:9000",
		"LOG_LEVEL":        "debug",
		"LOG_FORMAT":       "JSON",
		"THIRD_PLACE":      "false",
		"BEST_OF":          "5",
		"STRICT":           "1",
		"SESSION_LIFETIME": "90m",
		"DEFAULT_THEME":    "Neon",
	}))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Addr)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.False(t, cfg.ThirdPlace)
	assert.Equal(t, 5, cfg.BestOf)
	assert.True(t, cfg.Strict)
	assert.Equal(t, 90*time.Minute, cfg.SessionLifetime)
	assert.Equal(t, "Neon", cfg.DefaultTheme)
	assert.NotNil(t, cfg.Logger())
}

func TestInvalidValues(t *testing.T) {
	testCases := []struct {
		name string
		key  string
		val  string
	}{
		{name: "log level", key: "LOG_LEVEL", val: "loud"},
		{name: "log format", key: "LOG_FORMAT", val: "xml"},
		{name: "third place", key: "THIRD_PLACE", val: "maybe"},
		{name: "strict", key: "STRICT", val: "sure"},
		{name: "best of not a number", key: "BEST_OF", val: "three"},
		{name: "best of even", key: "BEST_OF", val: "4"},
		{name: "best of zero", key: "BEST_OF", val: "0"},
		{name: "session lifetime", key: "SESSION_LIFETIME", val: "forever"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := FromEnv(env(map[string]string{tc.key: tc.val}))
			assert.Error(t, err)
		})
	}
}
