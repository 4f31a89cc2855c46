package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr            string
	LogLevel        slog.Level
	LogFormat       string
	ThirdPlace      bool
	BestOf          int
	Strict          bool
	SessionLifetime time.Duration
	DefaultTheme    string
}

// Load reads the environment, after an optional .env file.
func Load() (*Config, error) {
	// A missing .env file is fine.
	_ = godotenv.Load()
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from a lookup function so tests need no real
// environment.
func FromEnv(getenv func(string) string) (*Config, error) {
	get := func(key, fallback string) string {
		if v := strings.TrimSpace(getenv(key)); v != "" {
			return v
		}
		return fallback
	}

	cfg := &Config{
		Addr:         get("ADDR", ":8080"),
		DefaultTheme: get("DEFAULT_THEME", "Black"),
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(get("LOG_LEVEL", "info"))); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	cfg.LogFormat = strings.ToLower(get("LOG_FORMAT", "text"))
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("LOG_FORMAT must be text or json, got %q", cfg.LogFormat)
	}

	var err error
	if cfg.ThirdPlace, err = strconv.ParseBool(get("THIRD_PLACE", "true")); err != nil {
		return nil, fmt.Errorf("invalid THIRD_PLACE: %w", err)
	}
	if cfg.Strict, err = strconv.ParseBool(get("STRICT", "false")); err != nil {
		return nil, fmt.Errorf("invalid STRICT: %w", err)
	}

	if cfg.BestOf, err = strconv.Atoi(get("BEST_OF", "1")); err != nil {
		return nil, fmt.Errorf("invalid BEST_OF: %w", err)
	}
	if cfg.BestOf < 1 || cfg.BestOf%2 == 0 {
		return nil, fmt.Errorf("BEST_OF must be a positive odd number, got %d", cfg.BestOf)
	}

	if cfg.SessionLifetime, err = time.ParseDuration(get("SESSION_LIFETIME", "24h")); err != nil {
		return nil, fmt.Errorf("invalid SESSION_LIFETIME: %w", err)
	}

	return cfg, nil
}

// Logger builds the process logger described by the config.
func (c *Config) Logger() *slog.Logger {
	opts := &slog.HandlerOptions{Level: c.LogLevel}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
