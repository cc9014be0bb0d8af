package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	App      App
	Grid     Grid
	HTTP     HTTP
	Bot      Bot
	Reporter Reporter
}

type App struct {
	Name     string `env:"APP_NAME" envDefault:"event-finder"`
	Version  string `env:"APP_VERSION" envDefault:"dev"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// SlogLevel maps LOG_LEVEL onto slog levels, defaulting to info.
func (a App) SlogLevel() slog.Level {
	switch strings.ToLower(a.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func Load() (Config, error) {
	_ = godotenv.Load()

	var config Config

	if err := env.Parse(&config); err != nil {
		return Config{}, fmt.Errorf("env.Parse: %w", err)
	}

	if err := config.Grid.Bounds().Validate(); err != nil {
		return Config{}, fmt.Errorf("grid bounds: %w", err)
	}

	return config, nil
}
