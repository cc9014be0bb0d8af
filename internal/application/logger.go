package application

import (
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"

	"event_finder/internal/config"
	"event_finder/pkg/contextx"
	"event_finder/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// NewLogger returns the colored console logger tagged with the app identity.
func NewLogger(w io.Writer, cfg config.App) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      cfg.SlogLevel(),
		TimeFormat: time.DateTime,
	})).With(
		slog.String(logx.FieldAppName, cfg.Name),
		slog.String(logx.FieldAppVersion, cfg.Version),
	)
}
