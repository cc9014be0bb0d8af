package middleware

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/mymmrac/telego"
	th "github.com/mymmrac/telego/telegohandler"

	"event_finder/pkg/contextx"
	"event_finder/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

func Logging(ctx *th.Context, update telego.Update) error {
	start := time.Now()

	attrs := []any{slog.Int("update-id", update.UpdateID)}
	if userID, ok := senderID(update); ok {
		attrs = append(attrs, slog.String(logx.FieldUserID, strconv.FormatInt(userID, 10)))
	}
	if update.Message != nil {
		attrs = append(attrs, slog.String("text", update.Message.Text))
	}

	err := ctx.Next(update)

	attrs = append(attrs, slog.Int64(logx.FieldDurationMs, time.Since(start).Milliseconds()))
	if err != nil {
		logger(ctx).Error("bot update failed", append(attrs, logx.Error(err))...)
		return err
	}

	logger(ctx).Info("bot update handled", attrs...)

	return nil
}
