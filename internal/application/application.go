package application

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/mymmrac/telego"
	"golang.org/x/sync/errgroup"

	"event_finder/internal/config"
	"event_finder/internal/domain/entity"
	"event_finder/internal/infrastructure/notifier"
	"event_finder/internal/server"
	"event_finder/internal/transport/bot"
	"event_finder/internal/transport/bot/handler"
	"event_finder/internal/worker"
	"event_finder/pkg/application/modules"
	"event_finder/pkg/contextx"
	"event_finder/pkg/logx"
)

const salesBufferSize = 100

// Run starts the API, probes, metrics, reporter and, with a bot token, the
// Telegram bot and sale notifier. It returns once ctx is done and every module
// has stopped.
func Run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	ctx = contextx.WithLogger(ctx, log)

	notify := cfg.Bot.Enabled() && cfg.Bot.ChatID != 0

	var sales chan entity.Sale
	if notify {
		sales = make(chan entity.Sale, salesBufferSize)
	}

	c, err := NewCatalog(ctx, cfg.Grid, sales)
	if err != nil {
		return fmt.Errorf("NewCatalog: %w", err)
	}

	var telegramBot *telego.Bot
	if cfg.Bot.Enabled() {
		if telegramBot, err = telego.NewBot(cfg.Bot.Token); err != nil {
			return fmt.Errorf("telego.NewBot: %w", err)
		}
	}

	var ready atomic.Bool

	g, ctx := errgroup.WithContext(ctx)

	modules.ProbeServer{
		Name:          cfg.App.Name,
		Version:       cfg.App.Version,
		ListenAddress: cfg.HTTP.ProbeListenAddress,
		Ready:         ready.Load,
	}.Run(ctx, g)

	modules.MetricServer{
		ListenAddress: cfg.HTTP.MetricsListenAddress,
	}.Run(ctx, g)

	reporter := worker.NewInventoryReporter(c, cfg.Reporter.Interval)
	modules.Worker{Name: "inventory-reporter"}.Run(ctx, g, func(ctx context.Context) error {
		if err := reporter.Start(ctx); err != nil {
			return fmt.Errorf("reporter.Start: %w", err)
		}

		<-ctx.Done()
		reporter.Stop()

		return nil
	})

	api := server.NewServer(c, cfg.Grid.SearchLimit).Handler(server.Options{
		Logger:              log,
		SensitiveDataMasker: logx.NewSensitiveDataMasker(),
		LogFieldMaxLen:      cfg.HTTP.LogFieldMaxLen,
	})

	modules.HTTPServer{
		ListenAddress:   cfg.HTTP.ListenAddress,
		ShutdownTimeout: cfg.HTTP.ShutdownTimeout,
	}.Run(ctx, g, api)

	if telegramBot != nil {
		commands := bot.New(telegramBot, handler.New(c, reporter, cfg.Grid.SearchLimit), cfg.Bot.AdminID)
		modules.Worker{Name: "telegram-bot"}.Run(ctx, g, commands.Run)

		if notify {
			alerts := notifier.NewTelegramBot(telegramBot, cfg.Bot.ChatID).
				WithStartupNotice(fmt.Sprintf("%s %s is up, %d events on the grid",
					cfg.App.Name, cfg.App.Version, c.Stats(ctx).PlacedEvents))
			modules.Worker{Name: "sale-notifier"}.Run(ctx, g, func(ctx context.Context) error {
				return alerts.Run(ctx, sales)
			})
		} else {
			logger(ctx).Warn("BOT_CHAT_ID is not set, sale notifications are disabled")
		}
	}

	ready.Store(true)

	logger(ctx).Info("application started")

	if err := g.Wait(); err != nil {
		return fmt.Errorf("errgroup.Wait: %w", err)
	}

	return nil
}
