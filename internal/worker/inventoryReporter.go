package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"event_finder/internal/domain/service/catalog"
	"event_finder/pkg/contextx"
	"event_finder/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

var ErrAlreadyRunning = errors.New("reporter is already running")

type statsProvider interface {
	Stats(ctx context.Context) catalog.Stats
}

// InventoryReporter periodically publishes catalog stats as gauges and logs.
type InventoryReporter struct {
	catalog  statsProvider
	interval time.Duration

	mu         sync.Mutex
	cancelFunc context.CancelFunc
	isRunning  bool
	wg         sync.WaitGroup
}

func NewInventoryReporter(catalog statsProvider, interval time.Duration) *InventoryReporter {
	return &InventoryReporter{
		catalog:  catalog,
		interval: interval,
	}
}

// Start runs the reporter in the background until Stop or ctx cancellation.
func (w *InventoryReporter) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.isRunning {
		return ErrAlreadyRunning
	}

	runCtx, cancel := context.WithCancel(ctx)
	w.cancelFunc = cancel
	w.isRunning = true

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer func() {
			w.mu.Lock()
			w.isRunning = false
			w.cancelFunc = nil
			w.mu.Unlock()
		}()

		if err := w.Run(runCtx); err != nil && !errors.Is(err, context.Canceled) {
			logger(ctx).Error("inventory reporter stopped", logx.Error(err))
		}
	}()

	return nil
}

func (w *InventoryReporter) Stop() {
	w.mu.Lock()

	if !w.isRunning {
		w.mu.Unlock()
		return
	}

	if w.cancelFunc != nil {
		w.cancelFunc()
	}
	w.mu.Unlock()

	w.wg.Wait()
}

func (w *InventoryReporter) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.isRunning
}

// Run reports once right away and then every interval until ctx is done.
func (w *InventoryReporter) Run(ctx context.Context) error {
	logger(ctx).Info("inventory reporter started", slog.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		w.report(ctx)

		select {
		case <-ctx.Done():
			logger(ctx).Info("inventory reporter stopped")
			return ctx.Err() //nolint:wrapcheck
		case <-ticker.C:
		}
	}
}

func (w *InventoryReporter) report(ctx context.Context) {
	stats := w.catalog.Stats(ctx)

	eventsGauge.Set(float64(stats.Events))
	placedEventsGauge.Set(float64(stats.PlacedEvents))
	soldOutEventsGauge.Set(float64(stats.SoldOut))
	ticketsGauge.Set(float64(stats.Tickets))
	unsoldTicketsGauge.Set(float64(stats.UnsoldTickets))

	logger(ctx).Info("inventory",
		slog.Int("events", stats.Events),
		slog.Int("placed-events", stats.PlacedEvents),
		slog.Int("sold-out-events", stats.SoldOut),
		slog.Int("tickets", stats.Tickets),
		slog.Int("unsold-tickets", stats.UnsoldTickets),
	)
}
