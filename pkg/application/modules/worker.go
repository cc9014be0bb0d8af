package modules

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"event_finder/pkg/contextx"
	"event_finder/pkg/logx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Worker runs a long-lived loop inside the group. Returning context.Canceled
// after shutdown is not an error.
type Worker struct {
	Name string
}

func (w Worker) Run(ctx context.Context, g *errgroup.Group, run func(context.Context) error) {
	g.Go(func() error {
		logger(ctx).Info("worker started", slog.String(logx.FieldWorker, w.Name))

		if err := run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("%s: %w", w.Name, err)
		}

		logger(ctx).Info("worker stopped", slog.String(logx.FieldWorker, w.Name))

		return nil
	})
}
