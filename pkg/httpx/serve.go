package httpx

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"event_finder/pkg/contextx"
	"event_finder/pkg/logx"
)

const readHeaderTimeout = 5 * time.Second

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// NewServer returns a server whose request contexts derive from ctx, so
// handlers inherit its logger.
func NewServer(ctx context.Context, addr string, handler http.Handler) *http.Server {
	return &http.Server{
		//nolint:exhaustruct
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}
}

// Serve blocks until srv fails or ctx is done. On ctx cancellation the server
// is shut down, bounded by shutdownTimeout when it is positive.
func Serve(ctx context.Context, name string, srv *http.Server, shutdownTimeout time.Duration) error {
	log := logger(ctx).With(slog.String("server", name), slog.String("address", srv.Addr))

	stopped := make(chan struct{})
	defer close(stopped)

	go func() {
		select {
		case <-stopped:
			return
		case <-ctx.Done():
		}

		shutdownCtx := context.WithoutCancel(ctx)
		if shutdownTimeout > 0 {
			var cancel context.CancelFunc
			shutdownCtx, cancel = context.WithTimeout(shutdownCtx, shutdownTimeout)
			defer cancel()
		}

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("server.Shutdown", logx.Error(err))
		}
	}()

	log.Info("server started")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("%s: ListenAndServe: %w", name, err)
	}

	log.Info("server stopped")

	return nil
}
