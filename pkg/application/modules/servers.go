package modules

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"event_finder/pkg/httpx"
	"event_finder/pkg/metrics"
	"event_finder/pkg/probe"
)

// HTTPServer serves the public API and drains in-flight requests for at most
// ShutdownTimeout once ctx is done.
type HTTPServer struct {
	ListenAddress   string
	ShutdownTimeout time.Duration
}

func (h HTTPServer) Run(ctx context.Context, g *errgroup.Group, handler http.Handler) {
	g.Go(func() error {
		return httpx.Serve(ctx, "api", httpx.NewServer(ctx, h.ListenAddress, handler), h.ShutdownTimeout)
	})
}

type ProbeServer struct {
	Name          string
	Version       string
	ListenAddress string
	Ready         func() bool
}

func (p ProbeServer) Run(ctx context.Context, g *errgroup.Group) {
	server := probe.NewServer(p.ListenAddress, probe.Options{Name: p.Name, Version: p.Version}, p.Ready)
	g.Go(func() error {
		return server.Run(ctx)
	})
}

// MetricServer exposes the default prometheus registry.
type MetricServer struct {
	ListenAddress string
}

func (m MetricServer) Run(ctx context.Context, g *errgroup.Group) {
	server := metrics.NewPrometheusServer(m.ListenAddress, nil)
	g.Go(func() error {
		return server.Run(ctx)
	})
}
