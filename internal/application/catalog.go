package application

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"event_finder/internal/config"
	"event_finder/internal/domain/entity"
	"event_finder/internal/domain/service/catalog"
	"event_finder/internal/domain/service/seed"
)

// NewCatalog builds the grid and the catalog from cfg and seeds it with
// cfg.SeedEvents random events. sales may be nil.
func NewCatalog(ctx context.Context, cfg config.Grid, sales chan<- entity.Sale) (*catalog.Catalog, error) {
	var opts []entity.GridOption
	if cfg.LegacyRange {
		opts = append(opts, entity.WithLegacyRange())
	}

	grid, err := entity.NewGrid(cfg.Bounds(), opts...)
	if err != nil {
		return nil, fmt.Errorf("entity.NewGrid: %w", err)
	}

	c := catalog.New(grid).WithSearchCache(cfg.SearchCacheTTL)
	if sales != nil {
		c = c.WithSales(sales)
	}

	if err := seed.New(c, rand.Float64).Generate(ctx, cfg.SeedEvents); err != nil {
		return nil, fmt.Errorf("seed.Generate: %w", err)
	}

	logger(ctx).Info("catalog seeded",
		slog.String("bounds", grid.Bounds().String()),
		slog.Int("events", cfg.SeedEvents),
		slog.Bool("legacy-range", cfg.LegacyRange),
	)

	return c, nil
}
