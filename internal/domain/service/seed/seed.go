package seed

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/shopspring/decimal"

	"event_finder/internal/domain"
	"event_finder/internal/domain/service/catalog"
	"event_finder/internal/domain/value"
	"event_finder/pkg/contextx"
	"event_finder/pkg/errcodes"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

const (
	maxTicketsPerEvent = 10
	maxPriceSpread     = 100
)

// Generator fills a catalog with random events and tickets.
type Generator struct {
	catalog *catalog.Catalog
	random  func() float64
}

// New returns a generator drawing numbers in [0, 1) from random.
func New(c *catalog.Catalog, random func() float64) *Generator {
	return &Generator{
		catalog: c,
		random:  random,
	}
}

// Generate creates n events with up to ten tickets each and places every
// event on a random free cell.
func (g *Generator) Generate(ctx context.Context, n int) error {
	bounds := g.catalog.Bounds()

	free := bounds.Cells() - g.catalog.Stats(ctx).PlacedEvents
	if n < 0 || n > free {
		return domain.Errorf(errcodes.InvalidSeedCount, "cannot seed %d events, %d free cells", n, free)
	}

	for range n {
		if err := ctx.Err(); err != nil {
			return err
		}

		event := g.catalog.CreateEvent(ctx)

		tickets := int(math.Round(g.random() * maxTicketsPerEvent))
		for range tickets {
			if _, err := g.catalog.AddTicket(ctx, event.ID(), g.price()); err != nil {
				return fmt.Errorf("catalog.AddTicket: %w", err)
			}
		}

		if err := g.place(ctx, event.ID(), bounds); err != nil {
			return err
		}
	}

	logger(ctx).Info("catalog seeded", slog.Int("events", n))

	return nil
}

// place retries random cells until one is free. Other writers may fill the
// grid meanwhile, so every miss re-checks that a free cell is left.
func (g *Generator) place(ctx context.Context, eventID int64, bounds value.Bounds) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		p := value.Point{
			X: bounds.MinX + int(math.Round(float64(bounds.XSpan())*g.random())),
			Y: bounds.MinY + int(math.Round(float64(bounds.YSpan())*g.random())),
		}

		err := g.catalog.PlaceEvent(ctx, eventID, p)
		if err == nil {
			return nil
		}
		if !domain.HasCode(err, errcodes.CellOccupied) {
			return fmt.Errorf("catalog.PlaceEvent: %w", err)
		}

		if g.catalog.Stats(ctx).PlacedEvents >= bounds.Cells() {
			return domain.Errorf(errcodes.InvalidSeedCount, "no free cell left for event %d", eventID)
		}
	}
}

// price is between $2.00 and $102.00, rounded to cents.
func (g *Generator) price() decimal.Decimal {
	return decimal.NewFromFloat(2 + g.random()*maxPriceSpread).Round(2)
}
