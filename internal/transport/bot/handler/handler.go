package handler

import (
	"context"

	"github.com/shopspring/decimal"

	"event_finder/internal/domain/entity"
	"event_finder/internal/domain/service/catalog"
	"event_finder/internal/domain/value"
	"event_finder/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

type catalogService interface {
	Render(ctx context.Context) string
	Nearest(ctx context.Context, p value.Point, limit int) ([]entity.Listing, error)
	Event(ctx context.Context, id int64) (*entity.Event, error)
	Buy(ctx context.Context, ticketID int64) (entity.Sale, error)
	OpenEvent(ctx context.Context, p value.Point, prices []decimal.Decimal) (*entity.Event, error)
	Stats(ctx context.Context) catalog.Stats
}

type reporter interface {
	IsRunning() bool
}

type Handler struct {
	catalog  catalogService
	reporter reporter
	limit    int
}

func New(catalog catalogService, reporter reporter, limit int) *Handler {
	return &Handler{
		catalog:  catalog,
		reporter: reporter,
		limit:    limit,
	}
}
