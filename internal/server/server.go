package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"event_finder/internal/domain/entity"
	"event_finder/internal/domain/value"
	"event_finder/pkg/logx"
	"event_finder/pkg/middlewarex"
)

type catalogService interface {
	Bounds() value.Bounds
	Render(ctx context.Context) string
	Events(ctx context.Context) []*entity.Event
	Event(ctx context.Context, id int64) (*entity.Event, error)
	OpenEvent(ctx context.Context, p value.Point, prices []decimal.Decimal) (*entity.Event, error)
	AddTicket(ctx context.Context, eventID int64, price decimal.Decimal) (*entity.Ticket, error)
	Nearest(ctx context.Context, p value.Point, limit int) ([]entity.Listing, error)
	Buy(ctx context.Context, ticketID int64) (entity.Sale, error)
}

// Server serves the /v1 event API on top of the catalog.
type Server struct {
	catalog      catalogService
	defaultLimit int
}

func NewServer(catalog catalogService, defaultLimit int) Server {
	return Server{
		catalog:      catalog,
		defaultLimit: defaultLimit,
	}
}

type Options struct {
	Logger              *slog.Logger
	SensitiveDataMasker logx.Masker
	LogFieldMaxLen      int
}

// Handler builds the router with the full middleware chain.
func (s Server) Handler(opts Options) http.Handler {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.SensitiveDataMasker == nil {
		opts.SensitiveDataMasker = logx.NopMasker{}
	}

	r := chi.NewRouter()

	r.Use(
		middlewarex.Recovery,
		middlewarex.TraceID,
		middlewarex.Logger(opts.Logger),
		middlewarex.UserID,
		middlewarex.HTTPLogging(opts.SensitiveDataMasker, opts.LogFieldMaxLen),
	)

	s.RegisterRoutes(r)

	return r
}
