package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"event_finder/internal/domain"
	"event_finder/internal/domain/value"
	"event_finder/pkg/errcodes"
	"event_finder/pkg/httpx/reply"
	"event_finder/pkg/httpx/req"
	"event_finder/pkg/lox"
	"event_finder/pkg/rest"
)

func (s Server) getV1Grid(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	reply.JSON(ctx, w, http.StatusOK, rest.Grid{
		Bounds:   newRESTBounds(s.catalog.Bounds()),
		Rendered: s.catalog.Render(ctx),
	})

	return nil
}

func (s Server) getV1Events(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	reply.JSON(ctx, w, http.StatusOK, lox.Map(s.catalog.Events(ctx), newRESTEvent))

	return nil
}

func (s Server) getV1Event(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := value.ParseEventID(chi.URLParam(r, "id"))
	if err != nil {
		return fmt.Errorf("value.ParseEventID: %w", err)
	}

	event, err := s.catalog.Event(ctx, id)
	if err != nil {
		return fmt.Errorf("catalog.Event: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTEvent(event))

	return nil
}

func (s Server) postV1Events(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.CreateEventRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	prices, err := lox.MapErr(request.Prices, value.ParsePrice)
	if err != nil {
		return fmt.Errorf("value.ParsePrice: %w", err)
	}

	event, err := s.catalog.OpenEvent(ctx, value.Point{X: *request.X, Y: *request.Y}, prices)
	if err != nil {
		return fmt.Errorf("catalog.OpenEvent: %w", err)
	}

	reply.JSON(ctx, w, http.StatusCreated, newRESTEvent(event))

	return nil
}

func (s Server) postV1EventTickets(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := value.ParseEventID(chi.URLParam(r, "id"))
	if err != nil {
		return fmt.Errorf("value.ParseEventID: %w", err)
	}

	var request rest.AddTicketRequest

	if err = req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	price, err := value.ParsePrice(request.Price)
	if err != nil {
		return fmt.Errorf("value.ParsePrice: %w", err)
	}

	ticket, err := s.catalog.AddTicket(ctx, id, price)
	if err != nil {
		return fmt.Errorf("catalog.AddTicket: %w", err)
	}

	reply.JSON(ctx, w, http.StatusCreated, newRESTTicket(ticket))

	return nil
}

func (s Server) getV1EventsNearest(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()
	query := r.URL.Query()

	x, err := strconv.Atoi(query.Get("x"))
	if err != nil {
		return domain.WrapError(err, errcodes.InvalidCoordinates, "x must be an integer")
	}

	y, err := strconv.Atoi(query.Get("y"))
	if err != nil {
		return domain.WrapError(err, errcodes.InvalidCoordinates, "y must be an integer")
	}

	limit := s.defaultLimit
	if raw := query.Get("limit"); raw != "" {
		if limit, err = strconv.Atoi(raw); err != nil {
			return domain.WrapError(err, errcodes.InvalidLimit, "limit must be an integer")
		}
	}

	listings, err := s.catalog.Nearest(ctx, value.Point{X: x, Y: y}, limit)
	if err != nil {
		return fmt.Errorf("catalog.Nearest: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, lox.Map(listings, newRESTListing))

	return nil
}

func (s Server) postV1TicketBuy(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	id, err := value.ParseTicketID(chi.URLParam(r, "id"))
	if err != nil {
		return fmt.Errorf("value.ParseTicketID: %w", err)
	}

	sale, err := s.catalog.Buy(ctx, id)
	if err != nil {
		return fmt.Errorf("catalog.Buy: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTSale(sale))

	return nil
}
