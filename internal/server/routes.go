package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"event_finder/internal/domain"
	"event_finder/pkg/httpx/reply"
)

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/v1", func(r chi.Router) {
		r.Get("/grid", handler(s.getV1Grid))

		r.Route("/events", func(r chi.Router) {
			r.Get("/", handler(s.getV1Events))
			r.Post("/", handler(s.postV1Events))
			r.Get("/nearest", handler(s.getV1EventsNearest))
			r.Get("/{id}", handler(s.getV1Event))
			r.Post("/{id}/tickets", handler(s.postV1EventTickets))
		})

		r.Post("/tickets/{id}/buy", handler(s.postV1TicketBuy))
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := f(w, r)
		if err == nil {
			return
		}

		if appErr, ok := domain.AsAppError(err); ok {
			reply.Coded(r.Context(), w, statusOf(appErr.Code), appErr.Code, appErr.Message)
			return
		}

		reply.Error(r.Context(), w, err)
	}
}
