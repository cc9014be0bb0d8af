package server

import (
	"event_finder/internal/domain/entity"
	"event_finder/internal/domain/value"
	"event_finder/pkg/lox"
	"event_finder/pkg/rest"
)

func newRESTBounds(b value.Bounds) rest.Bounds {
	return rest.Bounds{
		MinX: b.MinX,
		MaxX: b.MaxX,
		MinY: b.MinY,
		MaxY: b.MaxY,
	}
}

func newRESTPoint(p value.Point) rest.Point {
	return rest.Point{X: p.X, Y: p.Y}
}

func newRESTTicket(t *entity.Ticket) rest.Ticket {
	return rest.Ticket{
		ID:      t.ID(),
		EventID: t.EventID(),
		Price:   value.FormatPrice(t.Price()),
		Sold:    t.IsSold(),
	}
}

func newRESTTicketPtr(t *entity.Ticket) *rest.Ticket {
	if t == nil {
		return nil
	}

	ticket := newRESTTicket(t)
	return &ticket
}

func newRESTEvent(e *entity.Event) rest.Event {
	event := rest.Event{
		ID:       e.ID(),
		Name:     e.String(),
		Cheapest: newRESTTicketPtr(e.CheapestTicket()),
		Tickets:  lox.Map(e.Tickets(), newRESTTicket),
	}

	if location, ok := e.Location(); ok {
		p := newRESTPoint(location)
		event.Location = &p
	}

	return event
}

func newRESTListing(l entity.Listing) rest.Listing {
	location, _ := l.Event.Location()

	return rest.Listing{
		EventID:  l.Event.ID(),
		Name:     l.Event.String(),
		Location: newRESTPoint(location),
		Distance: l.Distance,
		Cheapest: newRESTTicketPtr(l.Cheapest),
	}
}

func newRESTSale(s entity.Sale) rest.Sale {
	return rest.Sale{
		TicketID: s.TicketID,
		EventID:  s.EventID,
		Price:    value.FormatPrice(s.Price),
		Buyer:    s.Buyer,
		SoldAt:   s.SoldAt,
	}
}
