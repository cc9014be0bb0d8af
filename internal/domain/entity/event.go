package entity

import (
	"fmt"
	"sync"

	"github.com/samber/lo"

	"event_finder/internal/domain"
	"event_finder/internal/domain/value"
	"event_finder/pkg/errcodes"
)

// Event owns a set of tickets and caches the cheapest one still for sale.
type Event struct {
	id int64

	mu       sync.RWMutex
	location *value.Point
	tickets  map[int64]*Ticket
	order    []*Ticket
	cheapest *Ticket
}

func NewEvent(id int64) *Event {
	return &Event{
		id:      id,
		tickets: make(map[int64]*Ticket),
	}
}

func (e *Event) ID() int64 { return e.id }

// Location returns the grid coordinate of the event, false if it has not been
// placed yet.
func (e *Event) Location() (value.Point, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	if e.location == nil {
		return value.Point{}, false
	}
	return *e.location, true
}

// setLocation records the placement. Placement is final.
func (e *Event) setLocation(p value.Point) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.location != nil {
		return false
	}

	e.location = &p
	return true
}

// AddTicket attaches a ticket and updates the cheapest ticket in O(1).
func (e *Event) AddTicket(t *Ticket) error {
	if t.EventID() != e.id {
		return domain.Errorf(errcodes.InvalidEventID, "ticket %d belongs to event %d, not %d", t.ID(), t.EventID(), e.id)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.tickets[t.ID()]; ok {
		return domain.Errorf(errcodes.DuplicateTicket, "ticket %d already added to %s", t.ID(), e)
	}

	e.tickets[t.ID()] = t
	e.order = append(e.order, t)

	if t.IsSold() {
		return nil
	}

	if e.cheapest == nil || t.Price().LessThan(e.cheapest.Price()) {
		e.cheapest = t
	}

	return nil
}

// CheapestTicket returns the cheapest unsold ticket, nil if nothing is for sale.
func (e *Event) CheapestTicket() *Ticket {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cheapest
}

// NotifyTicketSold must be called after one of the event's tickets was sold.
// Selling the cached cheapest ticket triggers a full rescan.
func (e *Event) NotifyTicketSold(t *Ticket) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.notifyTicketSold(t)
}

func (e *Event) notifyTicketSold(t *Ticket) {
	if t != e.cheapest {
		return
	}

	unsold := lo.Filter(e.order, func(t *Ticket, _ int) bool {
		return !t.IsSold()
	})

	// MinBy keeps the first of equal prices, i.e. the earliest added ticket.
	e.cheapest = lo.MinBy(unsold, func(a, b *Ticket) bool {
		return a.Price().LessThan(b.Price())
	})
}

// SellTicket buys one of the event's tickets and keeps the cheapest ticket
// consistent in the same critical section.
func (e *Event) SellTicket(ticketID int64) (*Ticket, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	t, ok := e.tickets[ticketID]
	if !ok {
		return nil, domain.Errorf(errcodes.TicketNotFound, "ticket %d not found in %s", ticketID, e)
	}

	if !t.Buy() {
		return nil, domain.Errorf(errcodes.TicketAlreadySold, "ticket %d is already sold", ticketID)
	}

	e.notifyTicketSold(t)

	return t, nil
}

// Tickets returns all tickets in the order they were added.
func (e *Event) Tickets() []*Ticket {
	e.mu.RLock()
	defer e.mu.RUnlock()

	result := make([]*Ticket, len(e.order))
	copy(result, e.order)
	return result
}

func (e *Event) String() string {
	return fmt.Sprintf("Event %03d", e.id)
}
