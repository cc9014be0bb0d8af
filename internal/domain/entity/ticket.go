package entity

import (
	"sync"

	"github.com/shopspring/decimal"

	"event_finder/internal/domain"
	"event_finder/pkg/errcodes"
)

// Ticket is a priced admission to one event. The price never changes; the
// ticket can be sold exactly once.
type Ticket struct {
	id      int64
	eventID int64
	price   decimal.Decimal

	mu   sync.Mutex
	sold bool
}

// NewTicket creates an unsold ticket. Price must be greater than zero.
func NewTicket(id, eventID int64, price decimal.Decimal) (*Ticket, error) {
	if !price.IsPositive() {
		return nil, domain.Errorf(errcodes.InvalidPrice, "price must be greater than zero, got %s", price.String())
	}

	return &Ticket{
		id:      id,
		eventID: eventID,
		price:   price,
	}, nil
}

func (t *Ticket) ID() int64 { return t.id }

func (t *Ticket) EventID() int64 { return t.eventID }

func (t *Ticket) Price() decimal.Decimal { return t.price }

func (t *Ticket) IsSold() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.sold
}

// Buy marks the ticket sold. It returns false, leaving the ticket untouched,
// if the ticket had already been sold.
func (t *Ticket) Buy() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.sold {
		return false
	}

	t.sold = true
	return true
}
