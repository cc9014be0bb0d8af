package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale records one successful ticket purchase.
type Sale struct {
	TicketID int64
	EventID  int64
	Price    decimal.Decimal
	Buyer    string
	SoldAt   time.Time
}

// Listing is one row of a nearest-events search.
type Listing struct {
	Event    *Event
	Distance int
	Cheapest *Ticket // nil when nothing is for sale
}
