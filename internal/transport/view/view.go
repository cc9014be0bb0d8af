// Package view renders catalog objects as the short text lines shared by the
// shell, the bot and the sale notifier.
package view

import (
	"fmt"
	"strings"

	"event_finder/internal/domain/entity"
	"event_finder/internal/domain/value"
)

func CheapestPrice(t *entity.Ticket) string {
	if t == nil {
		return value.NoTickets
	}
	return value.FormatPrice(t.Price())
}

// Listing renders "Event 003 - $30.29, Distance 3".
func Listing(l entity.Listing) string {
	return fmt.Sprintf("%s - %s, Distance %d", l.Event, CheapestPrice(l.Cheapest), l.Distance)
}

func Listings(listings []entity.Listing) string {
	if len(listings) == 0 {
		return "No events found."
	}

	lines := make([]string, len(listings))
	for i, l := range listings {
		lines[i] = Listing(l)
	}
	return strings.Join(lines, "\n")
}

// Event renders the event header followed by one line per ticket.
func Event(e *entity.Event) string {
	var b strings.Builder

	b.WriteString(e.String())
	if location, ok := e.Location(); ok {
		fmt.Fprintf(&b, " at %s", location)
	} else {
		b.WriteString(" (not placed)")
	}
	fmt.Fprintf(&b, ", cheapest: %s", CheapestPrice(e.CheapestTicket()))

	for _, t := range e.Tickets() {
		status := "available"
		if t.IsSold() {
			status = "sold"
		}
		fmt.Fprintf(&b, "\n  ticket %d - %s (%s)", t.ID(), value.FormatPrice(t.Price()), status)
	}

	return b.String()
}

func Sale(s entity.Sale) string {
	buyer := s.Buyer
	if buyer == "" {
		buyer = "anonymous"
	}

	return fmt.Sprintf("Ticket %d for Event %03d sold for %s to %s",
		s.TicketID, s.EventID, value.FormatPrice(s.Price), buyer)
}
