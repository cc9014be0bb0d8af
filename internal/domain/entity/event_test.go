package entity_test

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"event_finder/internal/domain"
	"event_finder/internal/domain/entity"
	"event_finder/pkg/errcodes"
	"event_finder/pkg/tests"
)

func addTickets(t *testing.T, event *entity.Event, prices ...string) []*entity.Ticket {
	t.Helper()

	result := make([]*entity.Ticket, 0, len(prices))
	for _, p := range prices {
		ticket, err := entity.NewTicket(int64(len(event.Tickets())+1), event.ID(), price(p))
		require.NoError(t, err)
		require.NoError(t, event.AddTicket(ticket))
		result = append(result, ticket)
	}

	return result
}

func TestEventCheapestTicket(t *testing.T) {
	rq := require.New(t)

	event := entity.NewEvent(7)
	rq.Equal("Event 007", event.String())
	rq.Nil(event.CheapestTicket())
	rq.Empty(event.Tickets())

	tickets := addTickets(t, event, "30.00", "12.50", "40.00", "12.50")
	rq.Same(tickets[1], event.CheapestTicket())
	rq.Len(event.Tickets(), 4)

	// Selling a ticket that is not the cheapest keeps the cache.
	sold, err := event.SellTicket(tickets[2].ID())
	rq.NoError(err)
	rq.Same(tickets[2], sold)
	rq.Same(tickets[1], event.CheapestTicket())

	// Equal prices resolve to the earliest added ticket.
	_, err = event.SellTicket(tickets[1].ID())
	rq.NoError(err)
	rq.Same(tickets[3], event.CheapestTicket())

	_, err = event.SellTicket(tickets[3].ID())
	rq.NoError(err)
	rq.Same(tickets[0], event.CheapestTicket())

	_, err = event.SellTicket(tickets[0].ID())
	rq.NoError(err)
	rq.Nil(event.CheapestTicket())

	// A new ticket becomes the cheapest once everything else is sold.
	more := addTickets(t, event, "99.99")
	rq.Same(more[0], event.CheapestTicket())
}

func TestEventNotifyTicketSold(t *testing.T) {
	rq := require.New(t)

	event := entity.NewEvent(1)
	tickets := addTickets(t, event, "5", "3", "4")

	rq.True(tickets[1].Buy())
	event.NotifyTicketSold(tickets[1])
	rq.Same(tickets[2], event.CheapestTicket())

	rq.True(tickets[0].Buy())
	event.NotifyTicketSold(tickets[0])
	rq.Same(tickets[2], event.CheapestTicket())
}

func TestEventAddTicketErrors(t *testing.T) {
	rq := require.New(t)

	event := entity.NewEvent(1)
	tickets := addTickets(t, event, "10")

	err := event.AddTicket(tickets[0])
	rq.True(domain.HasCode(err, errcodes.DuplicateTicket))

	foreign, err := entity.NewTicket(100, 2, price("1"))
	rq.NoError(err)
	rq.True(domain.HasCode(event.AddTicket(foreign), errcodes.InvalidEventID))

	sold, err := entity.NewTicket(101, 1, price("1"))
	rq.NoError(err)
	rq.True(sold.Buy())
	rq.NoError(event.AddTicket(sold))
	rq.Same(tickets[0], event.CheapestTicket())
}

func TestEventSellTicketErrors(t *testing.T) {
	rq := require.New(t)

	event := entity.NewEvent(1)
	tickets := addTickets(t, event, "10")

	_, err := event.SellTicket(42)
	rq.True(domain.HasCode(err, errcodes.TicketNotFound))

	_, err = event.SellTicket(tickets[0].ID())
	rq.NoError(err)

	_, err = event.SellTicket(tickets[0].ID())
	rq.True(domain.HasCode(err, errcodes.TicketAlreadySold))
	rq.Nil(event.CheapestTicket())
}

func TestEventCheapestInvariantRandomized(t *testing.T) {
	rq := require.New(t)
	random := tests.NewRandomizer(t)

	event := entity.NewEvent(1)
	var nextID int64

	for step := 0; step < 500; step++ {
		tickets := event.Tickets()

		if len(tickets) == 0 || random.Bool() {
			nextID++
			cents := random.IntBetween(1, 500)
			ticket, err := entity.NewTicket(nextID, event.ID(), decimal.New(int64(cents), -2))
			rq.NoError(err)
			rq.NoError(event.AddTicket(ticket))
		} else {
			_, _ = event.SellTicket(tickets[random.Intn(len(tickets))].ID())
		}

		rq.Same(expectedCheapest(event.Tickets()), event.CheapestTicket(), "step %d", step)
	}
}

func TestEventSellTicketConcurrent(t *testing.T) {
	rq := require.New(t)

	event := entity.NewEvent(1)
	tickets := addTickets(t, event, "1", "2", "3", "4", "5", "6", "7", "8")

	var wg sync.WaitGroup

	for _, ticket := range tickets {
		for range 4 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _ = event.SellTicket(ticket.ID())
			}()
		}
	}

	more := make([]*entity.Ticket, 0, 8)
	for i := range 8 {
		ticket, err := entity.NewTicket(int64(100+i), event.ID(), price("50"))
		rq.NoError(err)
		more = append(more, ticket)
	}
	for _, ticket := range more {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = event.AddTicket(ticket)
		}()
	}

	wg.Wait()

	rq.Len(event.Tickets(), 16)
	rq.Same(expectedCheapest(event.Tickets()), event.CheapestTicket())
	rq.True(event.CheapestTicket().Price().Equal(price("50")))
}

func expectedCheapest(tickets []*entity.Ticket) *entity.Ticket {
	var cheapest *entity.Ticket
	for _, ticket := range tickets {
		if ticket.IsSold() {
			continue
		}
		if cheapest == nil || ticket.Price().LessThan(cheapest.Price()) {
			cheapest = ticket
		}
	}
	return cheapest
}
