package entity_test

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"event_finder/internal/domain"
	"event_finder/internal/domain/entity"
	"event_finder/pkg/errcodes"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestNewTicket(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name  string
		price decimal.Decimal
		ok    bool
	}{
		{name: "Positive", price: price("10.00"), ok: true},
		{name: "One cent", price: price("0.01"), ok: true},
		{name: "Zero", price: decimal.Zero, ok: false},
		{name: "Negative", price: price("-5"), ok: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			ticket, err := entity.NewTicket(1, 2, tc.price)
			if !tc.ok {
				rq.Nil(ticket)
				rq.True(domain.HasCode(err, errcodes.InvalidPrice))
				return
			}

			rq.NoError(err)
			rq.Equal(int64(1), ticket.ID())
			rq.Equal(int64(2), ticket.EventID())
			rq.True(tc.price.Equal(ticket.Price()))
			rq.False(ticket.IsSold())
		})
	}
}

func TestTicketBuy(t *testing.T) {
	rq := require.New(t)

	ticket, err := entity.NewTicket(1, 1, price("10"))
	rq.NoError(err)

	rq.True(ticket.Buy())
	rq.True(ticket.IsSold())

	rq.False(ticket.Buy())
	rq.False(ticket.Buy())
	rq.True(ticket.IsSold())
}

func TestTicketBuyConcurrent(t *testing.T) {
	rq := require.New(t)

	ticket, err := entity.NewTicket(1, 1, price("10"))
	rq.NoError(err)

	const buyers = 64

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
	)

	for range buyers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if ticket.Buy() {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}

	wg.Wait()

	rq.Equal(1, successes)
}
