package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"event_finder/internal/domain"
	"event_finder/pkg/errcodes"
)

func TestAppError(t *testing.T) {
	rq := require.New(t)

	cause := errors.New("boom")
	err := fmt.Errorf("catalog.Buy: %w", domain.WrapError(cause, errcodes.TicketAlreadySold, "ticket 3 already sold"))

	rq.ErrorIs(err, cause)
	rq.EqualError(err, "catalog.Buy: ticket 3 already sold: boom")

	appErr, ok := domain.AsAppError(err)
	rq.True(ok)
	rq.Equal(errcodes.TicketAlreadySold, appErr.Code)
	rq.Equal("ticket 3 already sold", appErr.Message)

	rq.True(domain.HasCode(err, errcodes.TicketAlreadySold))
	rq.False(domain.HasCode(err, errcodes.TicketNotFound))
	rq.False(domain.HasCode(cause, errcodes.TicketAlreadySold))

	_, ok = domain.AsAppError(cause)
	rq.False(ok)
}

func TestAppErrorIsMatchesCode(t *testing.T) {
	rq := require.New(t)

	err := fmt.Errorf("grid.Place: %w", domain.Errorf(errcodes.OutOfBounds, "(%d,%d) is outside the grid", 11, -3))

	rq.EqualError(err, "grid.Place: (11,-3) is outside the grid")
	rq.ErrorIs(err, domain.NewError(errcodes.OutOfBounds, ""))
	rq.NotErrorIs(err, domain.NewError(errcodes.CellOccupied, ""))
}
