package entity_test

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"event_finder/internal/domain"
	"event_finder/internal/domain/entity"
	"event_finder/internal/domain/value"
	"event_finder/pkg/errcodes"
	"event_finder/pkg/tests"
)

func pt(x, y int) value.Point {
	return value.Point{X: x, Y: y}
}

func newGrid(t *testing.T, bounds value.Bounds, opts ...entity.GridOption) *entity.Grid {
	t.Helper()

	grid, err := entity.NewGrid(bounds, opts...)
	require.NoError(t, err)

	return grid
}

func place(t *testing.T, grid *entity.Grid, id int64, p value.Point) *entity.Event {
	t.Helper()

	event := entity.NewEvent(id)
	ok, err := grid.Place(event, p)
	require.NoError(t, err)
	require.True(t, ok)

	return event
}

var smallBounds = value.Bounds{MinX: -1, MaxX: 1, MinY: -1, MaxY: 1} //nolint:gochecknoglobals

func TestNewGridInvalidBounds(t *testing.T) {
	rq := require.New(t)

	_, err := entity.NewGrid(value.Bounds{MinX: 2, MaxX: 1, MinY: 0, MaxY: 0})
	rq.True(domain.HasCode(err, errcodes.InvalidBounds))

	grid, err := entity.NewGrid(value.Bounds{MinX: 4, MaxX: 4, MinY: 4, MaxY: 4})
	rq.NoError(err)
	rq.True(grid.ValidCoordinate(pt(4, 4)))
}

func TestGridPlace(t *testing.T) {
	rq := require.New(t)

	grid := newGrid(t, smallBounds)

	first := place(t, grid, 1, pt(0, 0))
	location, ok := first.Location()
	rq.True(ok)
	rq.Equal(pt(0, 0), location)
	rq.Same(first, grid.EventAt(pt(0, 0)))

	// Occupied cell.
	second := entity.NewEvent(2)
	ok, err := grid.Place(second, pt(0, 0))
	rq.NoError(err)
	rq.False(ok)
	rq.Same(first, grid.EventAt(pt(0, 0)))
	_, placed := second.Location()
	rq.False(placed)

	// Already placed events never move.
	ok, err = grid.Place(first, pt(1, 1))
	rq.NoError(err)
	rq.False(ok)
	rq.Nil(grid.EventAt(pt(1, 1)))

	// Out of bounds.
	ok, err = grid.Place(second, pt(2, 0))
	rq.False(ok)
	rq.True(domain.HasCode(err, errcodes.OutOfBounds))

	rq.Nil(grid.EventAt(pt(5, 5)))
	rq.Equal(1, grid.Len())
}

func TestGridPlaceConcurrent(t *testing.T) {
	rq := require.New(t)

	grid := newGrid(t, smallBounds)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		winners []*entity.Event
	)

	for i := range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()

			event := entity.NewEvent(int64(i))
			ok, err := grid.Place(event, pt(1, -1))
			if err == nil && ok {
				mu.Lock()
				winners = append(winners, event)
				mu.Unlock()
			}
		}()
	}

	wg.Wait()

	rq.Len(winners, 1)
	rq.Same(winners[0], grid.EventAt(pt(1, -1)))
}

func TestGridDistance(t *testing.T) {
	rq := require.New(t)

	grid := newGrid(t, smallBounds)

	d, err := grid.Distance(pt(-1, -1), pt(1, 1))
	rq.NoError(err)
	rq.Equal(4, d)

	d, err = grid.Distance(pt(0, 0), pt(2, 0))
	rq.Equal(-1, d)
	rq.True(domain.HasCode(err, errcodes.OutOfBounds))
}

func TestGridNearestEventsSingle(t *testing.T) {
	rq := require.New(t)

	grid := newGrid(t, smallBounds)
	event := place(t, grid, 1, pt(0, 0))

	ticket, err := entity.NewTicket(1, event.ID(), price("10.00"))
	rq.NoError(err)
	rq.NoError(event.AddTicket(ticket))

	found, err := grid.NearestEvents(pt(0, 0), 1)
	rq.NoError(err)
	rq.Equal([]*entity.Event{event}, found)

	location, _ := found[0].Location()
	d, err := grid.Distance(pt(0, 0), location)
	rq.NoError(err)
	rq.Equal(0, d)
	rq.Equal("$10.00", value.FormatPrice(event.CheapestTicket().Price()))

	_, err = event.SellTicket(ticket.ID())
	rq.NoError(err)
	rq.Nil(event.CheapestTicket())
}

func TestGridNearestEventsRingOrder(t *testing.T) {
	rq := require.New(t)

	grid := newGrid(t, smallBounds)
	// Placed in reverse of the expected visiting order.
	upperRight := place(t, grid, 1, pt(1, 1))
	lowerLeft := place(t, grid, 2, pt(-1, -1))

	found, err := grid.NearestEvents(pt(0, 0), 2)
	rq.NoError(err)
	rq.Equal([]*entity.Event{lowerLeft, upperRight}, found)

	// The legacy bound stops before distance 2 on a 3x3 grid.
	legacy := newGrid(t, smallBounds, entity.WithLegacyRange())
	place(t, legacy, 1, pt(1, 1))
	place(t, legacy, 2, pt(-1, -1))

	found, err = legacy.NearestEvents(pt(0, 0), 2)
	rq.NoError(err)
	rq.Empty(found)
}

func TestGridNearestEventsDiamondTraversal(t *testing.T) {
	rq := require.New(t)

	grid := newGrid(t, value.Bounds{MinX: -3, MaxX: 3, MinY: -3, MaxY: 3})

	// Every cell at distance 2 from the origin, in the traversal order.
	ring := []value.Point{
		pt(-2, 0), pt(2, 0),
		pt(-1, -1), pt(1, 1),
		pt(0, -2), pt(0, 2),
		pt(1, -1), pt(-1, 1),
	}

	// Fill in reverse to prove order does not depend on placement order.
	byPoint := make(map[value.Point]*entity.Event, len(ring))
	for i := len(ring) - 1; i >= 0; i-- {
		byPoint[ring[i]] = place(t, grid, int64(i), ring[i])
	}

	found, err := grid.NearestEvents(pt(0, 0), len(ring))
	rq.NoError(err)
	rq.Len(found, len(ring))

	for i, p := range ring {
		rq.Same(byPoint[p], found[i], "position %d", i)
	}

	found, err = grid.NearestEvents(pt(0, 0), 3)
	rq.NoError(err)
	rq.Equal([]*entity.Event{byPoint[pt(-2, 0)], byPoint[pt(2, 0)], byPoint[pt(-1, -1)]}, found)
}

func TestGridNearestEventsCorners(t *testing.T) {
	rq := require.New(t)

	bounds := value.Bounds{MinX: 0, MaxX: 6, MinY: 0, MaxY: 2}
	farCorner := pt(6, 2)

	grid := newGrid(t, bounds)
	event := place(t, grid, 1, farCorner)

	found, err := grid.NearestEvents(pt(0, 0), 5)
	rq.NoError(err)
	rq.Equal([]*entity.Event{event}, found)

	// Distance 8 is beyond max(xSpan, ySpan) = 6.
	legacy := newGrid(t, bounds, entity.WithLegacyRange())
	place(t, legacy, 1, farCorner)

	found, err = legacy.NearestEvents(pt(0, 0), 5)
	rq.NoError(err)
	rq.Empty(found)
}

func TestGridNearestEventsArguments(t *testing.T) {
	rq := require.New(t)

	grid := newGrid(t, smallBounds)
	place(t, grid, 1, pt(0, 0))

	_, err := grid.NearestEvents(pt(3, 0), 1)
	rq.True(domain.HasCode(err, errcodes.OutOfBounds))

	found, err := grid.NearestEvents(pt(0, 0), 0)
	rq.NoError(err)
	rq.Empty(found)

	found, err = grid.NearestEvents(pt(1, 1), 10)
	rq.NoError(err)
	rq.Len(found, 1)
}

func TestGridNearestEventsRandomized(t *testing.T) {
	rq := require.New(t)
	random := tests.NewRandomizer(t)

	bounds := value.Bounds{MinX: -6, MaxX: 4, MinY: -2, MaxY: 9}
	grid := newGrid(t, bounds)

	var placed []*entity.Event
	for id := int64(0); len(placed) < 40; id++ {
		event := entity.NewEvent(id)
		p := pt(random.IntBetween(bounds.MinX, bounds.MaxX), random.IntBetween(bounds.MinY, bounds.MaxY))
		ok, err := grid.Place(event, p)
		rq.NoError(err)
		if ok {
			placed = append(placed, event)
		}
	}

	for range 50 {
		query := pt(random.IntBetween(bounds.MinX, bounds.MaxX), random.IntBetween(bounds.MinY, bounds.MaxY))
		limit := random.IntBetween(1, 50)

		found, err := grid.NearestEvents(query, limit)
		rq.NoError(err)
		rq.Len(found, min(limit, len(placed)))

		seen := make(map[int64]bool, len(found))
		previous := 0
		for _, event := range found {
			rq.False(seen[event.ID()])
			seen[event.ID()] = true

			location, ok := event.Location()
			rq.True(ok)

			d := value.ManhattanDistance(query, location)
			rq.GreaterOrEqual(d, previous)
			previous = d
		}
	}
}

func TestGridRender(t *testing.T) {
	rq := require.New(t)

	grid := newGrid(t, value.Bounds{MinX: -1, MaxX: 0, MinY: 0, MaxY: 1})
	place(t, grid, 3, pt(0, 1))

	expected := strings.Join([]string{
		"\t-1\t0\t",
		"1\tNone\tEvent 003\t",
		"0\tNone\tNone\t",
	}, "\n")

	rq.Equal(expected, grid.Render())
}
