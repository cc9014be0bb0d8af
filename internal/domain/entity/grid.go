package entity

import (
	"strconv"
	"strings"
	"sync"

	"event_finder/internal/domain"
	"event_finder/internal/domain/value"
	"event_finder/pkg/errcodes"
)

// Grid is a bounded 2D array of cells, each holding at most one event.
// Events never move once placed.
type Grid struct {
	bounds      value.Bounds
	legacyRange bool

	mu     sync.RWMutex
	cells  [][]*Event
	placed int
}

type GridOption func(*Grid)

// WithLegacyRange limits the nearest search to rings closer than
// max(xSpan, ySpan). Far corners of the grid are then never visited.
func WithLegacyRange() GridOption {
	return func(g *Grid) {
		g.legacyRange = true
	}
}

func NewGrid(bounds value.Bounds, opts ...GridOption) (*Grid, error) {
	if err := bounds.Validate(); err != nil {
		return nil, err
	}

	cells := make([][]*Event, bounds.XSpan()+1)
	for i := range cells {
		cells[i] = make([]*Event, bounds.YSpan()+1)
	}

	g := &Grid{
		bounds: bounds,
		cells:  cells,
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

func (g *Grid) Bounds() value.Bounds { return g.bounds }

func (g *Grid) ValidCoordinate(p value.Point) bool {
	return g.bounds.Contains(p)
}

// Len returns the number of placed events.
func (g *Grid) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.placed
}

// Place puts the event at p. It returns false if the cell is taken or the
// event already sits elsewhere on the grid.
func (g *Grid) Place(e *Event, p value.Point) (bool, error) {
	if !g.ValidCoordinate(p) {
		return false, g.outOfBounds(p)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.eventAt(p) != nil {
		return false, nil
	}

	if !e.setLocation(p) {
		return false, nil
	}

	g.cells[p.X-g.bounds.MinX][p.Y-g.bounds.MinY] = e
	g.placed++

	return true, nil
}

// EventAt returns the event at p, nil for an empty or out-of-bounds cell.
func (g *Grid) EventAt(p value.Point) *Event {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.eventAt(p)
}

func (g *Grid) eventAt(p value.Point) *Event {
	if !g.ValidCoordinate(p) {
		return nil
	}
	return g.cells[p.X-g.bounds.MinX][p.Y-g.bounds.MinY]
}

// Distance returns the Manhattan distance between two points of the grid.
func (g *Grid) Distance(a, b value.Point) (int, error) {
	if !g.ValidCoordinate(a) {
		return -1, g.outOfBounds(a)
	}
	if !g.ValidCoordinate(b) {
		return -1, g.outOfBounds(b)
	}
	return value.ManhattanDistance(a, b), nil
}

// NearestEvents returns up to limit events ordered by Manhattan distance from
// p. It walks rings of growing radius around p; within a ring cells are
// visited along the diamond edges:
//
//	(x-d+i, y-i) and (x+d-i, y+i) for i = 0..d,
//	(x+d-i, y-i) and (x-i, y+d-i) for i = 1..d-1.
func (g *Grid) NearestEvents(p value.Point, limit int) ([]*Event, error) {
	if !g.ValidCoordinate(p) {
		return nil, g.outOfBounds(p)
	}
	if limit <= 0 {
		return nil, nil
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	found := make([]*Event, 0, min(limit, g.placed))

	collect := func(x, y int) bool {
		if e := g.eventAt(value.Point{X: x, Y: y}); e != nil {
			found = append(found, e)
		}
		return len(found) >= limit
	}

	if collect(p.X, p.Y) {
		return found, nil
	}

	radius := g.searchRadius(p)
	for d := 1; d <= radius && len(found) < g.placed; d++ {
		for i := 0; i <= d; i++ {
			if collect(p.X-d+i, p.Y-i) || collect(p.X+d-i, p.Y+i) {
				return found, nil
			}
		}
		for i := 1; i < d; i++ {
			if collect(p.X+d-i, p.Y-i) || collect(p.X-i, p.Y+d-i) {
				return found, nil
			}
		}
	}

	return found, nil
}

func (g *Grid) searchRadius(p value.Point) int {
	if g.legacyRange {
		return max(g.bounds.XSpan(), g.bounds.YSpan()) - 1
	}

	radius := 0
	for _, corner := range g.bounds.Corners() {
		radius = max(radius, value.ManhattanDistance(p, corner))
	}
	return radius
}

// Render dumps the grid as tab separated text, top row first, so it can be
// pasted into a spreadsheet.
func (g *Grid) Render() string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var sb strings.Builder

	sb.WriteString("\t")
	for x := g.bounds.MinX; x <= g.bounds.MaxX; x++ {
		sb.WriteString(strconv.Itoa(x))
		sb.WriteString("\t")
	}

	for y := g.bounds.MaxY; y >= g.bounds.MinY; y-- {
		sb.WriteString("\n")
		sb.WriteString(strconv.Itoa(y))
		sb.WriteString("\t")

		for x := g.bounds.MinX; x <= g.bounds.MaxX; x++ {
			if e := g.eventAt(value.Point{X: x, Y: y}); e != nil {
				sb.WriteString(e.String())
			} else {
				sb.WriteString("None")
			}
			sb.WriteString("\t")
		}
	}

	return sb.String()
}

func (g *Grid) outOfBounds(p value.Point) error {
	return domain.Errorf(errcodes.OutOfBounds, "coordinates %s are outside the grid %s", p, g.bounds)
}
