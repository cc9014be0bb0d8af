package value

import (
	"fmt"

	"event_finder/internal/domain"
	"event_finder/pkg/errcodes"
)

// Bounds is an inclusive rectangle of grid coordinates.
type Bounds struct {
	MinX int `json:"minX"`
	MaxX int `json:"maxX"`
	MinY int `json:"minY"`
	MaxY int `json:"maxY"`
}

func (b Bounds) Validate() error {
	if b.MinX > b.MaxX {
		return domain.Errorf(errcodes.InvalidBounds, "minX %d is greater than maxX %d", b.MinX, b.MaxX)
	}
	if b.MinY > b.MaxY {
		return domain.Errorf(errcodes.InvalidBounds, "minY %d is greater than maxY %d", b.MinY, b.MaxY)
	}
	return nil
}

func (b Bounds) Contains(p Point) bool {
	return p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}

func (b Bounds) XSpan() int { return b.MaxX - b.MinX }

func (b Bounds) YSpan() int { return b.MaxY - b.MinY }

// Cells returns the number of coordinates inside the bounds.
func (b Bounds) Cells() int {
	return (b.XSpan() + 1) * (b.YSpan() + 1)
}

// Corners returns the four corner points, starting bottom-left, counter-clockwise.
func (b Bounds) Corners() [4]Point {
	return [4]Point{
		{X: b.MinX, Y: b.MinY},
		{X: b.MaxX, Y: b.MinY},
		{X: b.MaxX, Y: b.MaxY},
		{X: b.MinX, Y: b.MaxY},
	}
}

func (b Bounds) String() string {
	return fmt.Sprintf("x[%d..%d] y[%d..%d]", b.MinX, b.MaxX, b.MinY, b.MaxY)
}
