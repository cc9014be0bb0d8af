package value

import (
	"fmt"
	"strconv"
	"strings"

	"event_finder/internal/domain"
	"event_finder/pkg/errcodes"
)

// Point is an integer grid coordinate.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// ManhattanDistance returns |x1-x2| + |y1-y2|.
func ManhattanDistance(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// ParsePoint accepts "(x,y)" or "x,y", spaces allowed around the numbers.
func ParsePoint(s string) (Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return Point{}, domain.Errorf(errcodes.InvalidCoordinates, "invalid coordinates %q", s)
	}

	x, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(parts[0]), "(")))
	if err != nil {
		return Point{}, domain.WrapError(err, errcodes.InvalidCoordinates, "invalid x coordinate")
	}

	y, err := strconv.Atoi(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(parts[1]), ")")))
	if err != nil {
		return Point{}, domain.WrapError(err, errcodes.InvalidCoordinates, "invalid y coordinate")
	}

	return Point{X: x, Y: y}, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
