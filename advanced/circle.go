package advanced

import (
	"math"

	"github.com/pkg/errors"
)

// DiameterCircle is the smallest circle through two points: centered between
// them, with the segment as its diameter.
func DiameterCircle(a, b Point) Circle {
	edge := Segment{Start: a, End: b}
	return Circle{Center: edge.Midpoint(), Radius: edge.Length() / 2}
}

// Circumcircle is the unique circle through three points, via the standard
// determinant form of the perpendicular bisector intersection. A collinear
// triple has no circumcircle (the determinant vanishes and the center runs off
// to infinity), so that comes back as ErrDegenerateGeometry instead of a
// circle full of Inf. The union scan treats the error as "keep the circle you
// were trying to beat".
func Circumcircle(a, b, c Point) (Circle, error) {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	if math.Abs(d) < Tolerance {
		return Circle{}, errors.Wrapf(ErrDegenerateGeometry, "collinear points %s, %s, %s have no circumcircle", a, b, c)
	}

	la := a.LengthSquared()
	lb := b.LengthSquared()
	lc := c.LengthSquared()
	center := Point{
		X: (la*(b.Y-c.Y) + lb*(c.Y-a.Y) + lc*(a.Y-b.Y)) / d,
		Y: (la*(c.X-b.X) + lb*(a.X-c.X) + lc*(b.X-a.X)) / d,
	}
	return Circle{Center: center, Radius: center.Distance(a)}, nil
}
