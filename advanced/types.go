package advanced

import (
	"fmt"
	"math"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/circumframe/dbg"
)

// All geometry here is value-typed. The expand transform has to reproduce the
// caller's coordinates by arithmetic alone, so equality means coordinate
// equality and nothing keys on pointer identity.

type Point struct {
	X float64
	Y float64
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Cross returns the 2D cross product (the z component of the 3D one). Its
// sign is the turn direction from p to q.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - p.Y*q.X
}

// LengthSquared is the squared distance from the origin. The circumcenter
// determinant wants these unsquare-rooted.
func (p Point) LengthSquared() float64 {
	return p.X*p.X + p.Y*p.Y
}

func (p Point) Distance(q Point) float64 {
	dx := q.X - p.X
	dy := q.Y - p.Y
	return math.Sqrt(dx*dx + dy*dy)
}

func (p Point) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

// A Segment is the directed edge from Start to End. Direction matters: the
// hull construction keeps its candidate points on a consistent side, and that
// side is defined relative to the direction of travel.
type Segment struct {
	Start Point
	End   Point
}

// Which side of a directed segment a point is on, looking from Start toward
// End.
type Side int

const (
	Left Side = iota
	Right
	Collinear
)

// Side classifies a point against the infinite line through the segment by
// the sign of the cross product (End−Start) × (p−Start). Points within
// Tolerance of the line count as Collinear, so a point sitting on a hull edge
// up to float noise is never mistaken for an outside point.
func (s Segment) Side(p Point) Side {
	cross := s.End.Sub(s.Start).Cross(p.Sub(s.Start))
	switch {
	case cross > Tolerance:
		return Left
	case cross < -Tolerance:
		return Right
	}
	return Collinear
}

func (s Segment) Length() float64 {
	return s.Start.Distance(s.End)
}

func (s Segment) Midpoint() Point {
	return Point{X: (s.Start.X + s.End.X) / 2, Y: (s.Start.Y + s.End.Y) / 2}
}

// PerpendicularDistance is the distance from p to the infinite line through
// the segment. The cross product gives the area of the parallelogram spanned
// by the segment and Start→p; dividing by the base length leaves the height.
func (s Segment) PerpendicularDistance(p Point) float64 {
	return math.Abs(s.End.Sub(s.Start).Cross(p.Sub(s.Start))) / s.Length()
}

// A Circle is a center and a radius. Radius zero is legal (a degenerate
// two-point edge produces one) and contains nothing.
type Circle struct {
	Center Point
	Radius float64
}

// Contains reports whether p is strictly inside the circle. Boundary points
// are not contained; the union scan leans on this to skip each edge's own
// endpoints, which always sit exactly on the circle.
func (c Circle) Contains(p Point) bool {
	return c.Center.Distance(p) < c.Radius
}

func (c Circle) String() string {
	return fmt.Sprintf("Circle %s <C: %s, R: %v>", c.DbgName(), c.Center, c.Radius)
}

func (c Circle) DbgName() string {
	// Color the name by state: non-finite circles are the loudest problem,
	// zero-size circles mean a degenerate edge
	name := dbg.Name(c)
	if math.IsInf(c.Radius, 0) || math.IsNaN(c.Radius) {
		name = aurora.Cyan(name).String()
	} else if Equal(c.Radius, 0) {
		name = aurora.Red(name).String()
	} else {
		name = aurora.Green(name).String()
	}
	return name
}
