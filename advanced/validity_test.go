package advanced

// This contains no actual tests. It is just a set of helpers for asserting
// the geometric invariants the pipeline promises, so the per-stage tests and
// the fixture sweeps can share them.

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Run fn, converting a geometry panic back into its error. Mirrors what the
// public API does, so tests can assert on failures from the deep code.
func capturePanic(fn func()) (err error) {
	defer func() {
		recoveredErr := HandleGeometryPanicRecover(recover())
		if recoveredErr != nil {
			err = recoveredErr
		}
	}()
	fn()
	return nil
}

// Every input point must be inside or on the hull polygon. The hull winds
// counterclockwise (the work list keeps candidates on the right of each
// directed edge, which is the outside), so a point strictly right of any edge
// has escaped.
func AssertHullEncloses(t *testing.T, hull, points []Point) {
	for _, p := range points {
		for i := range hull {
			edge := Segment{Start: hull[i], End: hull[CircularIndex(i+1, len(hull))]}
			require.NotEqual(t, Right, edge.Side(p),
				"point %s is outside hull edge %s to %s", p, edge.Start, edge.End)
		}
	}
}

// Every hull vertex must be one of the input points. The hull is a selection,
// never a construction.
func AssertHullSubset(t *testing.T, hull, points []Point) {
	for _, vertex := range hull {
		require.Contains(t, points, vertex, "hull vertex %s is not an input point", vertex)
	}
}

// The union's per-edge guarantees: one circle per edge, never smaller than
// the edge's own diameter circle, and the edge endpoints still sit on the
// boundary of whatever circle the scan settled on.
func AssertUnionInvariants(t *testing.T, hull []Point, circles []Circle) {
	require.Equal(t, len(hull), len(circles), "one circle per hull edge")
	for i := range hull {
		edge := Segment{Start: hull[i], End: hull[CircularIndex(i+1, len(hull))]}
		circle := circles[i]
		require.GreaterOrEqual(t, circle.Radius+Tolerance, edge.Length()/2,
			"circle %s shrank below the diameter circle of its edge", circle)
		require.InDelta(t, circle.Radius, circle.Center.Distance(edge.Start), Tolerance,
			"edge start %s came off its circle %s", edge.Start, circle)
		require.InDelta(t, circle.Radius, circle.Center.Distance(edge.End), Tolerance,
			"edge end %s came off its circle %s", edge.End, circle)
	}
}

// Every input point must land within the frame. The frame bounds the union's
// circles, every hull vertex sits on one of them, and the frame is a convex
// box, so the whole input is covered. A point outside the frame would end up
// outside the working square after shrinking.
func AssertWithinFrame(t *testing.T, frame Frame, points []Point) {
	for _, p := range points {
		require.GreaterOrEqual(t, p.X+Tolerance, frame.Min.X, "point %s is left of frame %s", p, frame)
		require.LessOrEqual(t, p.X-Tolerance, frame.Max.X, "point %s is right of frame %s", p, frame)
		require.GreaterOrEqual(t, p.Y+Tolerance, frame.Min.Y, "point %s is below frame %s", p, frame)
		require.LessOrEqual(t, p.Y-Tolerance, frame.Max.Y, "point %s is above frame %s", p, frame)
	}
}

// Every scaled coordinate must land in [1.01, 1.99]: offset in from 1, at
// most the working side further out.
func AssertInWorkingSquare(t *testing.T, scaled []Point) {
	for _, p := range scaled {
		for _, coord := range []float64{p.X, p.Y} {
			require.GreaterOrEqual(t, coord+Tolerance, workingOffset, "coordinate of %s is under the working offset", p)
			require.LessOrEqual(t, coord-Tolerance, workingOffset+workingSide, "coordinate of %s is past the working side", p)
		}
	}
}
