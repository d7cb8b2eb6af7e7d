// A scaling stage that makes Delaunay triangulation safe.
//
// This package rescales a 2D point set into the fixed working square a
// triangulator runs in, such that every circumcircle the eventual
// triangulation can produce stays strictly inside the square. Triangulators
// built on a bounding super-triangle or frame need that guarantee: one
// circumcircle crossing the frame boundary and the tessellation goes
// non-convex or invalid.
//
// ScaleShiftPoints goes in before triangulation; Expand brings the results
// (including any points the triangulator added) back out. See the readme for
// more details.
package circumframe

import "github.com/osuushi/circumframe/advanced"

type Point = advanced.Point
type Frame = advanced.Frame

// The error kinds this package fails with. Returned errors wrap one of
// these, so the kind can be matched with errors.Is.
var (
	ErrDegenerateInput    = advanced.ErrDegenerateInput
	ErrDegenerateGeometry = advanced.ErrDegenerateGeometry
	ErrEmptyHull          = advanced.ErrEmptyHull
)

// Map a point set into the triangulator's working square.
//
// The input must contain at least two distinct points. The scaled points come
// back in the input's length and order, along with the frame that
// parameterizes the transform. Keep the frame: Expand needs it, unchanged, to
// map results back to the original coordinate system.
func ScaleShiftPoints(points []Point) (scaled []Point, frame Frame, err error) {
	defer func() {
		recoveredErr := advanced.HandleGeometryPanicRecover(recover())
		if recoveredErr != nil {
			scaled = nil
			frame = Frame{}
			err = recoveredErr
		}
	}()
	scaled, frame = advanced.ScaleShiftPoints(points)
	return scaled, frame, nil
}

// Map points in the working square back to original coordinates, using the
// frame a prior ScaleShiftPoints call returned. The points may include ones
// the triangulator added (Steiner points), as long as they live in the same
// working square.
func Expand(points []Point, frame Frame) (expanded []Point, err error) {
	defer func() {
		recoveredErr := advanced.HandleGeometryPanicRecover(recover())
		if recoveredErr != nil {
			expanded = nil
			err = recoveredErr
		}
	}()
	return advanced.Expand(points, frame), nil
}
