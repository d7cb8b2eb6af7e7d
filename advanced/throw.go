package advanced

import "github.com/pkg/errors"

// Threading errors up through the hull work list and the union scans would
// add a ton of complexity to the code. Instead, deep code panics, and the
// public API recovers to convert to an error.

// The error kinds. fatalf call sites wrap one of these with context via
// errors.Wrapf, so callers can match the kind with errors.Is and still see
// what actually went wrong.
var (
	// The point set itself is unusable: fewer than two points, or no extent
	// left once the frame is computed (all points identical).
	ErrDegenerateInput = errors.New("degenerate input")

	// A derived construction collapsed: a collinear triple has no
	// circumcircle.
	ErrDegenerateGeometry = errors.New("degenerate geometry")

	// Hull construction was handed fewer than two points.
	ErrEmptyHull = errors.New("empty hull")
)

type GeometryError error

// Panic with a GeometryError of the given kind.
func fatalf(kind error, format string, args ...interface{}) {
	panic(errors.Wrapf(kind, format, args...))
}

func HandleGeometryPanicRecover(r interface{}) error {
	if r != nil {
		if geometryError, ok := r.(GeometryError); ok {
			return geometryError
		}
		panic(r)
	}
	return nil
}
