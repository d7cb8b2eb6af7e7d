package advanced

import "math"

// The triangulator works inside the unit square at [1, 2). Scaled points fill
// 98% of it and sit 1.01 in from the origin, which leaves margin on every
// side for the circumcircles the frame accounts for.
const (
	workingSide   = 0.98
	workingOffset = 1.01
)

// Shrink maps points into the working square: a uniform scale by
// workingSide/frame.Span(), then a shift placing the frame's minimum corner
// at (workingOffset, workingOffset).
func Shrink(points []Point, frame Frame) []Point {
	scale := workingSide / checkedSpan(frame)
	scaled := make([]Point, len(points))
	for i, p := range points {
		scaled[i] = Point{
			X: (p.X-frame.Min.X)*scale + workingOffset,
			Y: (p.Y-frame.Min.Y)*scale + workingOffset,
		}
	}
	return scaled
}

// Expand is the exact inverse of Shrink for the same frame. Its scale factor
// is the reciprocal by construction, so a round trip loses only float
// rounding. It works on any points in the working square, including ones the
// triangulator added.
func Expand(points []Point, frame Frame) []Point {
	scale := checkedSpan(frame) / workingSide
	expanded := make([]Point, len(points))
	for i, p := range points {
		expanded[i] = Point{
			X: (p.X-workingOffset)*scale + frame.Min.X,
			Y: (p.Y-workingOffset)*scale + frame.Min.Y,
		}
	}
	return expanded
}

// A frame without positive extent has no finite scale factor. That's either
// degenerate input (every point identical) or a frame the caller never got
// from ScaleShiftPoints. Catch it here rather than let a NaN or Inf leak into
// every coordinate.
func checkedSpan(frame Frame) float64 {
	span := frame.Span()
	if math.IsNaN(span) || span <= 0 {
		fatalf(ErrDegenerateInput, "cannot scale within zero-extent frame %s", frame)
	}
	return span
}
