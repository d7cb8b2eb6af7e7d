package advanced

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// A Frame is the axis-aligned box around the circumcircle union. It is the
// one piece of state a caller must hold on to between shrinking points down
// and expanding results back out; everything else is recomputable.
type Frame struct {
	Min Point
	Max Point
}

func (f Frame) Width() float64 {
	return f.Max.X - f.Min.X
}

func (f Frame) Height() float64 {
	return f.Max.Y - f.Min.Y
}

// Span is the side of the square region the scale transforms work over: the
// larger of width and height, so both axes share one scale factor and
// proportions survive.
func (f Frame) Span() float64 {
	return math.Max(f.Width(), f.Height())
}

func (f Frame) String() string {
	return fmt.Sprintf("Frame <X: [%v, %v], Y: [%v, %v]>", f.Min.X, f.Max.X, f.Min.Y, f.Max.Y)
}

// FrameRanges reduces a set of circles to the tightest frame containing all
// of them. The bounds are exact extents, not padded: the safety margin comes
// from Shrink's constants, not from here.
func FrameRanges(circles []Circle) Frame {
	if len(circles) == 0 {
		fatalf(ErrDegenerateInput, "cannot frame an empty set of circles")
	}

	xmin := make([]float64, len(circles))
	xmax := make([]float64, len(circles))
	ymin := make([]float64, len(circles))
	ymax := make([]float64, len(circles))
	for i, c := range circles {
		xmin[i] = c.Center.X - c.Radius
		xmax[i] = c.Center.X + c.Radius
		ymin[i] = c.Center.Y - c.Radius
		ymax[i] = c.Center.Y + c.Radius
	}
	return Frame{
		Min: Point{X: floats.Min(xmin), Y: floats.Min(ymin)},
		Max: Point{X: floats.Max(xmax), Y: floats.Max(ymax)},
	}
}
