package advanced

// ScaleShiftPoints prepares a point set for triangulation: convex hull, then
// the per-edge circumcircle union, then the frame around the union, then the
// shrink into the working square. The returned frame is the caller's ticket
// back out; Expand with the same frame restores original coordinates, for
// these points and for any the triangulator adds in the meantime.
//
// The scaled points keep the length and order of the input.
func ScaleShiftPoints(points []Point) ([]Point, Frame) {
	if len(points) < 2 {
		fatalf(ErrDegenerateInput, "scaling needs at least 2 points, got %d", len(points))
	}

	hull := QuickHull(points)
	circles := CircumcircleUnion(hull, points)
	frame := FrameRanges(circles)
	return Shrink(points, frame), frame
}
