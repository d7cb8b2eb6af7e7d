package advanced

// CircumcircleUnion returns one circle per hull edge (the hull is treated
// cyclically), grown large enough to account for every point that could force
// a bigger circumcircle onto that edge during triangulation.
//
// Each edge starts at its own diameter circle. A point strictly inside the
// current circle is a threat: a Delaunay triangle built on this edge and that
// point would have a circumcircle reaching outside what we've accounted for.
// So for each such point the scan solves the true three-point circumcircle
// and keeps whichever circle is larger. Points on or outside the current
// boundary can only yield smaller circumcircles and are skipped, which is
// also what keeps the edge's own endpoints out of the scan. A collinear
// candidate has no circumcircle and keeps the circle it failed to beat.
func CircumcircleUnion(hull, points []Point) []Circle {
	circles := make([]Circle, len(hull))
	for i := range hull {
		edge := Segment{Start: hull[i], End: hull[CircularIndex(i+1, len(hull))]}
		circle := DiameterCircle(edge.Start, edge.End)
		for _, p := range points {
			if !circle.Contains(p) {
				continue
			}
			grown, err := Circumcircle(edge.Start, edge.End, p)
			if err != nil {
				continue
			}
			if grown.Radius > circle.Radius {
				circle = grown
			}
		}
		circles[i] = circle
	}
	return circles
}
