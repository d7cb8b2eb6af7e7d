package advanced

// QuickHull grows the hull outward from the two x-extreme points by
// repeatedly taking the point farthest from an existing edge. The textbook
// recursion is flattened into an explicit work list so that an adversarial
// input (every point on the hull) costs heap, not goroutine stack.

// A pending edge of the growing hull, along with the points known to lie
// strictly to its right. Only those points can push this part of the hull
// further out.
type edgeTask struct {
	edge       Segment
	candidates []Point
}

// QuickHull returns the convex hull of at least two points, as an ordered
// subset of the input that encloses every input point. A fully collinear set
// degenerates to its two extreme points.
func QuickHull(points []Point) []Point {
	if len(points) < 2 {
		fatalf(ErrEmptyHull, "convex hull needs at least 2 points, got %d", len(points))
	}

	min, max := xExtremes(points)
	hull := []Point{min, max}

	// Seed with both directions of the initial chord, so that "right of the
	// edge" consistently means "outside the hull".
	tasks := []edgeTask{
		newEdgeTask(Segment{Start: min, End: max}, points),
		newEdgeTask(Segment{Start: max, End: min}, points),
	}

	for len(tasks) > 0 {
		task := tasks[len(tasks)-1]
		tasks = tasks[:len(tasks)-1]
		if len(task.candidates) == 0 {
			continue
		}

		farthest := farthestFrom(task.edge, task.candidates)
		hull = insertAfter(hull, task.edge.Start, farthest)

		// Split the edge at the new vertex. Candidates between the two new
		// edges are now enclosed and fall out here, as do candidates sitting
		// exactly on a new edge's line.
		tasks = append(tasks,
			newEdgeTask(Segment{Start: task.edge.Start, End: farthest}, task.candidates),
			newEdgeTask(Segment{Start: farthest, End: task.edge.End}, task.candidates),
		)
	}
	return hull
}

func newEdgeTask(edge Segment, points []Point) edgeTask {
	var candidates []Point
	for _, p := range points {
		if edge.Side(p) == Right {
			candidates = append(candidates, p)
		}
	}
	return edgeTask{edge: edge, candidates: candidates}
}

// The x extremes are on the hull and make the initial chord. Ties are broken
// by y, so a fully vertical input still yields two distinct, deterministic
// seeds.
func xExtremes(points []Point) (min, max Point) {
	min, max = points[0], points[0]
	for _, p := range points[1:] {
		if p.X < min.X || (p.X == min.X && p.Y < min.Y) {
			min = p
		}
		if p.X > max.X || (p.X == max.X && p.Y > max.Y) {
			max = p
		}
	}
	return min, max
}

// First point at maximal perpendicular distance wins. Equally-far co-circular
// points are not lost: one that is a genuine hull vertex comes back later as
// strictly right of a sub-edge.
func farthestFrom(edge Segment, points []Point) Point {
	farthest := points[0]
	maxDistance := edge.PerpendicularDistance(points[0])
	for _, p := range points[1:] {
		if distance := edge.PerpendicularDistance(p); distance > maxDistance {
			maxDistance = distance
			farthest = p
		}
	}
	return farthest
}

// Insert p immediately after the first occurrence of the vertex after. Every
// task edge starts at a vertex already in the hull, and the hull only ever
// grows, so the scan cannot miss.
func insertAfter(hull []Point, after, p Point) []Point {
	for i, vertex := range hull {
		if vertex == after {
			hull = append(hull, Point{})
			copy(hull[i+2:], hull[i+1:])
			hull[i+1] = p
			return hull
		}
	}
	fatalf(ErrDegenerateGeometry, "hull sequence lost vertex %s", after)
	return nil
}
