package advanced

import (
	"embed"
	"log"
	"math"
	"strconv"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs point sets. It is not a full
// (or even correct) svg reader: it parses the SVG, finds every circle
// element, and takes the centers as the point cloud. If anything goes wrong,
// it bails out.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer fixture.Close()

	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	circles := rootEl.FindAll("circle")
	if len(circles) == 0 {
		log.Fatalf("No circles found in fixture %q", name)
	}

	points := make([]Point, 0, len(circles))
	for _, el := range circles {
		x, err := strconv.ParseFloat(el.Attributes["cx"], 64)
		if err != nil {
			log.Fatalf("Invalid cx value %q in fixture %q: %v", el.Attributes["cx"], name, err)
		}
		y, err := strconv.ParseFloat(el.Attributes["cy"], 64)
		if err != nil {
			log.Fatalf("Invalid cy value %q in fixture %q: %v", el.Attributes["cy"], name, err)
		}
		points = append(points, Point{X: x, Y: y})
	}
	return points
}

// Some ad hoc generated fixtures

// RingPoints is n points evenly spaced on a circle: the pathological hull
// case, since every point is a hull vertex.
func RingPoints(n int, radius float64) []Point {
	points := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points = append(points, Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return points
}

// GridPoints is an nx by ny lattice anchored at the origin: lots of collinear
// triples on the boundary, lots of interior points.
func GridPoints(nx, ny int, spacing float64) []Point {
	points := make([]Point, 0, nx*ny)
	for i := 0; i < nx; i++ {
		for j := 0; j < ny; j++ {
			points = append(points, Point{X: float64(i) * spacing, Y: float64(j) * spacing})
		}
	}
	return points
}

// ClusterPoints is a deterministic blob: k points spiraling out from the
// center to the given radius over three turns.
func ClusterPoints(k int, center Point, radius float64) []Point {
	points := make([]Point, 0, k)
	for i := 0; i < k; i++ {
		t := float64(i) / float64(k)
		angle := 3 * 2 * math.Pi * t
		r := radius * t
		points = append(points, Point{X: center.X + r*math.Cos(angle), Y: center.Y + r*math.Sin(angle)})
	}
	return points
}
