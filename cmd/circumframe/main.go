package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	. "github.com/osuushi/circumframe"
	"github.com/osuushi/circumframe/advanced"
	kingpin "gopkg.in/alecthomas/kingpin.v2"
)

// Demo of the scaling stage. Input on stdin should be newline separated
// points in the form "x y". The default run prints the frame on the first
// line, then the scaled points in the same "x y" form, so output can be piped
// onward. Nothing about the input is validated beyond parsing.

var (
	pngPath   = kingpin.Flag("png", "Render the hull, circle union and frame to a PNG at this path.").String()
	catFlag   = kingpin.Flag("cat", "Render and print the image inline (iTerm only).").Bool()
	drawScale = kingpin.Flag("scale", "Render scale, in pixels per input unit.").Default("40").Float64()
	expand    = kingpin.Flag("expand", "Map points back out of the working square instead of into it.").Bool()
	frameArg = kingpin.Flag("frame", "Frame as xmin,xmax,ymin,ymax. Required with --expand.").String()
)

func main() {
	kingpin.Parse()
	points := readPoints(os.Stdin)

	if *expand {
		frame, err := parseFrame(*frameArg)
		if err != nil {
			kingpin.Fatalf("bad --frame: %v", err)
		}
		expanded, err := Expand(points, frame)
		if err != nil {
			kingpin.Fatalf("expand: %v", err)
		}
		printPoints(expanded)
		return
	}

	scaled, frame, err := ScaleShiftPoints(points)
	if err != nil {
		kingpin.Fatalf("scale: %v", err)
	}
	fmt.Printf("frame %v %v %v %v\n", frame.Min.X, frame.Max.X, frame.Min.Y, frame.Max.Y)
	printPoints(scaled)

	if *pngPath != "" {
		if err := advanced.DrawPNG(*pngPath, points, *drawScale); err != nil {
			kingpin.Fatalf("draw: %v", err)
		}
	}
	if *catFlag {
		if err := advanced.DrawTerminal(points, *drawScale); err != nil {
			kingpin.Fatalf("draw: %v", err)
		}
	}
}

func readPoints(in *os.File) []Point {
	points := []Point{}
	// Scan lines
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		points = append(points, parsePoint(line))
	}
	return points
}

func parsePoint(line string) Point {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		kingpin.Fatalf("bad point line %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		kingpin.Fatalf("bad x in %q: %v", line, err)
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		kingpin.Fatalf("bad y in %q: %v", line, err)
	}
	return Point{X: x, Y: y}
}

func parseFrame(arg string) (Frame, error) {
	parts := strings.Split(arg, ",")
	if len(parts) != 4 {
		return Frame{}, fmt.Errorf("want 4 comma separated values, got %d", len(parts))
	}
	var values [4]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return Frame{}, err
		}
		values[i] = v
	}
	return Frame{
		Min: Point{X: values[0], Y: values[2]},
		Max: Point{X: values[1], Y: values[3]},
	}, nil
}

func printPoints(points []Point) {
	for _, p := range points {
		fmt.Printf("%v %v\n", p.X, p.Y)
	}
}
