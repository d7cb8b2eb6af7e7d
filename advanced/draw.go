package advanced

import (
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/circumframe/dbg"
)

// Debug rendering. DrawPNG reruns the pipeline on a point set and draws every
// stage on one canvas: the input points, the hull polygon, the circumcircle
// union (each circle with its readable name), and the frame. The demo binary
// exposes this; it's also handy straight from a test while chasing a bad
// frame.

const dbgDrawPadding = 40

func DrawPNG(path string, points []Point, scale float64) (err error) {
	defer func() {
		recoveredErr := HandleGeometryPanicRecover(recover())
		if recoveredErr != nil {
			err = recoveredErr
		}
	}()

	hull := QuickHull(points)
	circles := CircumcircleUnion(hull, points)
	frame := FrameRanges(circles)

	// Set up the context
	width := int(scale*frame.Width()) + dbgDrawPadding*2
	height := int(scale*frame.Height()) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to the frame's min corner
	c.Translate(-frame.Min.X, -frame.Min.Y)

	// The frame
	c.SetLineWidth(1)
	c.SetRGB(1, 1, 0)
	c.DrawRectangle(frame.Min.X, frame.Min.Y, frame.Width(), frame.Height())
	c.Stroke()

	// The union, named so a circle in the image can be matched to log output
	c.SetLineWidth(2)
	for _, circle := range circles {
		c.SetRGBA(0, 1, 1, 0.8)
		c.DrawCircle(circle.Center.X, circle.Center.Y, circle.Radius)
		c.Stroke()
		drawLabel(c, dbg.Name(circle), circle.Center)
	}

	// The hull
	c.SetRGB(0, 1, 0)
	c.MoveTo(hull[0].X, hull[0].Y)
	for _, p := range hull[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
	c.Stroke()

	// Input points on top of everything
	c.SetRGB(1, 1, 1)
	for _, p := range points {
		c.DrawPoint(p.X, p.Y, 3)
		c.Fill()
	}

	return c.SavePNG(path)
}

// DrawTerminal renders to a temp file and prints it inline (iTerm only).
func DrawTerminal(points []Point, scale float64) error {
	if err := DrawPNG("/tmp/circumframe.png", points, scale); err != nil {
		return err
	}
	imgcat.CatFile("/tmp/circumframe.png", os.Stdout)
	return nil
}

// Text has to be drawn back at identity, or the flipped scale mangles it. Get
// the anchor in native coordinates first, then pop the transform.
func drawLabel(c *gg.Context, label string, at Point) {
	x, y := c.TransformPoint(at.X, at.Y)
	c.Push()
	c.Identity()
	c.SetRGB(1, 1, 1)
	c.DrawStringAnchored(label, x, y, 0.5, 0.5)
	c.Pop()
}
