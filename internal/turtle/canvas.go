package turtle

import (
	"fmt"
	"image/color"
)

// Point is a position on the canvas in screen pixels.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Canvas is the drawing surface a turtle renders to. Turtles and lines never
// own it; the host does.
type Canvas interface {
	Width() int
	Height() int
	// Color builds a colour from 0-255 channels in the canvas's colour space.
	Color(r, g, b uint8) color.Color
	DrawLine(from, to Point, c color.Color)
	// Random returns a uniform number in [min, max).
	Random(min, max float64) float64
}

// FrameHost calls registered functions once per rendered frame.
type FrameHost interface {
	RegisterDraw(fn func())
}

// DrawStrategy receives every pen-down segment a turtle commits.
type DrawStrategy interface {
	Stroke(from, to Point, c color.Color)
}

// immediateDraw strokes straight onto the canvas.
type immediateDraw struct {
	canvas Canvas
}

func (d immediateDraw) Stroke(from, to Point, c color.Color) {
	d.canvas.DrawLine(from, to, c)
}
