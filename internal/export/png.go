package export

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"log"

	"TurtleBoard/internal/turtle"

	"github.com/fogleman/gg"
)

// PNGCanvas rasterises turtle drawings off screen.
type PNGCanvas struct {
	surface
	dc        *gg.Context
	lineWidth float64
}

func NewPNGCanvas(width, height int, seed int64) *PNGCanvas {
	c := &PNGCanvas{
		surface:   newSurface(width, height, seed),
		dc:        gg.NewContext(width, height),
		lineWidth: 1,
	}
	c.clear()
	return c
}

func (c *PNGCanvas) DrawLine(from, to turtle.Point, col color.Color) {
	c.record(turtle.Line{From: from, To: to, Color: col})
	c.stroke(from, to, col)
}

// RunFrames renders n frames. Each frame repaints the background and the
// lines drawn outside frames before calling the frame callbacks.
func (c *PNGCanvas) RunFrames(n int) {
	for i := 0; i < n; i++ {
		c.clear()
		for _, l := range c.static {
			c.stroke(l.From, l.To, l.Color)
		}
		c.runFrame()
	}
}

func (c *PNGCanvas) Image() image.Image {
	return c.dc.Image()
}

func (c *PNGCanvas) Encode(w io.Writer) error {
	return c.dc.EncodePNG(w)
}

func (c *PNGCanvas) Save(path string) error {
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save png %s: %w", path, err)
	}
	log.Printf("[EXPORT] Wrote %d lines to %s", len(c.Lines()), path)
	return nil
}

func (c *PNGCanvas) clear() {
	c.dc.SetColor(c.background)
	c.dc.Clear()
}

func (c *PNGCanvas) stroke(from, to turtle.Point, col color.Color) {
	c.dc.SetColor(col)
	c.dc.SetLineWidth(c.lineWidth)
	c.dc.DrawLine(float64(from.X), float64(from.Y), float64(to.X), float64(to.Y))
	c.dc.Stroke()
}
