package export

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"TurtleBoard/internal/state"
	"TurtleBoard/internal/turtle"

	"github.com/jung-kurt/gofpdf"
)

const (
	pageMargin = 10.0 // mm
	edgePad    = 2.0  // canvas px
)

// PDFCanvas collects turtle lines and writes them as vector strokes on a
// single A4 page, scaled to fit.
type PDFCanvas struct {
	surface
	lineWidth float64
}

func NewPDFCanvas(width, height int, seed int64) *PDFCanvas {
	return &PDFCanvas{
		surface:   newSurface(width, height, seed),
		lineWidth: 0.3,
	}
}

func (c *PDFCanvas) DrawLine(from, to turtle.Point, col color.Color) {
	c.record(turtle.Line{From: from, To: to, Color: col})
}

// RunFrames calls the frame callbacks n times; the last frame is what Save writes.
func (c *PDFCanvas) RunFrames(n int) {
	for i := 0; i < n; i++ {
		c.runFrame()
	}
}

func (c *PDFCanvas) Save(path string) error {
	p := c.build()
	if err := p.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("save pdf %s: %w", path, err)
	}
	log.Printf("[EXPORT] Wrote %d lines to %s", len(c.Lines()), path)
	return nil
}

func (c *PDFCanvas) Encode(w io.Writer) error {
	return c.build().Output(w)
}

// build lays the canvas out on the page. The canvas rectangle is always in
// view; lines that wander off it grow the view.
func (c *PDFCanvas) build() *gofpdf.Fpdf {
	orientation := "L"
	if c.height > c.width {
		orientation = "P"
	}
	p := gofpdf.New(orientation, "mm", "A4", "")
	p.AddPage()

	lines := c.Lines()
	view := c.view(lines)

	pw, ph := p.GetPageSize()
	scale := view.FitScale(pw-2*pageMargin, ph-2*pageMargin)

	bg := toRGB(c.background)
	p.SetFillColor(bg[0], bg[1], bg[2])
	p.Rect(pageMargin, pageMargin, view.Width*scale, view.Height*scale, "F")

	p.SetLineWidth(c.lineWidth)
	p.SetLineCapStyle("round")
	for _, l := range lines {
		rgb := toRGB(l.Color)
		p.SetDrawColor(rgb[0], rgb[1], rgb[2])
		p.Line(
			pageMargin+(float64(l.From.X)-view.X)*scale, pageMargin+(float64(l.From.Y)-view.Y)*scale,
			pageMargin+(float64(l.To.X)-view.X)*scale, pageMargin+(float64(l.To.Y)-view.Y)*scale,
		)
	}
	return p
}

// view is the canvas rectangle grown to cover lines, plus edgePad so lines
// off the canvas keep their caps on the page.
func (c *PDFCanvas) view(lines []turtle.Line) state.Area {
	view := state.Area{Width: float64(c.width), Height: float64(c.height)}
	if bounds, ok := state.BoundsOf(lines); ok {
		view = view.Union(bounds.Pad(edgePad))
	}
	return view
}

func toRGB(c color.Color) [3]int {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return [3]int{int(n.R), int(n.G), int(n.B)}
}
