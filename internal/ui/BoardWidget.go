package ui

import (
	"image/color"
	"log"
	"math/rand"
	"sync"
	"time"

	"TurtleBoard/internal/turtle"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// BoardWidget is a fyne widget turtles draw on. Lines drawn outside a frame
// stay for good; lines drawn by frame callbacks last one frame.
type BoardWidget struct {
	widget.BaseWidget
	width, height int
	background    color.Color
	strokeWidth   float32
	rng           *rand.Rand

	mu         sync.RWMutex
	static     []turtle.Line
	frameLines []turtle.Line
	inFrame    bool
	frames     []func()

	statusBar *widget.Label
	OnClear   func()
	OnExport  func()
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ turtle.Canvas = (*BoardWidget)(nil)
var _ turtle.FrameHost = (*BoardWidget)(nil)

func NewBoardWidget(width, height int, seed int64) *BoardWidget {
	b := &BoardWidget{
		width:       width,
		height:      height,
		background:  color.Black,
		strokeWidth: 1.5,
		rng:         rand.New(rand.NewSource(seed)),
		statusBar:   widget.NewLabel("Ready"),
	}
	b.ExtendBaseWidget(b)
	return b
}

func (b *BoardWidget) Width() int  { return b.width }
func (b *BoardWidget) Height() int { return b.height }

func (b *BoardWidget) Color(r, g, bl uint8) color.Color {
	return color.NRGBA{R: r, G: g, B: bl, A: 255}
}

func (b *BoardWidget) Random(min, max float64) float64 {
	return min + b.rng.Float64()*(max-min)
}

func (b *BoardWidget) DrawLine(from, to turtle.Point, c color.Color) {
	l := turtle.Line{From: from, To: to, Color: c}
	b.mu.Lock()
	if b.inFrame {
		b.frameLines = append(b.frameLines, l)
	} else {
		b.static = append(b.static, l)
	}
	b.mu.Unlock()
}

func (b *BoardWidget) RegisterDraw(fn func()) {
	b.mu.Lock()
	b.frames = append(b.frames, fn)
	b.mu.Unlock()
}

// RunFrame calls every frame callback once and repaints. It must run on the
// fyne main goroutine.
func (b *BoardWidget) RunFrame() {
	b.mu.Lock()
	b.frameLines = b.frameLines[:0]
	b.inFrame = true
	frames := append([]func(){}, b.frames...)
	b.mu.Unlock()

	for _, fn := range frames {
		fn()
	}

	b.mu.Lock()
	b.inFrame = false
	b.mu.Unlock()
	b.Refresh()
}

// StartFrames runs RunFrame every interval until stop is closed.
func (b *BoardWidget) StartFrames(interval time.Duration, stop <-chan struct{}) {
	log.Printf("[FRAME] Rendering every %s", interval)
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				fyne.Do(b.RunFrame)
			}
		}
	}()
}

// Lines returns every visible line, persistent ones first.
func (b *BoardWidget) Lines() []turtle.Line {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]turtle.Line, 0, len(b.static)+len(b.frameLines))
	out = append(out, b.static...)
	return append(out, b.frameLines...)
}

// ClearStatic drops the persistent lines.
func (b *BoardWidget) ClearStatic() {
	b.mu.Lock()
	b.static = nil
	b.mu.Unlock()
	b.Refresh()
}

func (b *BoardWidget) SetStatus(text string) {
	fyne.Do(func() {
		b.statusBar.SetText(text)
	})
}

// ClearPaths is called by a local UI button click
func (b *BoardWidget) ClearPaths() {
	if b.OnClear != nil {
		b.OnClear()
	}
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: b}
	r.background = canvas.NewRectangle(b.background)
	return r
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	lines := r.board.Lines()
	objects := make([]fyne.CanvasObject, 0, len(lines)+1)
	objects = append(objects, r.background)

	for _, l := range lines {
		segment := canvas.NewLine(l.Color)
		segment.StrokeWidth = r.board.strokeWidth
		segment.Position1 = fyne.NewPos(float32(l.From.X), float32(l.From.Y))
		segment.Position2 = fyne.NewPos(float32(l.To.X), float32(l.To.Y))
		objects = append(objects, segment)
	}
	return objects
}

func (r *boardWidgetRenderer) Refresh() {
	canvas.Refresh(r.board)
}

func (r *boardWidgetRenderer) Destroy() {}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(float32(r.board.width), float32(r.board.height))
}
