package game

import (
	"errors"
	"image/color"
	"math/rand"
	"sync"

	"TurtleBoard/internal/turtle"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// ErrClosed is returned from Update once Close was called, ending the run loop.
var ErrClosed = errors.New("game closed")

// Game is an ebiten window turtles draw on. Lines drawn outside a frame are
// painted into a persistent layer; frame callbacks draw straight onto the
// screen each Draw.
type Game struct {
	width, height int
	background    color.Color
	strokeWidth   float32
	rng           *rand.Rand

	mu      sync.Mutex
	pending []turtle.Line // persistent lines not yet painted into layer
	layer   *ebiten.Image
	screen  *ebiten.Image // set only while Draw runs
	frames  []func()
	closed  bool
}

var _ ebiten.Game = (*Game)(nil)
var _ turtle.Canvas = (*Game)(nil)
var _ turtle.FrameHost = (*Game)(nil)

func New(width, height int, seed int64) *Game {
	return &Game{
		width:       width,
		height:      height,
		background:  color.Black,
		strokeWidth: 1,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

func (g *Game) Width() int  { return g.width }
func (g *Game) Height() int { return g.height }

func (g *Game) Color(r, gr, b uint8) color.Color {
	return color.NRGBA{R: r, G: gr, B: b, A: 255}
}

func (g *Game) Random(min, max float64) float64 {
	return min + g.rng.Float64()*(max-min)
}

func (g *Game) DrawLine(from, to turtle.Point, c color.Color) {
	g.mu.Lock()
	screen := g.screen
	if screen == nil {
		g.pending = append(g.pending, turtle.Line{From: from, To: to, Color: c})
	}
	g.mu.Unlock()

	if screen != nil {
		g.stroke(screen, from, to, c)
	}
}

func (g *Game) RegisterDraw(fn func()) {
	g.mu.Lock()
	g.frames = append(g.frames, fn)
	g.mu.Unlock()
}

// Close makes the next Update end the run loop.
func (g *Game) Close() {
	g.mu.Lock()
	g.closed = true
	g.mu.Unlock()
}

func (g *Game) Update() error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.closed {
		return ErrClosed
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.mu.Lock()
	if g.layer == nil {
		g.layer = ebiten.NewImage(g.width, g.height)
		g.layer.Fill(g.background)
	}
	pending := g.pending
	g.pending = nil
	frames := append([]func(){}, g.frames...)
	g.mu.Unlock()

	for _, l := range pending {
		g.stroke(g.layer, l.From, l.To, l.Color)
	}
	screen.DrawImage(g.layer, nil)

	g.mu.Lock()
	g.screen = screen
	g.mu.Unlock()
	for _, fn := range frames {
		fn()
	}
	g.mu.Lock()
	g.screen = nil
	g.mu.Unlock()
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until it closes.
func (g *Game) Run(title string, tps int) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetTPS(tps)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ErrClosed) {
		return err
	}
	return nil
}

func (g *Game) stroke(dst *ebiten.Image, from, to turtle.Point, c color.Color) {
	vector.StrokeLine(dst, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), g.strokeWidth, c, true)
}
