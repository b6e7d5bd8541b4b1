package export

import (
	"image/color"
	"math/rand"

	"TurtleBoard/internal/turtle"
)

// surface holds what the headless canvases share: size, colour space,
// random source and frame callbacks.
type surface struct {
	width, height int
	background    color.Color
	rng           *rand.Rand
	frames        []func()

	static  []turtle.Line // drawn outside a frame, kept for good
	current []turtle.Line // drawn during the last frame
	inFrame bool
}

func newSurface(width, height int, seed int64) surface {
	return surface{
		width:      width,
		height:     height,
		background: color.Black,
		rng:        rand.New(rand.NewSource(seed)),
	}
}

func (s *surface) Width() int  { return s.width }
func (s *surface) Height() int { return s.height }

func (s *surface) Color(r, g, b uint8) color.Color {
	return color.NRGBA{R: r, G: g, B: b, A: 255}
}

func (s *surface) Random(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}

func (s *surface) RegisterDraw(fn func()) {
	s.frames = append(s.frames, fn)
}

// SetBackground sets the colour each frame starts from.
func (s *surface) SetBackground(c color.Color) {
	s.background = c
}

func (s *surface) record(l turtle.Line) {
	if s.inFrame {
		s.current = append(s.current, l)
	} else {
		s.static = append(s.static, l)
	}
}

// runFrame calls every registered callback once, collecting what they draw.
func (s *surface) runFrame() {
	s.current = s.current[:0]
	s.inFrame = true
	for _, fn := range s.frames {
		fn()
	}
	s.inFrame = false
}

// Lines returns everything currently visible: lines drawn outside frames,
// then the last frame's lines.
func (s *surface) Lines() []turtle.Line {
	out := make([]turtle.Line, 0, len(s.static)+len(s.current))
	out = append(out, s.static...)
	return append(out, s.current...)
}
