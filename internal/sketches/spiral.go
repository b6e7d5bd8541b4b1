package sketches

import "TurtleBoard/internal/turtle"

// Spiral grows a square-ish spiral one segment per frame and keeps only the
// newest Max segments, trimming the history so old segments vanish.
type Spiral struct {
	Step float64 // degrees turned after each segment
	Max  int

	t *turtle.HistoryTurtle
	n int
}

func (s *Spiral) Setup(env Env) {
	s.t = recorder(env)
	env.Host.RegisterDraw(s.step)
	s.t.RegisterWith(env.Host)
}

func (s *Spiral) step() {
	s.n++
	if s.n%16 == 0 {
		s.t.RandomPenColor()
	}
	s.t.Forward(s.n % (2 * s.Max))
	s.t.Right(s.Step)

	if over := len(s.t.Lines) - s.Max; over > 0 {
		s.t.Lines = append(s.t.Lines[:0], s.t.Lines[over:]...)
	}
}

// Turtle exposes the recording turtle, nil before Setup.
func (s *Spiral) Turtle() *turtle.HistoryTurtle { return s.t }
