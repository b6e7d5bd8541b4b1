package sketches

import (
	"TurtleBoard/internal/state"
	"TurtleBoard/internal/turtle"
)

// Swarm scatters Count turtles that each chase their nearest neighbour,
// sidestepping as they go. A turtle that catches its target or leaves the
// canvas jumps somewhere new without drawing.
type Swarm struct {
	Count int
	Speed int
	Trail int // lines kept per turtle

	env     Env
	members []*turtle.HistoryTurtle
	plain   []*turtle.Turtle
	frame   int
}

func (s *Swarm) Setup(env Env) {
	s.env = env
	for i := 0; i < s.Count; i++ {
		h := recorder(env)
		h.RandomPenColor()
		s.scatter(h.Turtle)
		h.RegisterWith(env.Host)
		s.members = append(s.members, h)
		s.plain = append(s.plain, h.Turtle)
	}
	env.Host.RegisterDraw(s.step)
}

func (s *Swarm) step() {
	s.frame++
	view := state.Area{Width: float64(s.env.Canvas.Width()), Height: float64(s.env.Canvas.Height())}

	for i, h := range s.members {
		others := make([]*turtle.Turtle, 0, len(s.plain)-1)
		others = append(others, s.plain[:i]...)
		others = append(others, s.plain[i+1:]...)

		target := h.Nearest(others)
		if target == nil {
			h.Forward(s.Speed)
		} else if h.DistanceTo(target) <= s.Speed {
			s.scatter(h.Turtle)
			h.RandomPenColor()
		} else {
			h.MoveTowardTurtleBy(target, s.Speed)
			if s.frame%2 == 0 {
				h.StrafeLeft(1)
			} else {
				h.StrafeRight(1)
			}
		}

		if !view.Contains(h.Position()) {
			s.scatter(h.Turtle)
		}
		if over := len(h.Lines) - s.Trail; over > 0 {
			h.Lines = append(h.Lines[:0], h.Lines[over:]...)
		}
	}
}

func (s *Swarm) scatter(t *turtle.Turtle) {
	t.SetLocation(
		int(s.env.Canvas.Random(0, float64(s.env.Canvas.Width()))),
		int(s.env.Canvas.Random(0, float64(s.env.Canvas.Height()))),
	)
}

// Members exposes the swarm's turtles.
func (s *Swarm) Members() []*turtle.HistoryTurtle { return s.members }
