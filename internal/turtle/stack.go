package turtle

import (
	"errors"
	"image/color"
)

// ErrEmptyStack is returned by Pop when nothing has been pushed.
var ErrEmptyStack = errors.New("turtle: pop from empty state stack")

// State is a value snapshot of a turtle.
type State struct {
	Position Point
	Heading  float64
	PenColor color.Color
	PenDown  bool
}

// StateStack saves and restores turtle state, last in first out.
// It is not safe for concurrent use.
type StateStack struct {
	states []State
}

// Push saves a copy of t's state.
func (s *StateStack) Push(t *Turtle) {
	s.states = append(s.states, t.State())
}

// Pop removes and returns the most recently pushed state.
func (s *StateStack) Pop() (State, error) {
	n := len(s.states)
	if n == 0 {
		return State{}, ErrEmptyStack
	}
	st := s.states[n-1]
	s.states[n-1] = State{}
	s.states = s.states[:n-1]
	return st, nil
}

func (s *StateStack) Len() int { return len(s.states) }
