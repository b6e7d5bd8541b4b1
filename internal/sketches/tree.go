package sketches

import "TurtleBoard/internal/turtle"

// Tree draws a recursive binary tree, saving the turtle on a StateStack at
// every fork.
type Tree struct {
	Depth int
	Trunk int
	Angle float64
}

func (tr *Tree) Setup(env Env) {
	h := recorder(env)
	h.RegisterWith(env.Host)

	h.PenUp()
	h.SetLocation(env.Canvas.Width()/2, env.Canvas.Height()-10)
	h.Left(90)
	h.PenDown()

	var stack turtle.StateStack
	tr.branch(h.Turtle, &stack, tr.Depth, tr.Trunk)
}

func (tr *Tree) branch(t *turtle.Turtle, stack *turtle.StateStack, depth, length int) {
	if depth == 0 || length < 2 {
		return
	}
	green := uint8(255 - 20*min(depth, 10))
	t.SetPenRGB(155-uint8(10*min(depth, 10)), green, 59)
	t.Forward(length)

	for _, turn := range []float64{-tr.Angle, tr.Angle} {
		stack.Push(t)
		t.Right(turn)
		tr.branch(t, stack, depth-1, length*7/10)
		st, err := stack.Pop()
		if err != nil {
			return
		}
		t.Restore(st)
	}
}
