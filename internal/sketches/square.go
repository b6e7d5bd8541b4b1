package sketches

import "TurtleBoard/internal/turtle"

// square draws a four coloured square with a plain turtle, straight onto the
// canvas.
func square(env Env) {
	t := turtle.New(env.Canvas)
	side := min(env.Canvas.Width(), env.Canvas.Height()) / 2

	t.PenUp()
	t.Backward(side / 2)
	t.StrafeLeft(side / 2)
	t.PenDown()

	for i := 0; i < 4; i++ {
		rgb := turtle.Palette[i+1]
		t.SetPenRGB(rgb[0], rgb[1], rgb[2])
		t.Forward(side)
		t.Right(90)
	}
}
