package turtle

import (
	"fmt"
	"image/color"
	"math"
)

// Turtle is a LOGO style pen on a Canvas. Heading is in radians and is never
// normalised; it accumulates across Left and Right calls.
type Turtle struct {
	canvas   Canvas
	strategy DrawStrategy

	pos      Point
	heading  float64
	penColor color.Color
	penDown  bool
}

// New creates a Turtle in the middle of the canvas which draws in white.
func New(c Canvas) *Turtle {
	t := newTurtle(c, nil)
	t.strategy = immediateDraw{canvas: c}
	return t
}

func newTurtle(c Canvas, s DrawStrategy) *Turtle {
	return &Turtle{
		canvas:   c,
		strategy: s,
		pos:      Point{X: c.Width() / 2, Y: c.Height() / 2},
		penColor: c.Color(255, 255, 255),
		penDown:  true,
	}
}

// Clone returns an independent Turtle with the same position, heading and pen.
// The clone always draws immediately, whatever t's strategy is.
func (t *Turtle) Clone() *Turtle {
	c := &Turtle{canvas: t.canvas, strategy: immediateDraw{canvas: t.canvas}}
	c.Restore(t.State())
	return c
}

// Canvas returns the canvas the turtle draws to.
func (t *Turtle) Canvas() Canvas { return t.canvas }

func (t *Turtle) Position() Point { return t.pos }

func (t *Turtle) X() int { return t.pos.X }

func (t *Turtle) Y() int { return t.pos.Y }

// Heading returns the raw heading in radians.
func (t *Turtle) Heading() float64 { return t.heading }

// Rotation returns the heading in degrees, truncated toward zero.
func (t *Turtle) Rotation() int {
	return int(degrees(t.heading))
}

// SetRotation points the turtle at an absolute angle in degrees.
func (t *Turtle) SetRotation(deg int) {
	t.heading = radians(float64(deg))
}

func (t *Turtle) Forward(amount int) {
	a := float64(amount)
	t.moveTo(Point{
		X: t.pos.X + int(math.Round(a*math.Cos(t.heading))),
		Y: t.pos.Y + int(math.Round(a*math.Sin(t.heading))),
	})
}

func (t *Turtle) Backward(amount int) {
	t.Forward(-amount)
}

// Left turns anticlockwise on screen by deg degrees.
func (t *Turtle) Left(deg float64) {
	t.heading -= radians(deg)
}

// Right turns clockwise on screen by deg degrees.
func (t *Turtle) Right(deg float64) {
	t.heading += radians(deg)
}

// StrafeLeft moves sideways to the left, leaving the heading untouched.
func (t *Turtle) StrafeLeft(amount int) {
	h := t.heading
	t.Left(90)
	t.Forward(amount)
	t.heading = h
}

// StrafeRight moves sideways to the right, leaving the heading untouched.
func (t *Turtle) StrafeRight(amount int) {
	h := t.heading
	t.Right(90)
	t.Forward(amount)
	t.heading = h
}

// MoveToward turns to face (x, y) and covers ratio of the distance to it.
// A ratio of 0 only turns; 1 lands on the point.
func (t *Turtle) MoveToward(x, y int, ratio float64) {
	t.MoveTowardBy(x, y, int(float64(t.Distance(x, y))*ratio))
}

// MoveTowardBy turns to face (x, y) and moves pixels along that heading.
// It does not stop at the point.
func (t *Turtle) MoveTowardBy(x, y, pixels int) {
	t.heading = math.Atan2(float64(y-t.pos.Y), float64(x-t.pos.X))
	t.Forward(pixels)
}

func (t *Turtle) MoveTowardTurtle(o *Turtle, ratio float64) {
	t.MoveToward(o.pos.X, o.pos.Y, ratio)
}

func (t *Turtle) MoveTowardTurtleBy(o *Turtle, pixels int) {
	t.MoveTowardBy(o.pos.X, o.pos.Y, pixels)
}

// SetLocation moves the turtle without drawing.
func (t *Turtle) SetLocation(x, y int) {
	t.pos = Point{X: x, Y: y}
}

func (t *Turtle) PenColor() color.Color { return t.penColor }

func (t *Turtle) SetPenColor(c color.Color) {
	t.penColor = c
}

// SetPenRGB sets the pen colour through the canvas's colour constructor.
func (t *Turtle) SetPenRGB(r, g, b uint8) {
	t.penColor = t.canvas.Color(r, g, b)
}

// RandomPenColor picks one of the Palette colours using the canvas's random source.
func (t *Turtle) RandomPenColor() {
	i := int(t.canvas.Random(0, float64(len(Palette))))
	if i < 0 {
		i = 0
	} else if i >= len(Palette) {
		i = len(Palette) - 1
	}
	rgb := Palette[i]
	t.SetPenRGB(rgb[0], rgb[1], rgb[2])
}

func (t *Turtle) PenUp() { t.penDown = false }

func (t *Turtle) PenDown() { t.penDown = true }

func (t *Turtle) IsPenDown() bool { return t.penDown }

// Distance returns the Euclidean distance to (x, y) truncated to whole pixels.
func (t *Turtle) Distance(x, y int) int {
	dx := float64(x - t.pos.X)
	dy := float64(y - t.pos.Y)
	return int(math.Sqrt(dx*dx + dy*dy))
}

func (t *Turtle) DistanceTo(o *Turtle) int {
	return t.Distance(o.pos.X, o.pos.Y)
}

// Nearest returns the closest turtle in ts. Ties go to the earliest entry.
// It returns nil when ts is empty.
func (t *Turtle) Nearest(ts []*Turtle) *Turtle {
	var nearest *Turtle
	nearestDist := math.MaxInt
	for _, o := range ts {
		if d := t.DistanceTo(o); d < nearestDist {
			nearest = o
			nearestDist = d
		}
	}
	return nearest
}

// State snapshots position, heading and pen.
func (t *Turtle) State() State {
	return State{
		Position: t.pos,
		Heading:  t.heading,
		PenColor: t.penColor,
		PenDown:  t.penDown,
	}
}

// Restore overwrites position, heading and pen from s. It never draws.
func (t *Turtle) Restore(s State) {
	t.pos = s.Position
	t.heading = s.Heading
	t.penColor = s.PenColor
	t.penDown = s.PenDown
}

func (t *Turtle) String() string {
	return fmt.Sprintf("Turtle at %d,%d", t.pos.X, t.pos.Y)
}

// moveTo is the single path every heading based move goes through.
func (t *Turtle) moveTo(p Point) {
	if t.penDown {
		t.strategy.Stroke(t.pos, p, t.penColor)
	}
	t.pos = p
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }

func degrees(rad float64) float64 { return rad * 180 / math.Pi }
