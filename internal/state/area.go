package state

import (
	"math"

	"TurtleBoard/internal/turtle"
)

// Area is a rectangle on the board
type Area struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// BoundsOf returns the bounding box of lines. ok is false when there are no lines.
func BoundsOf(lines []turtle.Line) (a Area, ok bool) {
	if len(lines) == 0 {
		return Area{}, false
	}

	minX, minY := lines[0].From.X, lines[0].From.Y
	maxX, maxY := minX, minY
	grow := func(p turtle.Point) {
		if p.X < minX {
			minX = p.X
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	for _, l := range lines {
		grow(l.From)
		grow(l.To)
	}

	return Area{
		X:      float64(minX),
		Y:      float64(minY),
		Width:  float64(maxX - minX),
		Height: float64(maxY - minY),
	}, true
}

// Pad grows the area by p on every side
func (a Area) Pad(p float64) Area {
	return Area{X: a.X - p, Y: a.Y - p, Width: a.Width + 2*p, Height: a.Height + 2*p}
}

func (a Area) Contains(p turtle.Point) bool {
	x, y := float64(p.X), float64(p.Y)
	return x >= a.X && x <= a.X+a.Width &&
		y >= a.Y && y <= a.Y+a.Height
}

// Union returns the smallest area covering a and b
func (a Area) Union(b Area) Area {
	minX := min(a.X, b.X)
	minY := min(a.Y, b.Y)
	maxX := max(a.X+a.Width, b.X+b.Width)
	maxY := max(a.Y+a.Height, b.Y+b.Height)
	return Area{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// FitScale returns the largest uniform scale at which a fits inside w x h.
func (a Area) FitScale(w, h float64) float64 {
	s := math.Inf(1)
	if a.Width > 0 {
		s = w / a.Width
	}
	if a.Height > 0 {
		s = min(s, h/a.Height)
	}
	if math.IsInf(s, 1) {
		return 1
	}
	return s
}
