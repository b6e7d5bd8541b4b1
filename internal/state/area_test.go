package state

import (
	"testing"

	"TurtleBoard/internal/turtle"

	"github.com/stretchr/testify/assert"
)

func TestBoundsOf(t *testing.T) {
	_, ok := BoundsOf(nil)
	assert.False(t, ok)

	a, ok := BoundsOf([]turtle.Line{line(10, 20, 30, 5), line(-4, 8, 12, 40)})
	assert.True(t, ok)
	assert.Equal(t, Area{X: -4, Y: 5, Width: 34, Height: 35}, a)
}

func TestAreaHelpers(t *testing.T) {
	a := Area{X: 0, Y: 0, Width: 10, Height: 10}

	assert.Equal(t, Area{X: -2, Y: -2, Width: 14, Height: 14}, a.Pad(2))
	assert.True(t, a.Contains(turtle.Point{X: 10, Y: 0}))
	assert.False(t, a.Contains(turtle.Point{X: 11, Y: 0}))
	assert.Equal(t, Area{X: 0, Y: -5, Width: 20, Height: 15}, a.Union(Area{X: 15, Y: -5, Width: 5, Height: 5}))
}

func TestFitScale(t *testing.T) {
	assert.Equal(t, 10.0, Area{Width: 10, Height: 10}.FitScale(100, 100))
	assert.Equal(t, 0.5, Area{Width: 200, Height: 50}.FitScale(100, 100))
	assert.Equal(t, 0.25, Area{Width: 200, Height: 400}.FitScale(100, 100))
	assert.Equal(t, 1.0, Area{}.FitScale(100, 100))
	assert.Equal(t, 4.0, Area{Height: 25}.FitScale(100, 100))
}
