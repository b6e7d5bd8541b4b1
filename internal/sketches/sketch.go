package sketches

import (
	"errors"
	"fmt"
	"sort"

	"TurtleBoard/internal/turtle"
)

// ErrUnknownSketch is returned by Lookup for names that are not registered.
var ErrUnknownSketch = errors.New("unknown sketch")

// Env is what a sketch gets to draw with.
type Env struct {
	Canvas turtle.Canvas
	Host   turtle.FrameHost
	// OnLine, if set, receives every line a recording turtle commits so it can
	// be shared with other peers.
	OnLine func(turtle.Line)
	// OnRecorder, if set, is told about every recording turtle the sketch
	// creates, so the host can clear their history.
	OnRecorder func(*turtle.HistoryTurtle)
}

// Sketch is a turtle program. Setup runs once before the host starts its
// frame loop; animated sketches register frame callbacks on env.Host.
type Sketch interface {
	Setup(env Env)
}

// SketchFunc adapts a function to Sketch.
type SketchFunc func(env Env)

func (f SketchFunc) Setup(env Env) { f(env) }

var registry = map[string]func() Sketch{
	"square": func() Sketch { return SketchFunc(square) },
	"spiral": func() Sketch { return &Spiral{Step: 91, Max: 180} },
	"tree":   func() Sketch { return &Tree{Depth: 9, Trunk: 120, Angle: 22} },
	"swarm":  func() Sketch { return &Swarm{Count: 12, Speed: 3, Trail: 150} },
}

// Lookup returns a fresh instance of the named sketch.
func Lookup(name string) (Sketch, error) {
	mk, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (have %v)", ErrUnknownSketch, name, Names())
	}
	return mk(), nil
}

// Names lists the registered sketches in order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// recorder returns a recording turtle wired to env.OnLine.
func recorder(env Env) *turtle.HistoryTurtle {
	h := turtle.NewHistoryTurtle(env.Canvas)
	h.OnLine = env.OnLine
	if env.OnRecorder != nil {
		env.OnRecorder(h)
	}
	return h
}
