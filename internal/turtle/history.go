package turtle

import "image/color"

// Line is one recorded stroke.
type Line struct {
	From  Point
	To    Point
	Color color.Color
}

// Draw strokes the line on c.
func (l Line) Draw(c Canvas) {
	c.DrawLine(l.From, l.To, l.Color)
}

// HistoryTurtle is a Turtle that records its strokes in Lines instead of
// drawing them. Replay redraws them, so editing Lines changes what has
// already been drawn.
type HistoryTurtle struct {
	*Turtle

	// Lines previously drawn, oldest first.
	Lines []Line
	// OnLine, if set, is called after each line is recorded.
	OnLine func(Line)
}

// NewHistoryTurtle creates a recording turtle in the middle of the canvas.
func NewHistoryTurtle(c Canvas) *HistoryTurtle {
	h := &HistoryTurtle{}
	h.Turtle = newTurtle(c, h)
	return h
}

// NewHistoryTurtleFrom copies t's position, heading and pen into a new
// recording turtle. The history starts empty even if t was recording.
func NewHistoryTurtleFrom(t *Turtle) *HistoryTurtle {
	h := &HistoryTurtle{}
	h.Turtle = &Turtle{canvas: t.canvas, strategy: h}
	h.Turtle.Restore(t.State())
	return h
}

// Stroke records the segment. It implements DrawStrategy.
func (h *HistoryTurtle) Stroke(from, to Point, c color.Color) {
	l := Line{From: from, To: to, Color: c}
	h.Lines = append(h.Lines, l)
	if h.OnLine != nil {
		h.OnLine(l)
	}
}

// Replay draws every recorded line in order.
func (h *HistoryTurtle) Replay() {
	for i := 0; i < len(h.Lines); i++ {
		h.Lines[i].Draw(h.canvas)
	}
}

// RegisterWith asks host to call Replay once per frame.
func (h *HistoryTurtle) RegisterWith(host FrameHost) {
	host.RegisterDraw(h.Replay)
}

// Clear forgets every recorded line.
func (h *HistoryTurtle) Clear() {
	h.Lines = nil
}
