package state

import (
	"image/color"
	"time"

	"TurtleBoard/internal/turtle"
)

// Segment is a turtle line as it is shared between peers.
type Segment struct {
	ID        string       `json:"id"`
	Site      string       `json:"site"`
	Lamport   uint64       `json:"lamport"`
	From      turtle.Point `json:"from"`
	To        turtle.Point `json:"to"`
	Color     color.NRGBA  `json:"color"`
	CreatedAt time.Time    `json:"created_at"`
}

// Line converts the segment back into a drawable turtle line.
func (s Segment) Line() turtle.Line {
	return turtle.Line{From: s.From, To: s.To, Color: s.Color}
}

// before orders segments by Lamport time, then site, then ID, so every peer
// draws the same stack of lines.
func (s Segment) before(o Segment) bool {
	if s.Lamport != o.Lamport {
		return s.Lamport < o.Lamport
	}
	if s.Site != o.Site {
		return s.Site < o.Site
	}
	return s.ID < o.ID
}

func toNRGBA(c color.Color) color.NRGBA {
	if c == nil {
		return color.NRGBA{A: 255}
	}
	return color.NRGBAModel.Convert(c).(color.NRGBA)
}

type OpType string

const (
	OpInsertLine OpType = "insert_line"
	OpClear      OpType = "clear"
)

// Op is a change to the board, local or received from a peer.
type Op struct {
	Type    OpType   `json:"type"`
	Segment *Segment `json:"segment,omitempty"`
	Owner   string   `json:"owner,omitempty"` // site to clear, or AllSites
}

// AllSites as a clear owner wipes every site's lines.
const AllSites = "all"
