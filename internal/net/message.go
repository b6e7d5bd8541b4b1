package net

import (
	"fmt"
	"strings"

	"TurtleBoard/internal/state"
)

// LinkScheme prefixes share links handed from host to clients.
const LinkScheme = "turtle://"

type MessageType string

const (
	MsgLine     MessageType = "line"
	MsgClear    MessageType = "clear"
	MsgSnapshot MessageType = "snapshot"
)

// Message is one JSON frame on the wire.
type Message struct {
	Type     MessageType     `json:"type"`
	Segment  *state.Segment  `json:"segment,omitempty"`
	OwnerID  string          `json:"owner_id,omitempty"` // used for "clear"
	Segments []state.Segment `json:"segments,omitempty"` // used for "snapshot"
}

// MessageFromOp wraps a board op for sending.
func MessageFromOp(op state.Op) Message {
	switch op.Type {
	case state.OpClear:
		return Message{Type: MsgClear, OwnerID: op.Owner}
	default:
		return Message{Type: MsgLine, Segment: op.Segment}
	}
}

// Apply merges the message into board and reports whether anything changed.
func (m Message) Apply(board *state.Board) bool {
	switch m.Type {
	case MsgLine:
		return board.Apply(state.Op{Type: state.OpInsertLine, Segment: m.Segment})
	case MsgClear:
		return board.Apply(state.Op{Type: state.OpClear, Owner: m.OwnerID})
	case MsgSnapshot:
		return len(board.Merge(m.Segments)) > 0
	default:
		return false
	}
}

// ShareLink builds the link a client is started with.
func ShareLink(host string, port int) string {
	return fmt.Sprintf("%s%s:%d", LinkScheme, host, port)
}

// ParseLink returns the host:port of a share link.
func ParseLink(link string) (string, bool) {
	if !strings.HasPrefix(link, LinkScheme) {
		return "", false
	}
	addr := strings.TrimSuffix(strings.TrimPrefix(link, LinkScheme), "/")
	return addr, addr != ""
}
