package state

import (
	"log"
	"sort"
	"sync"
	"time"

	"TurtleBoard/internal/turtle"

	"github.com/google/uuid"
)

// Board is the shared set of turtle lines drawn by every peer. Inserts are
// idempotent by segment ID and the listing order is the same on every peer.
type Board struct {
	siteID   string
	clock    Clock
	segments map[string]Segment
	mu       sync.RWMutex

	// OnLocalOp is called for every op that originates here, to broadcast it.
	OnLocalOp func(Op)
}

// NewBoard creates an empty board with a random site ID.
func NewBoard() *Board {
	return NewBoardWithSite(uuid.NewString())
}

func NewBoardWithSite(siteID string) *Board {
	return &Board{
		siteID:   siteID,
		segments: make(map[string]Segment),
	}
}

// SiteID returns this board's site ID
func (b *Board) SiteID() string {
	return b.siteID
}

// AddLocalLine stamps a line drawn here with a fresh ID and Lamport time,
// stores it and emits it.
func (b *Board) AddLocalLine(l turtle.Line) Segment {
	seg := Segment{
		ID:        uuid.NewString(),
		Site:      b.siteID,
		Lamport:   b.clock.Tick(),
		From:      l.From,
		To:        l.To,
		Color:     toNRGBA(l.Color),
		CreatedAt: time.Now(),
	}

	b.mu.Lock()
	b.segments[seg.ID] = seg
	b.mu.Unlock()

	b.emit(Op{Type: OpInsertLine, Segment: &seg})
	return seg
}

// AddRemote merges a segment received from the network. It returns false for
// duplicates.
func (b *Board) AddRemote(seg Segment) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, exists := b.segments[seg.ID]; exists {
		return false
	}
	b.clock.Update(seg.Lamport)
	b.segments[seg.ID] = seg
	return true
}

// ClearLocal removes this site's lines and emits the clear.
func (b *Board) ClearLocal() int {
	n := b.Clear(b.siteID)
	b.emit(Op{Type: OpClear, Owner: b.siteID})
	return n
}

// Clear removes every segment owned by site, or all of them for AllSites.
func (b *Board) Clear(site string) int {
	b.mu.Lock()
	defer b.mu.Unlock()

	if site == AllSites {
		n := len(b.segments)
		b.segments = make(map[string]Segment)
		log.Printf("[BOARD] Cleared all %d segments", n)
		return n
	}
	n := 0
	for id, seg := range b.segments {
		if seg.Site == site {
			delete(b.segments, id)
			n++
		}
	}
	log.Printf("[BOARD] Cleared %d segments from site %s", n, site)
	return n
}

// Apply merges an op received from a peer. It reports whether the board
// changed.
func (b *Board) Apply(op Op) bool {
	switch op.Type {
	case OpInsertLine:
		if op.Segment == nil {
			return false
		}
		return b.AddRemote(*op.Segment)
	case OpClear:
		return b.Clear(op.Owner) > 0
	default:
		log.Printf("[BOARD] Ignoring unknown op %q", op.Type)
		return false
	}
}

// Segments returns every segment in drawing order.
func (b *Board) Segments() []Segment {
	return b.filter(func(Segment) bool { return true })
}

// Remote returns the segments other sites drew, in drawing order.
func (b *Board) Remote() []Segment {
	return b.filter(func(s Segment) bool { return s.Site != b.siteID })
}

func (b *Board) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.segments)
}

// DrawRemote strokes the other sites' segments on c.
func (b *Board) DrawRemote(c turtle.Canvas) {
	for _, seg := range b.Remote() {
		seg.Line().Draw(c)
	}
}

// Merge adds the segments missing here, such as a peer's snapshot, and
// returns the new ones.
func (b *Board) Merge(segs []Segment) []Segment {
	added := make([]Segment, 0)
	for _, seg := range segs {
		if b.AddRemote(seg) {
			added = append(added, seg)
		}
	}
	if len(added) > 0 {
		log.Printf("[BOARD] Merged %d of %d segments, clock at %d", len(added), len(segs), b.clock.Now())
	}
	return added
}

func (b *Board) filter(keep func(Segment) bool) []Segment {
	b.mu.RLock()
	segs := make([]Segment, 0, len(b.segments))
	for _, seg := range b.segments {
		if keep(seg) {
			segs = append(segs, seg)
		}
	}
	b.mu.RUnlock()

	sort.Slice(segs, func(i, j int) bool { return segs[i].before(segs[j]) })
	return segs
}

func (b *Board) emit(op Op) {
	if b.OnLocalOp != nil {
		b.OnLocalOp(op)
	}
}
