package net

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"TurtleBoard/internal/state"

	"github.com/gorilla/websocket"
)

const writeTimeout = 5 * time.Second

// Peer is one websocket connection. Writes are serialised.
type Peer struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (p *Peer) send(msg Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.write(msg)
}

// write sends msg; the caller holds p.mu.
func (p *Peer) write(msg Message) error {
	_ = p.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	return p.conn.WriteJSON(msg)
}

// Hub is used by the HOST to relay board changes between all connected clients.
type Hub struct {
	board    *state.Board
	peers    map[*Peer]bool
	mu       sync.RWMutex
	upgrader websocket.Upgrader

	// OnChange is called after a remote message changed the board.
	OnChange func()
}

func NewHub(board *state.Board) *Hub {
	return &Hub{
		board: board,
		peers: make(map[*Peer]bool),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Handler serves the websocket endpoint at /ws.
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", h.serveWS)
	return mux
}

// ListenAndServe runs the hub on port until ctx is cancelled.
func (h *Hub) ListenAndServe(ctx context.Context, port int) error {
	srv := &http.Server{Addr: fmt.Sprintf(":%d", port), Handler: h.Handler()}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	log.Printf("[HOST] Listening on port %d", port)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen on %d: %w", port, err)
	}
	return nil
}

// Publish sends a local board op to every client.
func (h *Hub) Publish(op state.Op) {
	h.Broadcast(MessageFromOp(op), nil)
}

// Broadcast sends msg to every peer except exclude.
func (h *Hub) Broadcast(msg Message, exclude *Peer) {
	h.mu.RLock()
	peers := make([]*Peer, 0, len(h.peers))
	for p := range h.peers {
		if p != exclude {
			peers = append(peers, p)
		}
	}
	h.mu.RUnlock()

	for _, p := range peers {
		if err := p.send(msg); err != nil {
			log.Printf("[HOST] Error sending to %s: %v", p.conn.RemoteAddr(), err)
		}
	}
}

// Len returns the number of connected clients.
func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.peers)
}

func (h *Hub) add(p *Peer) {
	h.mu.Lock()
	h.peers[p] = true
	h.mu.Unlock()
	log.Printf("[HOST] Added connection: %s", p.conn.RemoteAddr())
}

func (h *Hub) remove(p *Peer) {
	h.mu.Lock()
	delete(h.peers, p)
	h.mu.Unlock()
	log.Printf("[HOST] Removed connection: %s", p.conn.RemoteAddr())
}

func (h *Hub) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[HOST] Upgrade failed: %v", err)
		return
	}
	p := &Peer{conn: conn}
	defer conn.Close()

	// Register first so no line falls between the snapshot and the relay.
	// Broadcasts to p wait on its lock until the snapshot is written.
	p.mu.Lock()
	h.add(p)
	err = p.write(Message{Type: MsgSnapshot, Segments: h.board.Segments()})
	p.mu.Unlock()
	defer h.remove(p)
	if err != nil {
		log.Printf("[HOST] Snapshot to %s failed: %v", conn.RemoteAddr(), err)
		return
	}

	for {
		var msg Message
		if err := conn.ReadJSON(&msg); err != nil {
			log.Printf("[HOST] Client %s disconnected: %v", conn.RemoteAddr(), err)
			return
		}
		log.Printf("[HOST] Received '%s' from %s", msg.Type, conn.RemoteAddr())
		if msg.Type == MsgSnapshot {
			continue
		}
		if msg.Apply(h.board) && h.OnChange != nil {
			h.OnChange()
		}
		h.Broadcast(msg, p) // Relay to OTHERS
	}
}

// Client is a connection from a CLIENT to the host's hub.
type Client struct {
	peer  *Peer
	board *state.Board

	// OnChange is called after a received message changed the board.
	OnChange func()
}

// Dial connects to the hub at addr (host:port).
func Dial(ctx context.Context, addr string, board *state.Board) (*Client, error) {
	url := "ws://" + addr + "/ws"
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("dial %s: %w", url, err)
	}
	log.Printf("[CLIENT] Connected to %s as %s", addr, conn.LocalAddr())
	return &Client{peer: &Peer{conn: conn}, board: board}, nil
}

// Publish sends a local board op to the host.
func (c *Client) Publish(op state.Op) {
	if err := c.peer.send(MessageFromOp(op)); err != nil {
		log.Printf("[CLIENT] Failed to send %s: %v", op.Type, err)
	}
}

// Run applies messages from the host until the connection closes.
func (c *Client) Run() error {
	for {
		var msg Message
		if err := c.peer.conn.ReadJSON(&msg); err != nil {
			return fmt.Errorf("disconnected from host: %w", err)
		}
		if msg.Apply(c.board) && c.OnChange != nil {
			c.OnChange()
		}
	}
}

func (c *Client) LocalAddr() string {
	return c.peer.conn.LocalAddr().String()
}

func (c *Client) Close() error {
	return c.peer.conn.Close()
}
