package net

import (
	"context"
	"image/color"
	stdnet "net"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"TurtleBoard/internal/state"
	"TurtleBoard/internal/turtle"

	"github.com/hashicorp/mdns"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLine(x int) turtle.Line {
	return turtle.Line{
		From:  turtle.Point{X: x, Y: 0},
		To:    turtle.Point{X: x + 10, Y: 10},
		Color: color.NRGBA{G: 200, A: 255},
	}
}

func startHub(t *testing.T, board *state.Board) (*Hub, string) {
	t.Helper()
	hub := NewHub(board)
	srv := httptest.NewServer(hub.Handler())
	t.Cleanup(srv.Close)
	return hub, strings.TrimPrefix(srv.URL, "http://")
}

func dialClient(t *testing.T, addr string, board *state.Board) *Client {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	c, err := Dial(ctx, addr, board)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	go func() { _ = c.Run() }()
	return c
}

func TestHubRelaysLinesBetweenClients(t *testing.T) {
	hostBoard := state.NewBoardWithSite("host")
	hub, addr := startHub(t, hostBoard)
	var hostChanges atomic.Int32
	hub.OnChange = func() { hostChanges.Add(1) }

	aBoard := state.NewBoardWithSite("a")
	bBoard := state.NewBoardWithSite("b")
	a := dialClient(t, addr, aBoard)
	dialClient(t, addr, bBoard)
	require.Eventually(t, func() bool { return hub.Len() == 2 }, 2*time.Second, 10*time.Millisecond)

	aBoard.OnLocalOp = a.Publish
	seg := aBoard.AddLocalLine(testLine(1))

	require.Eventually(t, func() bool { return bBoard.Len() == 1 && hostBoard.Len() == 1 }, 2*time.Second, 10*time.Millisecond)
	got := bBoard.Remote()
	require.Len(t, got, 1)
	assert.Equal(t, seg.ID, got[0].ID)
	assert.Equal(t, seg.Line(), got[0].Line())
	assert.Equal(t, int32(1), hostChanges.Load())
	assert.Equal(t, 1, aBoard.Len(), "sender must not get its own line twice")
}

func TestHubPublishesHostLinesAndClears(t *testing.T) {
	hostBoard := state.NewBoardWithSite("host")
	hub, addr := startHub(t, hostBoard)
	hostBoard.OnLocalOp = hub.Publish

	cBoard := state.NewBoardWithSite("c")
	c := dialClient(t, addr, cBoard)
	var changes atomic.Int32
	c.OnChange = func() { changes.Add(1) }
	require.Eventually(t, func() bool { return hub.Len() == 1 }, 2*time.Second, 10*time.Millisecond)

	hostBoard.AddLocalLine(testLine(1))
	hostBoard.AddLocalLine(testLine(2))
	require.Eventually(t, func() bool { return cBoard.Len() == 2 }, 2*time.Second, 10*time.Millisecond)

	hostBoard.ClearLocal()
	require.Eventually(t, func() bool { return cBoard.Len() == 0 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, int32(3), changes.Load())
}

func TestNewClientReceivesSnapshot(t *testing.T) {
	hostBoard := state.NewBoardWithSite("host")
	hostBoard.AddLocalLine(testLine(1))
	hostBoard.AddLocalLine(testLine(2))
	_, addr := startHub(t, hostBoard)

	cBoard := state.NewBoardWithSite("late")
	dialClient(t, addr, cBoard)

	require.Eventually(t, func() bool { return cBoard.Len() == 2 }, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, hostBoard.Segments()[0].ID, cBoard.Segments()[0].ID)
}

func TestClientJoiningMidDrawingGetsEveryLine(t *testing.T) {
	hostBoard := state.NewBoardWithSite("host")
	hub, addr := startHub(t, hostBoard)
	hostBoard.OnLocalOp = hub.Publish

	stop := make(chan struct{})
	drawn := make(chan struct{})
	go func() {
		defer close(drawn)
		for i := 0; i < 5000; i++ {
			select {
			case <-stop:
				return
			default:
			}
			hostBoard.AddLocalLine(testLine(i))
		}
	}()

	cBoard := state.NewBoardWithSite("c")
	dialClient(t, addr, cBoard)
	require.Eventually(t, func() bool { return hub.Len() == 1 }, 2*time.Second, time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	close(stop)
	<-drawn

	require.Eventually(t, func() bool { return cBoard.Len() == hostBoard.Len() }, 5*time.Second, 10*time.Millisecond,
		"host=%d client=%d", hostBoard.Len(), cBoard.Len())
}

func TestDialFails(t *testing.T) {
	l, err := stdnet.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := l.Addr().String()
	require.NoError(t, l.Close())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_, err = Dial(ctx, addr, state.NewBoard())
	assert.Error(t, err)
}

func TestHubListenAndServeStopsOnCancel(t *testing.T) {
	l, err := stdnet.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*stdnet.TCPAddr).Port
	require.NoError(t, l.Close())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- NewHub(state.NewBoard()).ListenAndServe(ctx, port) }()

	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("hub did not stop")
	}
}

func TestMessages(t *testing.T) {
	seg := state.NewBoardWithSite("x").AddLocalLine(testLine(3))

	m := MessageFromOp(state.Op{Type: state.OpInsertLine, Segment: &seg})
	assert.Equal(t, Message{Type: MsgLine, Segment: &seg}, m)
	assert.Equal(t, Message{Type: MsgClear, OwnerID: "x"}, MessageFromOp(state.Op{Type: state.OpClear, Owner: "x"}))

	b := state.NewBoardWithSite("y")
	assert.True(t, m.Apply(b))
	assert.False(t, Message{Type: MsgSnapshot, Segments: []state.Segment{seg}}.Apply(b))
	assert.False(t, Message{Type: "nonsense"}.Apply(b))
	assert.True(t, Message{Type: MsgClear, OwnerID: "x"}.Apply(b))
}

func TestLinks(t *testing.T) {
	link := ShareLink("10.0.0.2", 8888)
	assert.Equal(t, "turtle://10.0.0.2:8888", link)

	addr, ok := ParseLink(link + "/")
	assert.True(t, ok)
	assert.Equal(t, "10.0.0.2:8888", addr)

	_, ok = ParseLink("http://10.0.0.2")
	assert.False(t, ok)
	_, ok = ParseLink("turtle://")
	assert.False(t, ok)
}

func TestEntryAddr(t *testing.T) {
	_, ok := entryAddr(nil)
	assert.False(t, ok)
	_, ok = entryAddr(&mdns.ServiceEntry{Port: 1})
	assert.False(t, ok)

	addr, ok := entryAddr(&mdns.ServiceEntry{AddrV4: stdnet.IPv4(192, 168, 1, 4), Port: 8888})
	assert.True(t, ok)
	assert.Equal(t, "192.168.1.4:8888", addr)
}

func TestOutgoingIP(t *testing.T) {
	ip := stdnet.ParseIP(OutgoingIP())
	assert.NotNil(t, ip)
}

func TestLanIP(t *testing.T) {
	addrs := []stdnet.Addr{
		&stdnet.TCPAddr{IP: stdnet.IPv4(10, 0, 0, 9)},
		&stdnet.IPNet{IP: stdnet.ParseIP("fe80::1"), Mask: stdnet.CIDRMask(64, 128)},
		&stdnet.IPNet{IP: stdnet.IPv4(127, 0, 0, 2), Mask: stdnet.CIDRMask(8, 32)},
		&stdnet.IPNet{IP: stdnet.IPv4(192, 168, 1, 20), Mask: stdnet.CIDRMask(24, 32)},
	}
	assert.Equal(t, "192.168.1.20", lanIP(addrs).String())
	assert.Equal(t, "127.0.0.1", lanIP(nil).String())
	assert.Equal(t, "127.0.0.1", lanIP(addrs[:3]).String())
}
