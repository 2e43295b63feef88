package spectate

import (
	"context"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

func testSnapshot(session string, score int) flappy.Snapshot {
	return flappy.Snapshot{
		Phase:     flappy.PhasePlaying,
		Tick:      120,
		SessionID: session,
		Score:     score,
		HighScore: 9,
		Character: flappy.CharacterBlueBird,
		Player:    flappy.PlayerView{X: -200, Y: 12.345, Tilt: 0.1234, Radius: 12, Alive: true},
		Obstacles: []flappy.ObstacleView{
			{ID: flappy.EntityID{Index: 3, Generation: 1}, Variant: flappy.VariantLantern2, X: 310.06, Y: 225, Upper: true},
		},
		Background: []flappy.BackgroundView{{Layer: flappy.LayerCloud, X: 10, Y: 200}},
	}
}

func TestFrameEncoding(t *testing.T) {
	data, err := Encode(NewFrame(testSnapshot("abc", 4)))
	if err != nil {
		t.Fatalf("Encode() failed: %v", err)
	}
	f, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}

	if f.Session != "abc" || f.Score != 4 || f.Phase != "playing" || f.Character != "blue_bird" {
		t.Errorf("unexpected header %+v", f)
	}
	if f.Player.Y != 12.3 || f.Player.Tilt != 0.12 {
		t.Errorf("player not rounded: %+v", f.Player)
	}
	if len(f.Obstacles) != 1 || f.Obstacles[0].Variant != "lantern2" || f.Obstacles[0].X != 310.1 {
		t.Errorf("obstacles = %+v", f.Obstacles)
	}
	if f.Obstacles[0].ID != 1<<32|3 {
		t.Errorf("obstacle id = %d", f.Obstacles[0].ID)
	}
	if len(f.Background) != 1 || f.Background[0].Layer != "cloud" {
		t.Errorf("background = %+v", f.Background)
	}
}

func TestDecodeGarbage(t *testing.T) {
	if _, err := Decode([]byte{0xc1}); err == nil {
		t.Error("expected error for invalid msgpack")
	}
}

func dial(t *testing.T, srv *httptest.Server, query string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + query
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial() failed: %v", err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitClients(t *testing.T, h *Hub, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for h.Clients() != n {
		if time.Now().After(deadline) {
			t.Fatalf("hub has %d clients, expected %d", h.Clients(), n)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func readFrame(t *testing.T, conn *websocket.Conn) Frame {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	kind, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage() failed: %v", err)
	}
	if kind != websocket.BinaryMessage {
		t.Fatalf("message type = %d, expected binary", kind)
	}
	f, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	return f
}

func TestHubBroadcast(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	hub := NewHub(nil)
	go hub.Run(ctx)
	srv := httptest.NewServer(hub)
	defer srv.Close()

	all := dial(t, srv, "")
	only := dial(t, srv, "?session=b")
	waitClients(t, hub, 2)

	hub.Publish(testSnapshot("a", 1))
	hub.Publish(testSnapshot("b", 2))

	if f := readFrame(t, all); f.Session != "a" {
		t.Errorf("first frame for unfiltered viewer from %q", f.Session)
	}
	if f := readFrame(t, all); f.Session != "b" {
		t.Errorf("second frame for unfiltered viewer from %q", f.Session)
	}
	if f := readFrame(t, only); f.Session != "b" || f.Score != 2 {
		t.Errorf("filtered viewer got %+v", f)
	}

	only.Close()
	waitClients(t, hub, 1)
}

func TestHubShutdownClosesViewers(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	hub := NewHub(nil)
	go hub.Run(ctx)
	srv := httptest.NewServer(hub)
	defer srv.Close()

	conn := dial(t, srv, "")
	waitClients(t, hub, 1)

	cancel()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Error("expected the connection to close after shutdown")
	}
	if hub.Clients() != 0 {
		t.Errorf("hub still counts %d clients", hub.Clients())
	}
}

func TestPublishWithoutViewers(t *testing.T) {
	hub := NewHub(nil)
	// No Run loop and no viewers: must not block.
	for i := 0; i < 100; i++ {
		hub.Publish(testSnapshot("x", i))
	}
}
