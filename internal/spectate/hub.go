package spectate

import (
	"context"
	"errors"
	"io"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-flappy/internal/flappy"
)

const (
	writeWait   = 5 * time.Second
	clientQueue = 64
)

// message is one encoded frame tagged with its session.
type message struct {
	session string
	data    []byte
}

// client is one connected viewer.
type client struct {
	hub     *Hub
	conn    *websocket.Conn
	send    chan []byte
	session string // only frames of this session, empty for all
}

// Hub maintains the set of viewers and fans frames out to them.
// Publishing never blocks the game loop; frames are dropped when the hub
// or a viewer falls behind.
type Hub struct {
	clients    map[*client]bool
	broadcast  chan message
	register   chan *client
	unregister chan *client
	done       chan struct{}
	count      atomic.Int32
	log        *log.Logger
	upgrader   websocket.Upgrader
}

// NewHub creates a hub. Call Run before serving viewers.
func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Hub{
		clients:    make(map[*client]bool),
		broadcast:  make(chan message, 16),
		register:   make(chan *client),
		unregister: make(chan *client),
		done:       make(chan struct{}),
		log:        logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// Run is the hub's event loop. It returns when ctx is done, closing every
// viewer.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			for c := range h.clients {
				h.drop(c)
			}
			return

		case c := <-h.register:
			h.clients[c] = true
			h.count.Add(1)
			h.log.Info("spectator connected", "remote", c.conn.RemoteAddr(), "session", c.session)

		case c := <-h.unregister:
			if h.clients[c] {
				h.drop(c)
			}

		case m := <-h.broadcast:
			for c := range h.clients {
				if c.session != "" && c.session != m.session {
					continue
				}
				select {
				case c.send <- m.data:
				default:
					h.log.Warn("spectator too slow, disconnecting", "remote", c.conn.RemoteAddr())
					h.drop(c)
				}
			}
		}
	}
}

func (h *Hub) drop(c *client) {
	delete(h.clients, c)
	h.count.Add(-1)
	close(c.send)
}

// Clients returns the number of connected viewers.
func (h *Hub) Clients() int {
	return int(h.count.Load())
}

// Publish encodes a snapshot and queues it for every interested viewer.
func (h *Hub) Publish(s flappy.Snapshot) {
	if h.Clients() == 0 {
		return
	}
	data, err := Encode(NewFrame(s))
	if err != nil {
		h.log.Error("failed to encode frame", "err", err)
		return
	}
	select {
	case h.broadcast <- message{session: s.SessionID, data: data}:
	default:
	}
}

// ServeHTTP upgrades the request to a websocket viewer. The optional
// "session" query parameter restricts the feed to one game session.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn("websocket upgrade failed", "err", err)
		return
	}

	c := &client{
		hub:     h,
		conn:    conn,
		send:    make(chan []byte, clientQueue),
		session: r.URL.Query().Get("session"),
	}
	select {
	case h.register <- c:
	case <-h.done:
		conn.Close()
		return
	}

	go c.writePump()
	go c.readPump()
}

// readPump discards viewer input and unregisters on disconnect.
func (c *client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.hub.log.Debug("spectator read error", "err", err)
			}
			return
		}
	}
}

// writePump sends queued frames until the hub closes the channel.
func (c *client) writePump() {
	defer c.conn.Close()

	for data := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.BinaryMessage, data); err != nil {
			return
		}
	}
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}

// Serve runs the hub and an HTTP server exposing it at /ws until ctx is
// done.
func Serve(ctx context.Context, addr string, hub *Hub) error {
	mux := http.NewServeMux()
	mux.Handle("/ws", hub)

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go hub.Run(ctx)
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	hub.log.Info("spectator feed listening", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
