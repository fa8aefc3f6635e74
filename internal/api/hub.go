package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
)

// Hub fans scene frames out to every connected browser. The animator pushes
// one message per tick into Broadcast; slow or dead clients are dropped
// rather than allowed to stall the loop.
type Hub struct {
	clients    map[*wsClient]bool
	Broadcast  chan []byte
	register   chan *wsClient
	unregister chan *wsClient
}

// wsClient is one browser connection with a buffered outbound queue.
type wsClient struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte
}

// NewHub creates the hub. Run must be started in its own goroutine.
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*wsClient]bool),
		Broadcast:  make(chan []byte),
		register:   make(chan *wsClient),
		unregister: make(chan *wsClient),
	}
}

// Run is the hub's event loop.
func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.clients[c] = true
			slog.Debug("scene feed client connected", "clients", len(h.clients))

		case c := <-h.unregister:
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
				slog.Debug("scene feed client disconnected", "clients", len(h.clients))
			}

		case msg := <-h.Broadcast:
			for c := range h.clients {
				select {
				case c.send <- msg:
				default:
					// Full buffer means the client stopped reading.
					close(c.send)
					delete(h.clients, c)
				}
			}
		}
	}
}

// BroadcastJSON marshals v and queues it for all clients. Send failures are
// handled per client inside Run.
func (h *Hub) BroadcastJSON(v any) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Error("failed to marshal scene frame", "error", err)
		return
	}
	h.Broadcast <- data
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The server only listens on localhost; the GUI shell and the browser
	// both connect from there.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWs upgrades a GET request to a websocket and attaches it to the hub.
func (h *Hub) ServeWs(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("websocket upgrade failed", "error", err)
		return
	}

	c := &wsClient{hub: h, conn: conn, send: make(chan []byte, 64)}
	h.register <- c

	go c.writePump()
	go c.readPump()
}

// readPump drains (and discards) inbound messages so pings and close frames
// are processed, and unregisters the client on error.
func (c *wsClient) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				slog.Debug("scene feed read error", "error", err)
			}
			return
		}
	}
}

// writePump writes queued frames to the socket until the send channel closes.
func (c *wsClient) writePump() {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}
