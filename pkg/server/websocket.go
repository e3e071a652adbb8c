package server

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// reloadEvent is pushed to every connected client when a watched
// file changes.
type reloadEvent struct {
	Type string `json:"type"`
	Path string `json:"path,omitempty"`
}

// reloadHub fans out reload events to connected websocket clients.
type reloadHub struct {
	logger   *slog.Logger
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

func newReloadHub(logger *slog.Logger) *reloadHub {
	return &reloadHub{
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Local preview tooling; the page is served from the same
			// process that accepts the socket.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[*websocket.Conn]struct{}),
	}
}

// handle upgrades the request and parks the connection until the
// client goes away. The read loop exists only to observe closure.
func (h *reloadHub) handle(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	h.add(conn)
	defer h.remove(conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *reloadHub) add(conn *websocket.Conn) {
	h.mu.Lock()
	h.clients[conn] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()

	serverMetrics().reloadClients.Inc()
	h.logger.Debug("reload client connected", "clients", n)
}

func (h *reloadHub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		serverMetrics().reloadClients.Dec()
	}
	n := len(h.clients)
	h.mu.Unlock()

	conn.Close()
	h.logger.Debug("reload client disconnected", "clients", n)
}

// broadcast sends ev to every connected client. Clients that fail the
// write are dropped.
func (h *reloadHub) broadcast(ev reloadEvent) {
	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.clients))
	for conn := range h.clients {
		conns = append(conns, conn)
	}
	h.mu.Unlock()

	for _, conn := range conns {
		if err := conn.WriteJSON(ev); err != nil {
			h.logger.Warn("reload broadcast failed", "error", err)
			h.remove(conn)
		}
	}
}

// closeAll disconnects every client, used during shutdown.
func (h *reloadHub) closeAll() {
	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.clients))
	for conn := range h.clients {
		conns = append(conns, conn)
	}
	h.mu.Unlock()

	for _, conn := range conns {
		h.remove(conn)
	}
}
