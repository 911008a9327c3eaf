package server

import (
	"sync"

	"github.com/gorilla/websocket"
)

// ThemeMessage is pushed to subscribers when a visitor's theme changes.
type ThemeMessage struct {
	Type   string `json:"type"`
	Theme  string `json:"theme"`
	Source string `json:"source,omitempty"`
}

// connWithMutex wraps a WebSocket connection with its own mutex for thread-safe writes.
type connWithMutex struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// Hub tracks theme websocket subscribers grouped by visitor.
type Hub struct {
	mu       sync.RWMutex
	visitors map[string]map[*websocket.Conn]*connWithMutex
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{visitors: make(map[string]map[*websocket.Conn]*connWithMutex)}
}

// Add subscribes conn to visitor's theme changes.
func (h *Hub) Add(visitor string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	conns, ok := h.visitors[visitor]
	if !ok {
		conns = make(map[*websocket.Conn]*connWithMutex)
		h.visitors[visitor] = conns
	}
	conns[conn] = &connWithMutex{conn: conn}
	wsConnections.Inc()
}

// Remove unsubscribes conn. Removing an unknown connection is a no-op.
func (h *Hub) Remove(visitor string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	conns, ok := h.visitors[visitor]
	if !ok {
		return
	}
	if _, ok := conns[conn]; !ok {
		return
	}
	delete(conns, conn)
	wsConnections.Dec()
	if len(conns) == 0 {
		delete(h.visitors, visitor)
	}
}

// Count returns the number of subscribers for visitor.
func (h *Hub) Count(visitor string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.visitors[visitor])
}

// Broadcast sends msg to every connection of visitor and returns how many
// writes succeeded. Dead connections are dropped.
func (h *Hub) Broadcast(visitor string, msg ThemeMessage) int {
	h.mu.RLock()
	conns := make([]*connWithMutex, 0, len(h.visitors[visitor]))
	for _, cwm := range h.visitors[visitor] {
		conns = append(conns, cwm)
	}
	h.mu.RUnlock()

	sent := 0
	for _, cwm := range conns {
		if err := h.write(cwm, msg); err != nil {
			h.Remove(visitor, cwm.conn)
			continue
		}
		sent++
	}
	return sent
}

// Send writes msg to a single subscribed connection.
func (h *Hub) Send(visitor string, conn *websocket.Conn, msg ThemeMessage) error {
	h.mu.RLock()
	cwm, ok := h.visitors[visitor][conn]
	h.mu.RUnlock()
	if !ok {
		return conn.WriteJSON(msg)
	}
	return h.write(cwm, msg)
}

func (h *Hub) write(cwm *connWithMutex, msg ThemeMessage) error {
	cwm.mu.Lock()
	defer cwm.mu.Unlock()
	return cwm.conn.WriteJSON(msg)
}

// CloseAll closes every subscribed connection. Their read loops then fail and
// unsubscribe themselves.
func (h *Hub) CloseAll() {
	h.mu.RLock()
	var conns []*websocket.Conn
	for _, byConn := range h.visitors {
		for conn := range byConn {
			conns = append(conns, conn)
		}
	}
	h.mu.RUnlock()

	for _, conn := range conns {
		conn.Close()
	}
}
