package main

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/roleplaykit/go-statuswin/pkg/bindings"
)

// previewEnvelope is pushed to connected editors whenever the bindings
// change. HTML carries the freshly rendered preview document.
type previewEnvelope struct {
	Type string `json:"type"`
	HTML string `json:"html,omitempty"`
}

type clientConn struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

func (c *clientConn) send(value any) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	return c.conn.WriteJSON(value)
}

// previewHub tracks connected editors and the current variable bindings.
type previewHub struct {
	mu      sync.Mutex
	vars    bindings.Bindings
	clients map[*clientConn]struct{}
}

func newPreviewHub(vars bindings.Bindings) *previewHub {
	if vars == nil {
		vars = bindings.Bindings{}
	}
	return &previewHub{
		vars:    vars,
		clients: make(map[*clientConn]struct{}),
	}
}

func (h *previewHub) addClient(client *clientConn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = struct{}{}
}

func (h *previewHub) removeClient(client *clientConn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.clients, client)
}

func (h *previewHub) snapshotVars() bindings.Bindings {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make(bindings.Bindings, len(h.vars))
	for k, v := range h.vars {
		out[k] = v
	}
	return out
}

// mergeVars overlays the incoming values onto the current bindings. A nil
// value removes the variable so renders fall back to the blank policy.
func (h *previewHub) mergeVars(incoming map[string]any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for k, v := range incoming {
		if v == nil {
			delete(h.vars, k)
			continue
		}
		h.vars[k] = v
	}
}

func (h *previewHub) broadcast(envelope previewEnvelope) {
	h.mu.Lock()
	clients := make([]*clientConn, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	h.mu.Unlock()

	for _, client := range clients {
		if err := client.send(envelope); err != nil {
			slog.Debug("drop stale preview client", "error", err)
			h.removeClient(client)
			_ = client.conn.Close()
		}
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(_ *http.Request) bool { return true },
}
