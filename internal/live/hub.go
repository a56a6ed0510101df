package live

import (
	"context"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/jglims/portfolio/internal/i18n"
)

const (
	// MaxSessions bounds concurrently animated pages.
	MaxSessions = 200
	// MaxMessageSize bounds a single client message in bytes.
	MaxMessageSize = 4096
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:    1024,
	WriteBufferSize:   8192,
	EnableCompression: true,
}

// Hub accepts websocket sessions.
type Hub struct {
	catalog   *i18n.Catalog
	page      Page
	frameRate int
	conns     *ConnManager
}

// NewHub returns a hub rendering frameRate particle frames per second.
func NewHub(catalog *i18n.Catalog, page Page, frameRate int) *Hub {
	if frameRate < 1 {
		frameRate = 60
	}
	return &Hub{
		catalog:   catalog,
		page:      page,
		frameRate: frameRate,
		conns:     NewConnManager(),
	}
}

// Count returns the number of open sessions.
func (h *Hub) Count() int { return h.conns.Count() }

// ServeWS upgrades the request and runs a session until the page goes away.
// prefs is the visitor's preference store.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request, prefs i18n.PreferenceStore) {
	ws, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	ws.SetReadLimit(MaxMessageSize)

	// Check limits after upgrade so the client can receive the error
	conn := NewConn(ws)
	if !h.conns.TryAdd(conn, MaxSessions) {
		_ = conn.Send(ErrorMsg{Type: MsgError, Message: "Too many open pages, animation disabled."})
		conn.Close()
		return
	}
	defer func() {
		h.conns.Remove(conn.ID)
		conn.Close()
	}()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	inbox := make(chan ClientMessage, 32)
	go conn.ReadLoop(ctx, inbox)

	newSession(conn, h.catalog, h.page, h.frameRate, prefs).Run(ctx, inbox)
}
