package live

import (
	"context"
	"log"
	"sync"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Conn wraps a single page's websocket.
type Conn struct {
	ID     string
	ws     *websocket.Conn
	mu     sync.Mutex // protects ws writes and closed
	closed bool
}

// NewConn assigns the connection a fresh ID.
func NewConn(ws *websocket.Conn) *Conn {
	return &Conn{
		ID: uuid.New().String(),
		ws: ws,
	}
}

// Send serializes msg to JSON and writes it to the websocket.
func (c *Conn) Send(msg any) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return nil
	}
	return c.ws.WriteMessage(websocket.TextMessage, data)
}

// Close marks the connection closed and closes the socket.
func (c *Conn) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	c.ws.Close()
}

// ReadLoop decodes client messages into inbox until the socket fails or ctx
// is done, then closes inbox.
func (c *Conn) ReadLoop(ctx context.Context, inbox chan<- ClientMessage) {
	defer close(inbox)

	for {
		_, raw, err := c.ws.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("ws read error for %s: %v", c.ID, err)
			}
			return
		}

		var msg ClientMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			log.Printf("bad message from %s: %v", c.ID, err)
			continue
		}
		select {
		case inbox <- msg:
		case <-ctx.Done():
			return
		}
	}
}

// ConnManager tracks open sessions.
type ConnManager struct {
	mu    sync.RWMutex
	conns map[string]*Conn
}

func NewConnManager() *ConnManager {
	return &ConnManager{conns: make(map[string]*Conn)}
}

// TryAdd registers c unless limit sessions are already open.
func (m *ConnManager) TryAdd(c *Conn, limit int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.conns) >= limit {
		return false
	}
	m.conns[c.ID] = c
	return true
}

func (m *ConnManager) Remove(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.conns, id)
}

// Count returns the number of open sessions.
func (m *ConnManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.conns)
}
