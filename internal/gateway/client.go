package gateway

import (
	"context"

	"github.com/coder/websocket"
)

// Client is a single websocket connection. Outbound frames go through the
// buffered Send channel so a slow reader never blocks the engine.
type Client struct {
	ID   string
	Conn *websocket.Conn
	Send chan []byte
}

// NewClient wraps an accepted connection with a fresh outbound queue.
func NewClient(id string, conn *websocket.Conn) *Client {
	return &Client{
		ID:   id,
		Conn: conn,
		Send: make(chan []byte, 64),
	}
}

// WritePump drains the Send channel onto the wire until the channel closes,
// the context ends, or a write fails.
func (c *Client) WritePump(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-c.Send:
			if !ok {
				return
			}
			if err := c.Conn.Write(ctx, websocket.MessageText, msg); err != nil {
				return
			}
		}
	}
}
