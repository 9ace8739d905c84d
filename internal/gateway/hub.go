// Package gateway owns the websocket edge: it tracks connections, fans
// events out to them, and translates inbound frames into engine calls.
package gateway

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog/log"

	"brainrush/internal/metrics"
	"brainrush/internal/protocol"
)

// Hub is the connection registry. It satisfies the engine's emitter port:
// sends are non-blocking and drop when a client's queue is full.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
}

func NewHub() *Hub {
	return &Hub{clients: make(map[string]*Client)}
}

// Register adds a connection to the registry.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c.ID] = c
	metrics.ConnectedClients.Inc()
}

// Unregister removes a connection and closes its outbound queue.
func (h *Hub) Unregister(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.clients[clientID]; ok {
		close(c.Send)
		delete(h.clients, clientID)
		metrics.ConnectedClients.Dec()
	}
}

// ToClient queues an event frame for one connection. Unknown IDs are ignored:
// the connection may have gone away between the engine's decision and this
// send.
func (h *Hub) ToClient(clientID, event string, data any) {
	frame, err := encodeFrame(event, data)
	if err != nil {
		log.Error().Err(err).Str("event", event).Msg("encode frame failed")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	if c, ok := h.clients[clientID]; ok {
		select {
		case c.Send <- frame:
		default:
		}
	}
}

// Broadcast queues an event frame for every connection.
func (h *Hub) Broadcast(event string, data any) {
	frame, err := encodeFrame(event, data)
	if err != nil {
		log.Error().Err(err).Str("event", event).Msg("encode frame failed")
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, c := range h.clients {
		select {
		case c.Send <- frame:
		default:
		}
	}
}

func encodeFrame(event string, data any) ([]byte, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	return json.Marshal(protocol.Frame{Event: event, Data: payload})
}
