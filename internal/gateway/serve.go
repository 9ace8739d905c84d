package gateway

import (
	"context"
	"encoding/json"

	"github.com/coder/websocket"
	"github.com/rs/zerolog/log"

	"brainrush/internal/protocol"
)

// Handler is the inbound side of the realtime edge, implemented by the game
// engine.
type Handler interface {
	Join(clientID, name string)
	DashboardJoin(clientID, password string)
	StartRun(clientID string)
	SubmitAnswer(clientID string, answerIndex int)
	Disconnect(clientID string)
}

// ServeClient runs a connection's read loop until the peer goes away, then
// tears the connection down on both sides. The caller is expected to have
// registered the client and started its WritePump.
func (h *Hub) ServeClient(ctx context.Context, c *Client, handler Handler) {
	defer func() {
		handler.Disconnect(c.ID)
		h.Unregister(c.ID)
		c.Conn.Close(websocket.StatusNormalClosure, "")
	}()

	for {
		_, data, err := c.Conn.Read(ctx)
		if err != nil {
			return
		}

		var frame protocol.Frame
		if err := json.Unmarshal(data, &frame); err != nil {
			log.Debug().Err(err).Str("client", c.ID).Msg("bad frame")
			continue
		}
		h.dispatch(c.ID, frame, handler)
	}
}

// dispatch routes one inbound frame. Malformed payloads are dropped; the
// connection stays up.
func (h *Hub) dispatch(clientID string, frame protocol.Frame, handler Handler) {
	switch frame.Event {
	case protocol.EventStudentJoin:
		// The payload is the raw player name as a JSON string.
		var name string
		if err := json.Unmarshal(frame.Data, &name); err != nil {
			log.Debug().Err(err).Str("client", clientID).Msg("bad student-join payload")
			return
		}
		handler.Join(clientID, name)

	case protocol.EventDashboardJoin:
		var req protocol.DashboardJoin
		if err := json.Unmarshal(frame.Data, &req); err != nil {
			log.Debug().Err(err).Str("client", clientID).Msg("bad dashboard-join payload")
			return
		}
		handler.DashboardJoin(clientID, req.Password)

	case protocol.EventStartGame:
		handler.StartRun(clientID)

	case protocol.EventSubmitAnswer:
		var req protocol.SubmitAnswer
		if err := json.Unmarshal(frame.Data, &req); err != nil {
			log.Debug().Err(err).Str("client", clientID).Msg("bad submit-answer payload")
			return
		}
		handler.SubmitAnswer(clientID, req.AnswerIndex)

	default:
		log.Debug().Str("client", clientID).Str("event", frame.Event).Msg("unknown event")
	}
}
