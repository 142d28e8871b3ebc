package ws

import (
	"encoding/json"

	"worknest_backend/internal/logger"

	"github.com/gorilla/websocket"
)

type IncomingMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type Client struct {
	UserID string
	RoomID string
	Conn   *websocket.Conn
	Send   chan OutgoingMessage

	Manager *WebSocketManager
}

func (c *Client) readPump() {
	defer func() {
		c.Manager.unregister <- c
		c.Conn.Close()
	}()

	for {
		_, msgBytes, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Debug("websocket read error", "user_id", c.UserID, "error", err.Error())
			}
			break
		}

		var msg IncomingMessage
		if err := json.Unmarshal(msgBytes, &msg); err != nil {
			logger.Debug("failed to parse signaling message", "user_id", c.UserID, "error", err.Error())
			continue
		}

		c.handleMessage(msg)
	}
}

func (c *Client) writePump() {
	for msg := range c.Send {
		if err := c.Conn.WriteJSON(msg); err != nil {
			logger.Debug("websocket write error", "user_id", c.UserID, "error", err.Error())
			break
		}
	}
}

// handleMessage relays signaling events between the two peers of an
// interview room. Payloads are opaque to the server: SDP offers and
// answers and ICE candidates pass through untouched.
func (c *Client) handleMessage(msg IncomingMessage) {
	switch msg.Event {

	case "start-video-call":
		c.Manager.BroadcastToRoom(c.RoomID, c, OutgoingMessage{
			Event:   "incoming-call",
			Payload: map[string]string{"from": c.UserID},
		})

	case "offer", "answer", "ice-candidate":
		c.Manager.BroadcastToRoom(c.RoomID, c, OutgoingMessage{
			Event:   msg.Event,
			Payload: msg.Data,
		})

	case "leave-room":
		c.Manager.BroadcastToRoom(c.RoomID, c, OutgoingMessage{
			Event:   "peer-left",
			Payload: map[string]string{"user_id": c.UserID},
		})

	default:
		logger.Debug("unhandled signaling event", "event", msg.Event, "user_id", c.UserID)
	}
}
