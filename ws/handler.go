package ws

import (
	"net/http"

	"worknest_backend/internal/auth"
	"worknest_backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // origin checked at the proxy
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

type WebSocketHandler struct {
	Manager *WebSocketManager
	tokens  *auth.TokenIssuer
}

func NewWebSocketHandler(manager *WebSocketManager, tokens *auth.TokenIssuer) *WebSocketHandler {
	return &WebSocketHandler{
		Manager: manager,
		tokens:  tokens,
	}
}

// ServeWS upgrades the connection and joins the caller to a signaling
// room. Browsers cannot set headers on websocket dials, so the access
// token rides in the query string. The room ID itself is only obtainable
// through the admission-gated room endpoint.
func (h *WebSocketHandler) ServeWS(c *gin.Context) {
	claims, err := h.tokens.Verify(c.Query("token"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or missing token"})
		return
	}

	roomID := c.Query("room_id")
	if roomID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "'room_id' query parameter is required"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("websocket upgrade failed", "error", err.Error())
		return
	}

	client := &Client{
		UserID:  claims.UserID,
		RoomID:  roomID,
		Conn:    conn,
		Send:    make(chan OutgoingMessage, 256),
		Manager: h.Manager,
	}

	h.Manager.register <- client

	go client.readPump()
	go client.writePump()

	client.Send <- OutgoingMessage{
		Event: "room-joined",
		Payload: map[string]interface{}{
			"room_id": roomID,
			"peers":   h.Manager.RoomSize(roomID),
		},
	}
	h.Manager.BroadcastToRoom(roomID, client, OutgoingMessage{
		Event:   "peer-joined",
		Payload: map[string]string{"user_id": claims.UserID},
	})
}
