package ws

import (
	"sync"

	"worknest_backend/internal/logger"
)

// OutgoingMessage is the envelope every event pushed to a client uses.
type OutgoingMessage struct {
	Event   string      `json:"event"`
	Payload interface{} `json:"payload,omitempty"`
}

// WebSocketManager tracks signaling clients grouped by interview room.
// A client belongs to at most one room at a time.
type WebSocketManager struct {
	rooms      map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
}

func NewWebSocketManager() *WebSocketManager {
	return &WebSocketManager{
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

func (manager *WebSocketManager) Run() {
	for {
		select {
		case client := <-manager.register:
			manager.addToRoom(client)

		case client := <-manager.unregister:
			manager.removeFromRoom(client)
		}
	}
}

func (manager *WebSocketManager) addToRoom(client *Client) {
	manager.mu.Lock()
	defer manager.mu.Unlock()

	room, ok := manager.rooms[client.RoomID]
	if !ok {
		room = make(map[*Client]bool)
		manager.rooms[client.RoomID] = room
	}
	room[client] = true

	logger.Debug("signaling client joined room",
		"user_id", client.UserID, "room_id", client.RoomID, "peers", len(room))
}

func (manager *WebSocketManager) removeFromRoom(client *Client) {
	manager.mu.Lock()
	defer manager.mu.Unlock()

	room, ok := manager.rooms[client.RoomID]
	if !ok {
		return
	}
	if _, ok := room[client]; !ok {
		return
	}

	close(client.Send)
	delete(room, client)
	if len(room) == 0 {
		delete(manager.rooms, client.RoomID)
	}

	logger.Debug("signaling client left room",
		"user_id", client.UserID, "room_id", client.RoomID, "peers", len(room))
}

// BroadcastToRoom sends an event to every client in the room except the
// sender. Pass a nil sender to reach everyone.
func (manager *WebSocketManager) BroadcastToRoom(roomID string, sender *Client, msg OutgoingMessage) {
	manager.mu.RLock()
	defer manager.mu.RUnlock()

	for client := range manager.rooms[roomID] {
		if client == sender {
			continue
		}
		select {
		case client.Send <- msg:
		default:
			// Send buffer full, drop the slow client
			go func(c *Client) {
				manager.unregister <- c
			}(client)
		}
	}
}

// NotifyRoom pushes a server-originated event into a room. It satisfies
// the notifier the interview service publishes schedule events through.
func (manager *WebSocketManager) NotifyRoom(roomID, event string, payload interface{}) {
	manager.BroadcastToRoom(roomID, nil, OutgoingMessage{Event: event, Payload: payload})
}

// RoomSize returns how many clients are currently in the room.
func (manager *WebSocketManager) RoomSize(roomID string) int {
	manager.mu.RLock()
	defer manager.mu.RUnlock()
	return len(manager.rooms[roomID])
}
