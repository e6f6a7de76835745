package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/ayusman/mudra/internal/track"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow local connections
	},
}

// EventsHub pushes recognition events to connected WebSocket clients.
// The pipeline feeds it; every connected client receives every message.
type EventsHub struct {
	clients map[*websocket.Conn]bool
	mu      sync.RWMutex
}

// NewEventsHub creates a new EventsHub.
func NewEventsHub() *EventsHub {
	return &EventsHub{
		clients: make(map[*websocket.Conn]bool),
	}
}

// ServeHTTP handles WebSocket upgrade requests.
func (h *EventsHub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		h.mu.Unlock()
	}()

	// Keep connection alive by reading messages
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *EventsHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// BroadcastLock sends a locked gesture event to all connected clients.
func (h *EventsHub) BroadcastLock(event track.Event) {
	h.send(map[string]any{
		"type":      "lock",
		"gesture":   event.Gesture,
		"phrase":    event.Phrase,
		"timestamp": event.TimestampMs,
	})
}

// BroadcastCandidate sends the currently seen gesture label to all connected clients.
func (h *EventsHub) BroadcastCandidate(candidate track.GestureID, timestampMs int64) {
	h.send(map[string]any{
		"type":      "candidate",
		"gesture":   candidate,
		"timestamp": timestampMs,
	})
}

// BroadcastCountdown sends the calibration countdown to all connected clients.
func (h *EventsHub) BroadcastCountdown(seconds int, timestampMs int64) {
	h.send(map[string]any{
		"type":      "countdown",
		"seconds":   seconds,
		"timestamp": timestampMs,
	})
}

func (h *EventsHub) send(payload map[string]any) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if len(h.clients) == 0 {
		return
	}

	msg, err := json.Marshal(payload)
	if err != nil {
		return
	}

	for conn := range h.clients {
		conn.WriteMessage(websocket.TextMessage, msg)
	}
}
