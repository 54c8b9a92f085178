package hub

import (
	"encoding/json"
	"log"
	"sync"
)

// Event types published for an event's attendance feed.
const (
	AttendeeJoined = "attendee_joined"
	AttendeeLeft   = "attendee_left"
	EventUpdated   = "event_updated"
	EventDeleted   = "event_deleted"
)

// Message is a real-time notification sent to subscribers of one event.
type Message struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// AttendancePayload identifies the event and, where relevant, the gamer involved.
type AttendancePayload struct {
	EventID uint `json:"event_id"`
	GamerID uint `json:"gamer_id,omitempty"`
}

// Client is a single subscriber. The SSE handler drains it until it is closed.
type Client chan []byte

// Hub fans out messages to the subscribers of each event.
type Hub struct {
	events map[uint]map[Client]bool
	mu     sync.RWMutex
}

// GlobalHub is the process-wide hub used by the HTTP handlers.
var GlobalHub = NewHub()

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{
		events: make(map[uint]map[Client]bool),
	}
}

// Subscribe adds a client to an event's feed.
func (h *Hub) Subscribe(eventID uint, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.events[eventID]; !ok {
		h.events[eventID] = make(map[Client]bool)
	}
	h.events[eventID][client] = true
}

// Unsubscribe removes a client from an event's feed and closes it.
func (h *Hub) Unsubscribe(eventID uint, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.events[eventID]; ok {
		if _, ok := clients[client]; ok {
			delete(clients, client)
			close(client)
			if len(clients) == 0 {
				delete(h.events, eventID)
			}
		}
	}
}

// Subscribers returns the number of clients listening to an event.
func (h *Hub) Subscribers(eventID uint) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.events[eventID])
}

// Broadcast sends a message to every client of an event.
// A client whose buffer is full misses the message.
func (h *Hub) Broadcast(eventID uint, msg Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	clients, ok := h.events[eventID]
	if !ok {
		return
	}

	messageBytes, err := json.Marshal(msg)
	if err != nil {
		log.Printf("hub: marshal %s for event %d: %v", msg.Type, eventID, err)
		return
	}

	for client := range clients {
		select {
		case client <- messageBytes:
		default:
		}
	}
}

// Publish is a shorthand for broadcasting an attendance change.
func (h *Hub) Publish(eventType string, eventID, gamerID uint) {
	h.Broadcast(eventID, Message{
		Type:    eventType,
		Payload: AttendancePayload{EventID: eventID, GamerID: gamerID},
	})
}
