package hub

import (
	"encoding/json"
	"testing"
)

func TestBroadcastReachesOnlyThatEvent(t *testing.T) {
	h := NewHub()
	first := make(Client, 1)
	second := make(Client, 1)
	h.Subscribe(1, first)
	h.Subscribe(2, second)

	h.Publish(AttendeeJoined, 1, 7)

	select {
	case raw := <-first:
		var msg struct {
			Type    string            `json:"type"`
			Payload AttendancePayload `json:"payload"`
		}
		if err := json.Unmarshal(raw, &msg); err != nil {
			t.Fatalf("unmarshal message: %v", err)
		}
		if msg.Type != AttendeeJoined || msg.Payload.EventID != 1 || msg.Payload.GamerID != 7 {
			t.Errorf("message got = %+v, want attendee_joined for event 1 gamer 7", msg)
		}
	default:
		t.Fatal("subscriber of event 1 got nothing")
	}

	select {
	case raw := <-second:
		t.Errorf("subscriber of event 2 got %s, want nothing", raw)
	default:
	}
}

func TestBroadcastSkipsFullClient(t *testing.T) {
	h := NewHub()
	slow := make(Client) // unbuffered and never read
	h.Subscribe(1, slow)

	// Must not block.
	h.Publish(EventUpdated, 1, 0)
}

func TestUnsubscribeClosesClient(t *testing.T) {
	h := NewHub()
	client := make(Client, 1)
	h.Subscribe(3, client)
	if got := h.Subscribers(3); got != 1 {
		t.Fatalf("Subscribers() got = %d, want 1", got)
	}

	h.Unsubscribe(3, client)
	if _, open := <-client; open {
		t.Error("client channel still open after Unsubscribe")
	}
	if got := h.Subscribers(3); got != 0 {
		t.Errorf("Subscribers() after unsubscribe got = %d, want 0", got)
	}

	// A second unsubscribe must not close the channel twice.
	h.Unsubscribe(3, client)
}
