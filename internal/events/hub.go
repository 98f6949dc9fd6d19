// Package events fans session-change notifications out to connected listeners.
package events

import (
	"sync"
	"time"
)

type Type string

const (
	SignedIn     Type = "SIGNED_IN"
	SignedUp     Type = "SIGNED_UP"
	SignedOut    Type = "SIGNED_OUT"
	ModeResolved Type = "MODE_RESOLVED"
)

type Event struct {
	Type   Type      `json:"type"`
	UserID string    `json:"user_id,omitempty"`
	Mode   string    `json:"mode,omitempty"`
	At     time.Time `json:"at"`
}

const subscriberBuffer = 16

// Hub delivers every published event to every subscriber. A subscriber that does not
// keep up loses events rather than blocking the publisher.
type Hub struct {
	mu     sync.Mutex
	subs   map[chan Event]struct{}
	closed bool
}

func NewHub() *Hub {
	return &Hub{subs: map[chan Event]struct{}{}}
}

// Subscribe returns a channel of events and a function that releases it.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, subscriberBuffer)

	h.mu.Lock()
	if h.closed {
		close(ch)
		h.mu.Unlock()
		return ch, func() {}
	}
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if _, ok := h.subs[ch]; ok {
				delete(h.subs, ch)
				close(ch)
			}
		})
	}
}

func (h *Hub) Publish(e Event) {
	if e.At.IsZero() {
		e.At = time.Now()
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for ch := range h.subs {
		select {
		case ch <- e:
		default:
		}
	}
}

// Close ends every subscription.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for ch := range h.subs {
		delete(h.subs, ch)
		close(ch)
	}
}
