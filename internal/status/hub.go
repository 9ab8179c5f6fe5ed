package status

import (
	"sync"
	"time"

	"github.com/bryanchriswhite/swaybar-helper/internal/config"
)

// Update is one rendered status line.
type Update struct {
	Category config.Category `json:"category"`
	Line     string          `json:"line"`
	Time     time.Time       `json:"time"`
}

// Hub fans rendered lines out to secondary consumers. It only remembers the
// latest line; slow listeners miss updates instead of stalling the loop.
type Hub struct {
	mu        sync.RWMutex
	current   *Update
	listeners []chan Update
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{
		listeners: make([]chan Update, 0),
	}
}

// Publish records u as the latest update and offers it to every listener.
func (h *Hub) Publish(u Update) {
	h.mu.Lock()
	h.current = &u
	h.mu.Unlock()

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, listener := range h.listeners {
		select {
		case listener <- u:
		default:
			// Skip if channel is full
		}
	}
}

// Current returns the latest update, if any.
func (h *Hub) Current() (Update, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.current == nil {
		return Update{}, false
	}
	return *h.current, true
}

// Subscribe adds a listener for new updates.
func (h *Hub) Subscribe() chan Update {
	ch := make(chan Update, 10)
	h.mu.Lock()
	h.listeners = append(h.listeners, ch)
	h.mu.Unlock()
	return ch
}

// Unsubscribe removes a listener and closes its channel.
func (h *Hub) Unsubscribe(ch chan Update) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for i, listener := range h.listeners {
		if listener == ch {
			h.listeners = append(h.listeners[:i], h.listeners[i+1:]...)
			close(ch)
			break
		}
	}
}
