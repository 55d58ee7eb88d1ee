package sse

import (
	"sync"
)

// Subscriber identifies an inbox: one employee inside one tenant.
type Subscriber struct {
	TenantID   int64
	EmployeeID int64
}

// Event is a single server-sent event
type Event struct {
	Name string
	Data any
}

// Hub fans events out to the open streams of each subscriber
type Hub struct {
	mu          sync.RWMutex
	buffer      int
	closed      bool
	subscribers map[Subscriber]map[chan Event]struct{}
}

// NewHub creates a hub whose per-stream channels hold buffer events.
func NewHub(buffer int) *Hub {
	if buffer <= 0 {
		buffer = 10
	}
	return &Hub{
		buffer:      buffer,
		subscribers: make(map[Subscriber]map[chan Event]struct{}),
	}
}

// Subscribe opens a stream for sub. The returned cleanup closes the channel
// and is safe to call more than once. After Close the channel comes back
// already closed.
func (h *Hub) Subscribe(sub Subscriber) (<-chan Event, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	ch := make(chan Event, h.buffer)
	if h.closed {
		close(ch)
		return ch, func() {}
	}
	if h.subscribers[sub] == nil {
		h.subscribers[sub] = make(map[chan Event]struct{})
	}
	h.subscribers[sub][ch] = struct{}{}

	var once sync.Once
	cleanup := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if _, ok := h.subscribers[sub][ch]; !ok {
				return
			}
			delete(h.subscribers[sub], ch)
			close(ch)
			if len(h.subscribers[sub]) == 0 {
				delete(h.subscribers, sub)
			}
		})
	}
	return ch, cleanup
}

// Publish delivers event to every open stream of sub. Streams with a full
// buffer miss the event.
func (h *Hub) Publish(sub Subscriber, event Event) int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for ch := range h.subscribers[sub] {
		select {
		case ch <- event:
			delivered++
		default:
		}
	}
	return delivered
}

// Close ends every open stream. Later subscriptions are closed on arrival.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for sub, subs := range h.subscribers {
		for ch := range subs {
			close(ch)
		}
		delete(h.subscribers, sub)
	}
}

// SubscriberCount returns the number of open streams for sub
func (h *Hub) SubscriberCount(sub Subscriber) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers[sub])
}

// TotalSubscribers returns the number of open streams across all inboxes
func (h *Hub) TotalSubscribers() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	total := 0
	for _, subs := range h.subscribers {
		total += len(subs)
	}
	return total
}
