// Package idpstate implements the shared session-state notification hub
// used by the identity provider adapters.
package idpstate

import (
	"sync"

	domainauth "github.com/campusapps/studentdir/internal/domain/auth"
	"github.com/campusapps/studentdir/internal/ports"
)

// Hub tracks the current identity and fans state changes out to
// subscribers. Notifications are delivered by a single goroutine, in order:
// a provider operation returning does not imply its notification has been
// observed yet, which is the ordering contract session consumers rely on.
type Hub struct {
	mu      sync.Mutex
	current *domainauth.Identity
	subs    map[int]ports.StateCallback
	nextSub int

	deliveries chan func()
	closeOnce  sync.Once
	closed     chan struct{}
}

// NewHub constructs a hub and starts its delivery goroutine. Call Close
// when done.
func NewHub() *Hub {
	h := &Hub{
		subs:       make(map[int]ports.StateCallback),
		deliveries: make(chan func(), 64),
		closed:     make(chan struct{}),
	}
	go h.deliverLoop()
	return h
}

// Close stops notification delivery. Pending notifications are dropped.
func (h *Hub) Close() {
	h.closeOnce.Do(func() { close(h.closed) })
}

func (h *Hub) deliverLoop() {
	for {
		select {
		case fn := <-h.deliveries:
			fn()
		case <-h.closed:
			return
		}
	}
}

func (h *Hub) enqueue(fn func()) {
	select {
	case h.deliveries <- fn:
	case <-h.closed:
	}
}

// Current returns a copy of the current identity, or nil when signed out.
func (h *Hub) Current() *domainauth.Identity {
	h.mu.Lock()
	defer h.mu.Unlock()
	return CloneIdentity(h.current)
}

// SetCurrent records the new state and schedules a notification to every
// subscriber.
func (h *Hub) SetCurrent(id *domainauth.Identity) {
	h.mu.Lock()
	h.current = CloneIdentity(id)
	snapshot := CloneIdentity(h.current)
	cbs := make([]ports.StateCallback, 0, len(h.subs))
	for _, cb := range h.subs {
		cbs = append(cbs, cb)
	}
	h.mu.Unlock()

	h.enqueue(func() {
		for _, cb := range cbs {
			cb(CloneIdentity(snapshot))
		}
	})
}

// Subscribe registers cb and schedules an initial notification carrying the
// current state, then returns an unsubscribe handle.
func (h *Hub) Subscribe(cb ports.StateCallback) func() {
	h.mu.Lock()
	token := h.nextSub
	h.nextSub++
	h.subs[token] = cb
	id := CloneIdentity(h.current)
	h.mu.Unlock()

	h.enqueue(func() { cb(id) })

	return func() {
		h.mu.Lock()
		delete(h.subs, token)
		h.mu.Unlock()
	}
}

// CloneIdentity returns a defensive copy so callbacks cannot mutate hub state.
func CloneIdentity(id *domainauth.Identity) *domainauth.Identity {
	if id == nil {
		return nil
	}
	c := *id
	return &c
}
