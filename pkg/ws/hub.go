// Package ws runs live listing sessions over WebSocket. Each connection owns
// its own listing controller; the client sends criteria events and receives
// the recomputed view after every transition.
package ws

import (
	"sync"

	"go.uber.org/zap"
)

// Hub tracks the open sessions.
type Hub struct {
	logger     *zap.Logger
	sessions   map[*Session]bool
	register   chan *Session
	unregister chan *Session
	mu         sync.RWMutex
}

// NewHub creates a hub.
func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		logger:     logger,
		sessions:   make(map[*Session]bool),
		register:   make(chan *Session),
		unregister: make(chan *Session),
	}
}

// Run processes session registration. Call in its own goroutine.
func (h *Hub) Run() {
	for {
		select {
		case session := <-h.register:
			h.mu.Lock()
			h.sessions[session] = true
			n := len(h.sessions)
			h.mu.Unlock()
			h.logger.Info("Listing session opened", zap.Int("total_sessions", n))

		case session := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.sessions[session]; ok {
				delete(h.sessions, session)
				close(session.send)
			}
			n := len(h.sessions)
			h.mu.Unlock()
			h.logger.Info("Listing session closed", zap.Int("total_sessions", n))
		}
	}
}

// SessionCount returns the number of open sessions.
func (h *Hub) SessionCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}
