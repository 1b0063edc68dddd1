package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
)

// EditEvent is pushed to event stream subscribers after every applied edit.
type EditEvent struct {
	Op     string `json:"op"`
	NodeID string `json:"nodeId,omitempty"`
	Index  *int   `json:"index,omitempty"`
}

// StreamManager handles active SSE connections
type StreamManager struct {
	mu          sync.RWMutex
	subscribers map[string]map[chan<- []byte]struct{} // SessionID -> Set of Channels
	logger      *slog.Logger
}

func NewStreamManager(logger *slog.Logger) *StreamManager {
	return &StreamManager{
		subscribers: make(map[string]map[chan<- []byte]struct{}),
		logger:      logger,
	}
}

// Subscribe registers a listener for a session. The returned func unsubscribes.
func (sm *StreamManager) Subscribe(sessionID string) (<-chan []byte, func()) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	ch := make(chan []byte, 16)
	if _, ok := sm.subscribers[sessionID]; !ok {
		sm.subscribers[sessionID] = make(map[chan<- []byte]struct{})
	}
	sm.subscribers[sessionID][ch] = struct{}{}

	return ch, func() {
		sm.mu.Lock()
		defer sm.mu.Unlock()
		if subs, ok := sm.subscribers[sessionID]; ok {
			if _, ok := subs[ch]; !ok {
				return
			}
			delete(subs, ch)
			close(ch)
			if len(subs) == 0 {
				delete(sm.subscribers, sessionID)
			}
		}
	}
}

// Broadcast sends an event to every subscriber of the session.
func (sm *StreamManager) Broadcast(sessionID string, ev EditEvent) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	subs, ok := sm.subscribers[sessionID]
	if !ok {
		return
	}
	msg, err := json.Marshal(ev)
	if err != nil {
		sm.logger.Error("event encode failed", "err", err)
		return
	}
	for ch := range subs {
		select {
		case ch <- msg:
		default:
			// Drop message if channel is full (slow client)
			sm.logger.Warn("event stream buffer full, dropping message", "session_id", sessionID)
		}
	}
}

// Close ends every subscription for a session, e.g. when it is deleted.
func (sm *StreamManager) Close(sessionID string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	for ch := range sm.subscribers[sessionID] {
		close(ch)
	}
	delete(sm.subscribers, sessionID)
}

// SubscribeEvents handles GET /sessions/{sid}/events (SSE).
func (s *Server) SubscribeEvents(w http.ResponseWriter, r *http.Request, sid SessionID) {
	if _, err := s.sessions.Info(r.Context(), sid); err != nil {
		s.writeError(w, r, err)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeJSON(w, http.StatusInternalServerError, errorBody{Error: "streaming not supported"})
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	ch, cancel := s.streams.Subscribe(sid)
	defer cancel()

	fmt.Fprintf(w, "event: ping\ndata: connected\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			s.logger.Debug("event stream client disconnected", "session_id", sid)
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		}
	}
}
