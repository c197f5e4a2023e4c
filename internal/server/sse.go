package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/jonathan/resume-matcher/internal/pipeline"
)

// SSEWriter helps write Server-Sent Events
type SSEWriter struct {
	w       http.ResponseWriter
	flusher http.Flusher
}

// NewSSEWriter creates a new SSE writer
func NewSSEWriter(w http.ResponseWriter) (*SSEWriter, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("streaming not supported")
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	return &SSEWriter{w: w, flusher: flusher}, nil
}

// WriteEvent sends an SSE event
func (s *SSEWriter) WriteEvent(event string, data any) error {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(s.w, "event: %s\n", event); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(s.w, "data: %s\n\n", jsonData); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}

// stateHub fans state snapshots out to stream subscribers. Slow subscribers
// skip intermediate snapshots rather than block the pipeline: each channel
// holds one pending snapshot and a newer one replaces it.
type stateHub struct {
	mu     sync.Mutex
	subs   map[chan pipeline.State]struct{}
	closed bool
}

func newStateHub() *stateHub {
	return &stateHub{subs: make(map[chan pipeline.State]struct{})}
}

func (h *stateHub) subscribe() chan pipeline.State {
	ch := make(chan pipeline.State, 1)
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		close(ch)
		return ch
	}
	h.subs[ch] = struct{}{}
	return ch
}

func (h *stateHub) unsubscribe(ch chan pipeline.State) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.subs[ch]; ok {
		delete(h.subs, ch)
		close(ch)
	}
}

func (h *stateHub) broadcast(state pipeline.State) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for ch := range h.subs {
		select {
		case ch <- state:
		default:
			// Drop the stale pending snapshot and queue the new one.
			select {
			case <-ch:
			default:
			}
			ch <- state
		}
	}
}

func (h *stateHub) close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	for ch := range h.subs {
		close(ch)
	}
	h.subs = make(map[chan pipeline.State]struct{})
}

// handleStateStream streams state snapshots as SSE events. The current state
// is sent immediately so a reconnecting client never waits for the next
// transition.
func (s *Server) handleStateStream(w http.ResponseWriter, r *http.Request) {
	sse, err := NewSSEWriter(w)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "streaming not supported")
		return
	}

	ch := s.hub.subscribe()
	defer s.hub.unsubscribe(ch)

	if err := sse.WriteEvent("state", s.orch.Snapshot()); err != nil {
		return
	}

	for {
		select {
		case <-r.Context().Done():
			return
		case state, ok := <-ch:
			if !ok {
				return
			}
			if err := sse.WriteEvent("state", state); err != nil {
				return
			}
		}
	}
}
