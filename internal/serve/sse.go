package serve

import (
	"fmt"
	"net/http"
	"sync"
)

// reloadHub fans one-line messages out to connected dev clients. A
// subscriber that falls behind misses the message; the browser only
// acts on the most recent reload anyway.
type reloadHub struct {
	mu   sync.Mutex
	next int
	subs map[int]chan string
}

func newReloadHub() *reloadHub {
	return &reloadHub{subs: make(map[int]chan string)}
}

// subscribe returns a message channel and the func that detaches it.
// The channel is never closed; once detached it simply goes quiet.
func (h *reloadHub) subscribe() (<-chan string, func()) {
	h.mu.Lock()
	defer h.mu.Unlock()

	id := h.next
	h.next++
	ch := make(chan string, 4)
	h.subs[id] = ch

	return ch, func() {
		h.mu.Lock()
		defer h.mu.Unlock()
		delete(h.subs, id)
	}
}

func (h *reloadHub) notify(msg string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, ch := range h.subs {
		select {
		case ch <- msg:
		default:
		}
	}
}

func (s *Server) handleSSE(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}
	hdr := w.Header()
	hdr.Set("Content-Type", "text/event-stream")
	hdr.Set("Cache-Control", "no-cache")
	hdr.Set("Connection", "keep-alive")

	events, detach := s.hub.subscribe()
	defer detach()

	// 先发一条，确认流已经建立
	fmt.Fprint(w, "data: hello\n\n")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case msg := <-events:
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		}
	}
}
