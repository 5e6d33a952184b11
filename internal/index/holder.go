package index

import (
	"inkwell/internal/domain/site"
	"sync"
)

// Snapshot is one published build: a store together with the route list
// derived from it. The two always travel as a pair, so a route in a
// snapshot always resolves against that same snapshot's store.
type Snapshot struct {
	Store  *Store
	Routes []site.Route
}

// Holder publishes the current snapshot to readers while a rebuild
// swaps in the next one. Readers get whole snapshots, never a store
// mid-construction.
type Holder struct {
	mu   sync.RWMutex
	snap *Snapshot
}

func NewHolder() *Holder {
	return &Holder{}
}

// Current returns the latest published snapshot, or nil before the
// first Replace.
func (h *Holder) Current() *Snapshot {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.snap
}

func (h *Holder) Replace(snap *Snapshot) {
	h.mu.Lock()
	h.snap = snap
	h.mu.Unlock()
}
