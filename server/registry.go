package server

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ramandeep-singh77/glassbox/engine"
)

// defaultCapacity bounds the registry; traces are rebuildable on demand,
// so evicting the oldest loses nothing that a second POST cannot recover.
const defaultCapacity = 256

// storedTrace is one registry entry.
type storedTrace struct {
	id       string
	scenario string
	trace    *engine.Trace
	created  time.Time
}

// Registry keeps built traces in memory for the lifetime of the process.
// There is no persistence across restarts; clients hold the id and replay
// through the step endpoint.
type Registry struct {
	mu       sync.RWMutex
	traces   map[string]*storedTrace
	capacity int
}

// NewRegistry builds a registry holding at most capacity traces;
// capacity below one selects the default.
func NewRegistry(capacity int) *Registry {
	if capacity < 1 {
		capacity = defaultCapacity
	}

	return &Registry{
		traces:   make(map[string]*storedTrace, capacity),
		capacity: capacity,
	}
}

// Put stores a trace under a fresh id and returns the id. When the
// registry is full the oldest entry is evicted first.
func (r *Registry) Put(scenario string, tr *engine.Trace) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.traces) >= r.capacity {
		r.evictOldestLocked()
	}

	id := uuid.NewString()
	r.traces[id] = &storedTrace{
		id:       id,
		scenario: scenario,
		trace:    tr,
		created:  time.Now().UTC(),
	}

	return id
}

// Get returns the stored entry for id.
func (r *Registry) Get(id string) (*storedTrace, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	st, ok := r.traces[id]

	return st, ok
}

// Len reports how many traces are currently stored.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.traces)
}

func (r *Registry) evictOldestLocked() {
	var oldest *storedTrace
	for _, st := range r.traces {
		if oldest == nil || st.created.Before(oldest.created) {
			oldest = st
		}
	}
	if oldest != nil {
		delete(r.traces, oldest.id)
	}
}
