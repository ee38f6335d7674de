package menu

import (
	"sort"
	"sync"

	"github.com/atriumhq/atrium/pkg/element"
)

// Record is one navigation entry. The store performs no validation: missing
// label or icon simply yield a record with empty fields.
type Record struct {
	Key   string `json:"key"`
	Label string `json:"label,omitempty"`
	Icon  string `json:"icon,omitempty"`
}

type registered struct {
	record Record
	path   element.Path
	seq    uint64
}

// Registry maps keys to navigation records, organized hierarchically by the
// path each record was registered at. Safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	records map[string]*registered
	seq     uint64
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		records: make(map[string]*registered),
	}
}

// Add upserts a record at the given path. A record with the same key is
// overwritten, relocating it if the path changed; its original insertion
// position is kept so menu order stays stable across metadata refreshes.
func (r *Registry) Add(rec Record, path element.Path) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.records[rec.Key]; ok {
		prev.record = rec
		prev.path = path
		return
	}
	r.seq++
	r.records[rec.Key] = &registered{record: rec, path: path, seq: r.seq}
}

// Remove deletes the record with the given key. Unknown keys are a no-op.
func (r *Registry) Remove(key string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.records, key)
}

// Get returns the record for key and whether it exists.
func (r *Registry) Get(key string) (Record, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reg, ok := r.records[key]
	if !ok {
		return Record{}, false
	}
	return reg.record, true
}

// Path returns the path the record with key was registered at.
func (r *Registry) Path(key string) (element.Path, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reg, ok := r.records[key]
	if !ok {
		return nil, false
	}
	return reg.path, true
}

// Records returns a flat snapshot in registration order.
func (r *Registry) Records() []Record {
	r.mu.RLock()
	defer r.mu.RUnlock()
	regs := r.snapshotLocked()
	out := make([]Record, len(regs))
	for i, reg := range regs {
		out[i] = reg.record
	}
	return out
}

// Len returns the number of registered records.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.records)
}

func (r *Registry) snapshotLocked() []*registered {
	regs := make([]*registered, 0, len(r.records))
	for _, reg := range r.records {
		regs = append(regs, reg)
	}
	sort.Slice(regs, func(i, j int) bool { return regs[i].seq < regs[j].seq })
	return regs
}
