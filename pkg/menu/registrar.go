package menu

import (
	"log/slog"

	"github.com/atriumhq/atrium/internal/logging"
	"github.com/atriumhq/atrium/pkg/element"
)

// Entry is a candidate for menu registration, produced from a classified
// resource or layout-wrapped route.
type Entry struct {
	Key    string
	Record Record
	Path   element.Path
	// Hidden marks an entry that declared itself out of menu display.
	Hidden bool
}

// FilterFunc decides whether an entry participates in menu registration.
type FilterFunc func(Entry) bool

// Recorder receives menu churn notifications. Implemented by
// observability.Metrics; a nil recorder disables instrumentation.
type Recorder interface {
	MenuAdded()
	MenuRemoved()
	MenuSize(n int)
}

// Registrar mirrors an observed entry list into a Registry. Each Sync
// applies the key-set difference against the previous sync: removals
// first, then an upsert of every current entry.
type Registrar struct {
	registry *Registry
	filter   FilterFunc
	logger   *slog.Logger
	recorder Recorder
	prev     map[string]struct{}
}

// RegistrarOption configures a Registrar.
type RegistrarOption func(*Registrar)

// WithFilter sets the inclusion predicate. The default admits everything.
func WithFilter(filter FilterFunc) RegistrarOption {
	return func(r *Registrar) {
		r.filter = filter
	}
}

// WithLogger sets a structured logger for registration events.
func WithLogger(logger *slog.Logger) RegistrarOption {
	return func(r *Registrar) {
		r.logger = logger
	}
}

// WithRecorder enables menu churn instrumentation.
func WithRecorder(rec Recorder) RegistrarOption {
	return func(r *Registrar) {
		r.recorder = rec
	}
}

// Visible is the standard predicate: it admits every entry that has not
// opted out of menu display.
func Visible(e Entry) bool {
	return !e.Hidden
}

// NewRegistrar creates a registrar bound to registry.
func NewRegistrar(registry *Registry, opts ...RegistrarOption) *Registrar {
	r := &Registrar{
		registry: registry,
		filter:   func(Entry) bool { return true },
		logger:   logging.NewNop(),
		prev:     make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Sync brings the registry in line with entries. Entries rejected by the
// filter are treated as absent. Keys from the previous sync that are no
// longer present are removed first; then every current entry is upserted,
// refreshing metadata for keys that survived the transition.
func (r *Registrar) Sync(entries []Entry) {
	current := make(map[string]struct{}, len(entries))
	kept := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if !r.filter(e) {
			continue
		}
		current[e.Key] = struct{}{}
		kept = append(kept, e)
	}

	for key := range r.prev {
		if _, ok := current[key]; ok {
			continue
		}
		r.registry.Remove(key)
		r.logger.Debug("menu entry removed", "key", key)
		if r.recorder != nil {
			r.recorder.MenuRemoved()
		}
	}

	for _, e := range kept {
		r.registry.Add(e.Record, e.Path)
		r.logger.Debug("menu entry registered", "key", e.Key, "path", e.Path.String())
		if r.recorder != nil {
			r.recorder.MenuAdded()
		}
	}

	r.prev = current
	if r.recorder != nil {
		r.recorder.MenuSize(r.registry.Len())
	}
}

// Close removes every key from the final sync. Safe to call more than once.
func (r *Registrar) Close() {
	for key := range r.prev {
		r.registry.Remove(key)
		if r.recorder != nil {
			r.recorder.MenuRemoved()
		}
	}
	r.prev = make(map[string]struct{})
	if r.recorder != nil {
		r.recorder.MenuSize(r.registry.Len())
	}
}
