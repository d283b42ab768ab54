package registry

import (
	"log/slog"
	"sync"

	"go.uber.org/atomic"

	"github.com/specialistvlad/dtreg/dtype"
)

// Registry is the catalog of all data types known to this node. It owns one
// ordered store per kind and a one-way freeze flag.
//
// A single mutex covers the collision-check-then-mutate sequence and the
// freeze transition, so registration and querying may overlap in time; once
// Freeze has been called the registry is effectively immutable and readers
// never contend.
type Registry struct {
	mu     sync.RWMutex
	frozen atomic.Bool
	msgs   kindStore
	srvs   kindStore
	log    *slog.Logger
}

// Option configures a Registry at construction time.
type Option func(*Registry)

// WithLogger attaches a logger for registration and lifecycle events.
// Query paths never log.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		r.log = logger
	}
}

// New creates an empty, unfrozen registry.
func New(opts ...Option) *Registry {
	r := &Registry{log: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// store returns the kind's store, or nil for an invalid kind.
func (r *Registry) store(kind dtype.Kind) *kindStore {
	switch kind {
	case dtype.KindMessage:
		return &r.msgs
	case dtype.KindService:
		return &r.srvs
	default:
		return nil
	}
}

// Freeze permanently closes the registry for mutation. The node calls it
// once before processing any bus traffic; further calls have no effect.
// There is no way to unfreeze.
func (r *Registry) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.frozen.Load() {
		return
	}
	r.frozen.Store(true)
	r.log.Info("data type registry frozen",
		"message_types", r.msgs.len(),
		"service_types", r.srvs.len(),
	)
}

// Frozen reports whether the registry still accepts registrations.
func (r *Registry) Frozen() bool {
	return r.frozen.Load()
}

// NumMessageTypes returns the number of registered message types.
func (r *Registry) NumMessageTypes() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.msgs.len()
}

// NumServiceTypes returns the number of registered service types.
func (r *Registry) NumServiceTypes() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.srvs.len()
}

// Reset empties both stores and clears the freeze flag, as if the process
// had just started. It exists for test harnesses only and is not part of the
// production lifecycle, which never leaves the frozen state.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.log.Debug("data type registry reset",
		"was_frozen", r.frozen.Load(),
		"message_types", r.msgs.len(),
		"service_types", r.srvs.len(),
	)
	for _, e := range r.msgs.entries {
		e.slot.desc = nil
	}
	for _, e := range r.srvs.entries {
		e.slot.desc = nil
	}
	r.msgs.entries = nil
	r.srvs.entries = nil
	r.frozen.Store(false)
}
