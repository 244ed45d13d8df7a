package registration

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Instance is one mounted registration view.
type Instance struct {
	ID     string
	Form   *Form
	Outbox *Outbox
}

type registryEntry struct {
	instance *Instance
	lastSeen time.Time
}

// Registry keeps mounted forms between requests. Instances idle longer than
// the ttl are unmounted by Sweep.
type Registry struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	logger  zerolog.Logger
	entries map[string]*registryEntry
}

func NewRegistry(ttl time.Duration, logger zerolog.Logger) *Registry {
	return &Registry{
		ttl:     ttl,
		now:     time.Now,
		logger:  logger,
		entries: map[string]*registryEntry{},
	}
}

func (r *Registry) Mount(backend Backend, payload EditPayload) *Instance {
	outbox := &Outbox{}
	id := uuid.NewString()
	inst := &Instance{
		ID:     id,
		Outbox: outbox,
		Form:   New(backend, outbox, outbox, payload, WithLogger(r.logger.With().Str("formId", id).Logger())),
	}
	r.mu.Lock()
	r.entries[id] = &registryEntry{instance: inst, lastSeen: r.now()}
	r.mu.Unlock()
	return inst
}

func (r *Registry) Get(id string) (*Instance, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	entry, ok := r.entries[id]
	if !ok {
		return nil, false
	}
	entry.lastSeen = r.now()
	return entry.instance, true
}

func (r *Registry) Unmount(id string) {
	r.mu.Lock()
	entry, ok := r.entries[id]
	delete(r.entries, id)
	r.mu.Unlock()
	if ok {
		entry.instance.Form.Unmount()
	}
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

// Sweep unmounts idle instances and returns how many were dropped.
func (r *Registry) Sweep() int {
	if r.ttl <= 0 {
		return 0
	}
	cutoff := r.now().Add(-r.ttl)
	var expired []*Instance
	r.mu.Lock()
	for id, entry := range r.entries {
		if entry.lastSeen.Before(cutoff) {
			expired = append(expired, entry.instance)
			delete(r.entries, id)
		}
	}
	r.mu.Unlock()
	for _, inst := range expired {
		inst.Form.Unmount()
	}
	return len(expired)
}

// Run sweeps on every tick until ctx is done.
func (r *Registry) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := r.Sweep(); n > 0 {
				r.logger.Debug().Int("count", n).Msg("unmounted idle forms")
			}
		}
	}
}
