package dedup

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// DefaultRetention is how long a product name suppresses re-delivery. A name
// that reappears after the window has expired is treated as new again; this
// bounds memory and tolerates feeds that legitimately reuse names after long
// gaps.
const DefaultRetention = 6 * time.Hour

// Registry is the shared record of product names already delivered, with the
// time each was last seen. All feeds consult a single Registry: the
// namespace is global, so a name seen on one feed suppresses the same name
// on every other feed. Safe for concurrent use; FilterNew runs under one
// critical section so no caller observes a partially-updated registry.
type Registry struct {
	mu        sync.Mutex
	lastSeen  map[string]time.Time
	retention time.Duration
	now       func() time.Time
	logger    zerolog.Logger
}

// NewRegistry creates a registry with the given retention window. A
// non-positive retention falls back to DefaultRetention.
func NewRegistry(retention time.Duration, logger zerolog.Logger) *Registry {
	if retention <= 0 {
		retention = DefaultRetention
	}
	return &Registry{
		lastSeen:  make(map[string]time.Time),
		retention: retention,
		now:       time.Now,
		logger:    logger.With().Str("component", "DedupRegistry").Logger(),
	}
}

// FilterNew walks names in order and returns the ones not seen within the
// retention window, preserving the input order. Every input name has its last-seen
// time set to now, so a name already present only has its retention clock
// refreshed. A duplicate within the input itself is registered by its first
// occurrence and filtered from the rest. Entries older than the retention
// window are evicted before returning; this is the only destruction path.
func (r *Registry) FilterNew(names []string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	out := make([]string, 0, len(names))

	for _, name := range names {
		if seenAt, seen := r.lastSeen[name]; seen && now.Sub(seenAt) < r.retention {
			r.lastSeen[name] = now
			continue
		}
		r.logger.Trace().Str("name", name).Msg("new file")
		r.lastSeen[name] = now
		out = append(out, name)
	}

	before := len(r.lastSeen)
	for name, seenAt := range r.lastSeen {
		if now.Sub(seenAt) >= r.retention {
			delete(r.lastSeen, name)
		}
	}
	if evicted := before - len(r.lastSeen); evicted > 0 {
		r.logger.Trace().Int("evicted", evicted).Int("remaining", len(r.lastSeen)).Msg("culled stale entries")
	}

	return out
}

// Len reports the number of tracked names.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.lastSeen)
}
