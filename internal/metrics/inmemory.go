package metrics

import (
	"sync"
	"sync/atomic"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	Created          map[string]uint64
	Updated          map[string]uint64
	Deleted          map[string]uint64
	ValidationFailed map[string]uint64
	PersistFailed    map[string]uint64
	ViewCacheHits    uint64
	ViewCacheMisses  uint64
	LoginSuccesses   uint64
	LoginFailures    uint64
}

// InMemoryRecorder stores metrics in memory for tests.
type InMemoryRecorder struct {
	mu               sync.Mutex
	created          map[string]uint64
	updated          map[string]uint64
	deleted          map[string]uint64
	validationFailed map[string]uint64
	persistFailed    map[string]uint64
	viewCacheHits    uint64
	viewCacheMisses  uint64
	loginSuccesses   uint64
	loginFailures    uint64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{
		created:          make(map[string]uint64),
		updated:          make(map[string]uint64),
		deleted:          make(map[string]uint64),
		validationFailed: make(map[string]uint64),
		persistFailed:    make(map[string]uint64),
	}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()

	return Snapshot{
		Created:          copyCounters(m.created),
		Updated:          copyCounters(m.updated),
		Deleted:          copyCounters(m.deleted),
		ValidationFailed: copyCounters(m.validationFailed),
		PersistFailed:    copyCounters(m.persistFailed),
		ViewCacheHits:    atomic.LoadUint64(&m.viewCacheHits),
		ViewCacheMisses:  atomic.LoadUint64(&m.viewCacheMisses),
		LoginSuccesses:   atomic.LoadUint64(&m.loginSuccesses),
		LoginFailures:    atomic.LoadUint64(&m.loginFailures),
	}
}

// IncCreated increments the created counter for an entity.
func (m *InMemoryRecorder) IncCreated(entity string) {
	m.inc(m.created, entity)
}

// IncUpdated increments the updated counter for an entity.
func (m *InMemoryRecorder) IncUpdated(entity string) {
	m.inc(m.updated, entity)
}

// IncDeleted increments the deleted counter for an entity.
func (m *InMemoryRecorder) IncDeleted(entity string) {
	m.inc(m.deleted, entity)
}

// IncValidationFailed increments the validation failure counter for an entity.
func (m *InMemoryRecorder) IncValidationFailed(entity string) {
	m.inc(m.validationFailed, entity)
}

// IncPersistFailed increments the persistence failure counter for an entity.
func (m *InMemoryRecorder) IncPersistFailed(entity string) {
	m.inc(m.persistFailed, entity)
}

// IncViewCacheHit increments the view cache hit counter.
func (m *InMemoryRecorder) IncViewCacheHit() {
	atomic.AddUint64(&m.viewCacheHits, 1)
}

// IncViewCacheMiss increments the view cache miss counter.
func (m *InMemoryRecorder) IncViewCacheMiss() {
	atomic.AddUint64(&m.viewCacheMisses, 1)
}

// IncLoginSuccess increments the successful login counter.
func (m *InMemoryRecorder) IncLoginSuccess() {
	atomic.AddUint64(&m.loginSuccesses, 1)
}

// IncLoginFailed increments the failed login counter.
func (m *InMemoryRecorder) IncLoginFailed() {
	atomic.AddUint64(&m.loginFailures, 1)
}

func (m *InMemoryRecorder) inc(counters map[string]uint64, entity string) {
	m.mu.Lock()
	counters[entity]++
	m.mu.Unlock()
}

func copyCounters(src map[string]uint64) map[string]uint64 {
	dst := make(map[string]uint64, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
