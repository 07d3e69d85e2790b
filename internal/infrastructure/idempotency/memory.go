// Package idempotency provides the in-process Idempotency-Key store used when
// no Redis instance is configured.
package idempotency

import (
	"context"
	"sync"
	"time"

	"github.com/supercash/backoffice/internal/core/ports"
)

const defaultTTL = 24 * time.Hour

type entry struct {
	guideID string
	expires time.Time
}

// Memory is a TTL map of idempotency keys. Expired keys are purged lazily.
type Memory struct {
	mu   sync.Mutex
	keys map[string]entry
	ttl  time.Duration
	now  func() time.Time
}

// NewMemory creates an empty store. A non-positive ttl uses 24h.
func NewMemory(ttl time.Duration) *Memory {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Memory{keys: make(map[string]entry), ttl: ttl, now: time.Now}
}

func (m *Memory) Lookup(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.keys[key]
	if !ok {
		return "", false, nil
	}
	if m.now().After(e.expires) {
		delete(m.keys, key)
		return "", false, nil
	}
	return e.guideID, true, nil
}

// Remember records guideID for key unless a live entry already exists.
func (m *Memory) Remember(_ context.Context, key, guideID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	if e, ok := m.keys[key]; ok && !now.After(e.expires) {
		return nil
	}
	m.keys[key] = entry{guideID: guideID, expires: now.Add(m.ttl)}
	return nil
}

var _ ports.IdempotencyStore = (*Memory)(nil)
