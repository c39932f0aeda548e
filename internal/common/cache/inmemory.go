package cache

import (
	"context"
	"sync"
	"time"
)

type entry[T any] struct {
	value T
	expAt time.Time
}

func (e entry[T]) expired(now time.Time) bool {
	return !e.expAt.IsZero() && e.expAt.Before(now)
}

// InMemoryClient is a per-process cache. Values are stored as is, callers
// must not mutate what they get back.
type InMemoryClient[T any] struct {
	mu      sync.RWMutex
	entries map[string]entry[T]
	now     func() time.Time
}

func NewInMemoryClient[T any]() *InMemoryClient[T] {
	return &InMemoryClient[T]{
		entries: make(map[string]entry[T]),
		now:     time.Now,
	}
}

func (m *InMemoryClient[T]) Get(_ context.Context, key string) (result T, err error) {
	m.mu.RLock()
	e, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok {
		return result, ErrNotExists
	}
	if e.expired(m.now()) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return result, ErrNotExists
	}

	return e.value, nil
}

// Set stores object for ttl. A non-positive ttl never expires.
func (m *InMemoryClient[T]) Set(_ context.Context, key string, object T, ttl time.Duration) error {
	e := entry[T]{value: object}
	if ttl > 0 {
		e.expAt = m.now().Add(ttl)
	}

	m.mu.Lock()
	m.entries[key] = e
	m.mu.Unlock()
	return nil
}

func (m *InMemoryClient[T]) Del(_ context.Context, key string) error {
	m.mu.Lock()
	delete(m.entries, key)
	m.mu.Unlock()
	return nil
}

// Purge drops every expired entry.
func (m *InMemoryClient[T]) Purge() {
	now := m.now()
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, e := range m.entries {
		if e.expired(now) {
			delete(m.entries, k)
		}
	}
}
