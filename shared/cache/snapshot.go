package cache

import (
	"time"

	goCache "github.com/patrickmn/go-cache"
)

// Snapshot keeps short lived copies of read models in process memory.
// Writers call Invalidate before returning so readers never see their own stale writes.
type Snapshot[T any] interface {
	Get(key string) (T, bool)
	Set(key string, value T)
	Invalidate()
}

type memorySnapshot[T any] struct {
	store *goCache.Cache
	ttl   time.Duration
}

// NewMemorySnapshot returns a Snapshot backed by go-cache. A non positive ttl disables caching.
func NewMemorySnapshot[T any](ttl time.Duration) Snapshot[T] {
	if ttl <= 0 {
		return NewNoopSnapshot[T]()
	}

	return &memorySnapshot[T]{
		store: goCache.New(ttl, 2*ttl),
		ttl:   ttl,
	}
}

func (m *memorySnapshot[T]) Get(key string) (T, bool) {
	var zero T

	value, found := m.store.Get(key)
	if !found {
		return zero, false
	}

	typed, ok := value.(T)
	if !ok {
		return zero, false
	}

	return typed, true
}

func (m *memorySnapshot[T]) Set(key string, value T) {
	m.store.Set(key, value, m.ttl)
}

func (m *memorySnapshot[T]) Invalidate() {
	m.store.Flush()
}

type noopSnapshot[T any] struct{}

// NewNoopSnapshot returns a Snapshot that never holds anything.
func NewNoopSnapshot[T any]() Snapshot[T] {
	return noopSnapshot[T]{}
}

func (noopSnapshot[T]) Get(string) (T, bool) {
	var zero T

	return zero, false
}

func (noopSnapshot[T]) Set(string, T) {}

func (noopSnapshot[T]) Invalidate() {}
