package internal

import (
	"sync"
)

// SafeMap is a concurrency-safe map
type SafeMap[K comparable, V any] struct {
	m  map[K]V
	mu sync.RWMutex
}

// NewSafeMap constructs an empty SafeMap, with the given key and value types.
func NewSafeMap[K comparable, V any]() *SafeMap[K, V] {
	return &SafeMap[K, V]{
		m: make(map[K]V),
	}
}

func (r *SafeMap[K, V]) Set(key K, value V) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.m[key] = value
}

func (r *SafeMap[K, V]) Get(key K) (V, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	value, ok := r.m[key]
	return value, ok
}

// GetOrSet returns the existing value for key if present. Otherwise it sets
// and returns the value constructed by fn. The bool is true if the value was
// already present.
func (r *SafeMap[K, V]) GetOrSet(key K, fn func() V) (V, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if value, ok := r.m[key]; ok {
		return value, true
	}
	value := fn()
	r.m[key] = value
	return value, false
}

func (r *SafeMap[K, V]) Delete(key K) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.m, key)
}

// DeleteFunc deletes every entry for which del returns true, returning the
// number deleted.
func (r *SafeMap[K, V]) DeleteFunc(del func(K, V) bool) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	var n int
	for k, v := range r.m {
		if del(k, v) {
			delete(r.m, k)
			n++
		}
	}
	return n
}

// Values returns a copy of every value, in no particular order.
func (r *SafeMap[K, V]) Values() []V {
	r.mu.RLock()
	defer r.mu.RUnlock()

	values := make([]V, 0, len(r.m))
	for _, v := range r.m {
		values = append(values, v)
	}
	return values
}

func (r *SafeMap[K, V]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.m)
}
