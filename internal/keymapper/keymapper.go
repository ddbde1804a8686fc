// Package keymapper issues short string keys for server-side objects so they
// can be referenced by the browser and resolved again when the browser sends
// the key back.
package keymapper

import (
	"reflect"
	"strconv"
)

// NullKey is the key returned for a nil object.
const NullKey = "null"

// IdentityFunc extracts the identity of an object. Two objects with the same
// identity share a key.
type IdentityFunc[T any, ID comparable] func(T) ID

// KeyMapper is a bijection between object identities and string keys. Keys
// are allocated from a counter that only ever increases, so a key is never
// handed out twice during the lifetime of a mapper, even after removal.
//
// A KeyMapper is not safe for concurrent use.
type KeyMapper[T any, ID comparable] struct {
	identity IdentityFunc[T, ID]
	keys     map[ID]string // identity -> key
	objects  map[string]T  // key -> object
	last     uint64
}

// New constructs a mapper that uses the object itself as its identity.
func New[T comparable]() *KeyMapper[T, T] {
	return NewWithIdentity(func(obj T) T { return obj })
}

// NewWithIdentity constructs a mapper that derives identity using fn.
func NewWithIdentity[T any, ID comparable](fn IdentityFunc[T, ID]) *KeyMapper[T, ID] {
	return &KeyMapper[T, ID]{
		identity: fn,
		keys:     make(map[ID]string),
		objects:  make(map[string]T),
	}
}

// Key returns the key for obj, allocating a new one if its identity has not
// been seen before.
func (m *KeyMapper[T, ID]) Key(obj T) string {
	if isNil(obj) {
		return NullKey
	}
	id := m.identity(obj)
	if key, ok := m.keys[id]; ok {
		return key
	}
	m.last++
	key := strconv.FormatUint(m.last, 10)
	m.keys[id] = key
	m.objects[key] = obj
	return key
}

// Has reports whether the identity of obj has been assigned a key.
func (m *KeyMapper[T, ID]) Has(obj T) bool {
	if isNil(obj) {
		return false
	}
	_, ok := m.keys[m.identity(obj)]
	return ok
}

// Get returns the object associated with key.
func (m *KeyMapper[T, ID]) Get(key string) (T, bool) {
	obj, ok := m.objects[key]
	return obj, ok
}

// ContainsKey reports whether key currently resolves to an object.
func (m *KeyMapper[T, ID]) ContainsKey(key string) bool {
	_, ok := m.objects[key]
	return ok
}

// Remove deletes the association for the identity of obj.
func (m *KeyMapper[T, ID]) Remove(obj T) {
	if isNil(obj) {
		return
	}
	id := m.identity(obj)
	key, ok := m.keys[id]
	if !ok {
		return
	}
	delete(m.keys, id)
	delete(m.objects, key)
}

// RemoveAll deletes every association. Keys allocated afterwards continue
// from where the counter left off.
func (m *KeyMapper[T, ID]) RemoveAll() {
	clear(m.keys)
	clear(m.objects)
}

// Refresh replaces the object stored under the key for the identity of obj,
// for when the same logical entity is now represented by a different
// instance. It does nothing if the identity has no key.
func (m *KeyMapper[T, ID]) Refresh(obj T) {
	if isNil(obj) {
		return
	}
	if key, ok := m.keys[m.identity(obj)]; ok {
		m.objects[key] = obj
	}
}

// SetIdentityFunc replaces the identity function and recomputes the identity
// of every stored object. Keys and the objects they resolve to are left as
// they are.
//
// If two stored objects share an identity under fn, only one of them keeps an
// identity mapping; the other remains reachable by key but Key will no longer
// return its key. Which one wins is unspecified.
func (m *KeyMapper[T, ID]) SetIdentityFunc(fn IdentityFunc[T, ID]) {
	m.identity = fn
	clear(m.keys)
	for key, obj := range m.objects {
		m.keys[fn(obj)] = key
	}
}

// Len returns the number of live associations.
func (m *KeyMapper[T, ID]) Len() int {
	return len(m.objects)
}

func isNil(obj any) bool {
	if obj == nil {
		return true
	}
	v := reflect.ValueOf(obj)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
