package keymapper

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	ID    string
	Email string
}

func byID(r *row) string    { return r.ID }
func byEmail(r *row) string { return r.Email }

func TestKeyMapper(t *testing.T) {
	t.Run("same identity same key", func(t *testing.T) {
		m := NewWithIdentity(byID)
		k1 := m.Key(&row{ID: "a"})
		k2 := m.Key(&row{ID: "a"})
		assert.Equal(t, "1", k1)
		assert.Equal(t, k1, k2)
		assert.Equal(t, 1, m.Len())
	})

	t.Run("distinct identities get increasing keys", func(t *testing.T) {
		m := NewWithIdentity(byID)
		assert.Equal(t, "1", m.Key(&row{ID: "a"}))
		assert.Equal(t, "2", m.Key(&row{ID: "b"}))
		assert.Equal(t, "3", m.Key(&row{ID: "c"}))
	})

	t.Run("get returns stored object", func(t *testing.T) {
		m := NewWithIdentity(byID)
		a := &row{ID: "a"}
		got, ok := m.Get(m.Key(a))
		require.True(t, ok)
		assert.Same(t, a, got)

		_, ok = m.Get("99")
		assert.False(t, ok)
	})

	t.Run("has does not allocate", func(t *testing.T) {
		m := NewWithIdentity(byID)
		a := &row{ID: "a"}
		assert.False(t, m.Has(a))
		assert.Equal(t, 0, m.Len())
		m.Key(a)
		assert.True(t, m.Has(&row{ID: "a"}))
	})

	t.Run("nil object", func(t *testing.T) {
		m := NewWithIdentity(byID)
		m.Key(&row{ID: "a"})
		assert.Equal(t, NullKey, m.Key(nil))
		assert.Equal(t, "null", m.Key(nil))
		assert.False(t, m.Has(nil))
		m.Remove(nil)
		m.Refresh(nil)
		assert.Equal(t, 1, m.Len())
		// nil does not consume a key
		assert.Equal(t, "2", m.Key(&row{ID: "b"}))
	})

	t.Run("remove", func(t *testing.T) {
		m := NewWithIdentity(byID)
		a := &row{ID: "a"}
		key := m.Key(a)
		m.Remove(&row{ID: "a"})
		assert.False(t, m.Has(a))
		assert.False(t, m.ContainsKey(key))
		_, ok := m.Get(key)
		assert.False(t, ok)

		// removing again is a no-op
		m.Remove(a)
		// key is not reused
		assert.Equal(t, "2", m.Key(a))
	})

	t.Run("remove all keeps counter", func(t *testing.T) {
		m := NewWithIdentity(byID)
		var last uint64
		for _, id := range []string{"a", "b", "c"} {
			n, err := strconv.ParseUint(m.Key(&row{ID: id}), 10, 64)
			require.NoError(t, err)
			last = n
		}
		m.RemoveAll()
		assert.Equal(t, 0, m.Len())
		for _, id := range []string{"a", "b", "c"} {
			assert.False(t, m.Has(&row{ID: id}))
		}
		next, err := strconv.ParseUint(m.Key(&row{ID: "a"}), 10, 64)
		require.NoError(t, err)
		assert.Greater(t, next, last)
	})

	t.Run("refresh replaces instance", func(t *testing.T) {
		m := NewWithIdentity(byID)
		old := &row{ID: "a", Email: "old@example.com"}
		key := m.Key(old)
		updated := &row{ID: "a", Email: "new@example.com"}
		m.Refresh(updated)
		got, ok := m.Get(key)
		require.True(t, ok)
		assert.Same(t, updated, got)
	})

	t.Run("refresh does not allocate", func(t *testing.T) {
		m := NewWithIdentity(byID)
		m.Refresh(&row{ID: "a"})
		assert.Equal(t, 0, m.Len())
		assert.Equal(t, "1", m.Key(&row{ID: "a"}))
	})

	t.Run("contains key", func(t *testing.T) {
		m := NewWithIdentity(byID)
		key := m.Key(&row{ID: "a"})
		assert.True(t, m.ContainsKey(key))
		assert.False(t, m.ContainsKey("2"))
		assert.False(t, m.ContainsKey(NullKey))
	})

	t.Run("object as its own identity", func(t *testing.T) {
		m := New[*row]()
		a := &row{ID: "a"}
		key := m.Key(a)
		assert.Equal(t, key, m.Key(a))
		// different instance, different identity
		assert.NotEqual(t, key, m.Key(&row{ID: "a"}))
	})

	t.Run("value types", func(t *testing.T) {
		m := New[string]()
		assert.Equal(t, "1", m.Key("x"))
		assert.Equal(t, "1", m.Key("x"))
		// the empty string is not nil
		assert.Equal(t, "2", m.Key(""))
	})
}

func TestKeyMapper_SetIdentityFunc(t *testing.T) {
	t.Run("agreeing functions keep keys", func(t *testing.T) {
		m := NewWithIdentity(byID)
		a := &row{ID: "a", Email: "a@example.com"}
		b := &row{ID: "b", Email: "b@example.com"}
		keyA, keyB := m.Key(a), m.Key(b)

		m.SetIdentityFunc(func(r *row) string { return r.ID })

		assert.Equal(t, keyA, m.Key(a))
		assert.Equal(t, keyB, m.Key(b))
		assert.Equal(t, 2, m.Len())
	})

	t.Run("rebuild under new identity", func(t *testing.T) {
		m := NewWithIdentity(byID)
		a := &row{ID: "a", Email: "a@example.com"}
		key := m.Key(a)

		m.SetIdentityFunc(byEmail)

		assert.True(t, m.Has(&row{ID: "other", Email: "a@example.com"}))
		assert.False(t, m.Has(&row{ID: "a", Email: "changed@example.com"}))
		assert.Equal(t, key, m.Key(&row{Email: "a@example.com"}))
		got, ok := m.Get(key)
		require.True(t, ok)
		assert.Same(t, a, got)
	})

	t.Run("colliding identities overwrite silently", func(t *testing.T) {
		m := NewWithIdentity(byID)
		a := &row{ID: "a", Email: "shared@example.com"}
		b := &row{ID: "b", Email: "shared@example.com"}
		keyA, keyB := m.Key(a), m.Key(b)

		m.SetIdentityFunc(byEmail)

		// both objects remain reachable by key
		assert.True(t, m.ContainsKey(keyA))
		assert.True(t, m.ContainsKey(keyB))
		// but the shared identity resolves to only one of them
		assert.Contains(t, []string{keyA, keyB}, m.Key(a))
		assert.Equal(t, m.Key(a), m.Key(b))
	})
}
