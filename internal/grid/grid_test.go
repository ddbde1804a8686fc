package grid

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type person struct {
	ID   string
	Name string
}

func newPeopleGrid() *Grid[*person, string] {
	return New(func(p *person) string { return p.ID },
		Column[*person]{
			Header: "Name",
			Value:  func(p *person) string { return p.Name },
			Link:   func(key string) string { return "/app/person/row=" + key },
		},
	)
}

func TestGrid_SetItems(t *testing.T) {
	t.Run("keys survive new instances", func(t *testing.T) {
		g := newPeopleGrid()
		g.SetItems([]*person{{ID: "a", Name: "Ann"}, {ID: "b", Name: "Bob"}})
		key := g.Key(&person{ID: "a"})

		renamed := &person{ID: "a", Name: "Anne"}
		g.SetItems([]*person{renamed, {ID: "b", Name: "Bob"}})

		assert.Equal(t, key, g.Key(renamed))
		got, ok := g.Item(key)
		require.True(t, ok)
		assert.Same(t, renamed, got)
	})

	t.Run("dropped items release keys", func(t *testing.T) {
		g := newPeopleGrid()
		g.SetItems([]*person{{ID: "a"}, {ID: "b"}})
		keyB := g.Key(&person{ID: "b"})

		g.SetItems([]*person{{ID: "a"}})

		_, ok := g.Item(keyB)
		assert.False(t, ok)
		assert.Len(t, g.Items(), 1)
		// b comes back with a new key
		assert.NotEqual(t, keyB, g.Key(&person{ID: "b"}))
	})

	t.Run("clear", func(t *testing.T) {
		g := newPeopleGrid()
		g.SetItems([]*person{{ID: "a"}})
		key := g.Key(&person{ID: "a"})
		g.Clear()
		_, ok := g.Item(key)
		assert.False(t, ok)
		assert.Empty(t, g.Items())
	})

	t.Run("unknown key", func(t *testing.T) {
		g := newPeopleGrid()
		got, ok := g.Item("42")
		assert.False(t, ok)
		assert.Nil(t, got)
	})

	t.Run("switch identity", func(t *testing.T) {
		g := newPeopleGrid()
		ann := &person{ID: "a", Name: "Ann"}
		g.SetItems([]*person{ann})
		key := g.Key(ann)

		g.SetIdentityFunc(func(p *person) string { return p.Name })

		assert.Equal(t, key, g.Key(&person{ID: "other", Name: "Ann"}))
	})
}

func TestGrid_Render(t *testing.T) {
	g := newPeopleGrid()
	g.Caption = "People & pets"
	g.SetItems([]*person{{ID: "a", Name: "<Ann>"}, {ID: "b", Name: "Bob"}})

	var b strings.Builder
	require.NoError(t, g.Render(context.Background(), &b))
	got := b.String()

	assert.Contains(t, got, "<caption>People &amp; pets</caption>")
	assert.Contains(t, got, "<th>Name</th>")
	assert.Contains(t, got, `<tr data-key="1"><td><a href="/app/person/row=1">&lt;Ann&gt;</a></td></tr>`)
	assert.Contains(t, got, `<tr data-key="2">`)
}
