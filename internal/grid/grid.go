// Package grid renders tabular data, tagging each row with a key that the
// browser sends back to identify the row.
package grid

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/leg100/viewport/internal/keymapper"
)

// Column is a column of a Grid.
type Column[T any] struct {
	Header string
	Value  func(T) string
	// Link optionally turns the cell into a link, given the row key.
	Link func(key string) string
}

// Grid is a table of items. It is a templ.Component. A Grid is not safe for
// concurrent use.
type Grid[T any, ID comparable] struct {
	Columns []Column[T]
	// Caption is rendered above the table if non-empty.
	Caption string

	keys   *keymapper.KeyMapper[T, ID]
	items  []T
	active map[string]struct{}
}

// New constructs a grid identifying items with fn.
func New[T any, ID comparable](fn keymapper.IdentityFunc[T, ID], columns ...Column[T]) *Grid[T, ID] {
	return &Grid[T, ID]{
		Columns: columns,
		keys:    keymapper.NewWithIdentity(fn),
		active:  make(map[string]struct{}),
	}
}

// SetItems replaces the items in the grid. Items that were already present,
// as determined by their identity, keep their key and the key resolves to
// the new instance. Keys of items no longer present are released.
func (g *Grid[T, ID]) SetItems(items []T) {
	active := make(map[string]struct{}, len(items))
	for _, item := range items {
		if g.keys.Has(item) {
			g.keys.Refresh(item)
		}
		active[g.keys.Key(item)] = struct{}{}
	}
	for key := range g.active {
		if _, ok := active[key]; ok {
			continue
		}
		if item, ok := g.keys.Get(key); ok {
			g.keys.Remove(item)
		}
	}
	g.items = items
	g.active = active
}

// Items returns the current items.
func (g *Grid[T, ID]) Items() []T { return g.items }

// Key returns the key for item, issuing one if necessary.
func (g *Grid[T, ID]) Key(item T) string { return g.keys.Key(item) }

// Item returns the item for a key sent by the browser.
func (g *Grid[T, ID]) Item(key string) (T, bool) {
	return g.keys.Get(key)
}

// Clear removes all items and releases every key.
func (g *Grid[T, ID]) Clear() {
	g.keys.RemoveAll()
	g.items = nil
	clear(g.active)
}

// SetIdentityFunc changes how items are identified. Existing keys still
// resolve to their items.
func (g *Grid[T, ID]) SetIdentityFunc(fn keymapper.IdentityFunc[T, ID]) {
	g.keys.SetIdentityFunc(fn)
}

func (g *Grid[T, ID]) Render(ctx context.Context, w io.Writer) error {
	if _, err := io.WriteString(w, `<table class="grid">`); err != nil {
		return err
	}
	if g.Caption != "" {
		if _, err := fmt.Fprintf(w, "<caption>%s</caption>", templ.EscapeString(g.Caption)); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "<thead><tr>"); err != nil {
		return err
	}
	for _, col := range g.Columns {
		if _, err := fmt.Fprintf(w, "<th>%s</th>", templ.EscapeString(col.Header)); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, "</tr></thead><tbody>"); err != nil {
		return err
	}
	for _, item := range g.items {
		key := g.keys.Key(item)
		if _, err := fmt.Fprintf(w, `<tr data-key="%s">`, templ.EscapeString(key)); err != nil {
			return err
		}
		for _, col := range g.Columns {
			if err := renderCell(w, col, item, key); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "</tr>"); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</tbody></table>")
	return err
}

func renderCell[T any](w io.Writer, col Column[T], item T, key string) error {
	value := templ.EscapeString(col.Value(item))
	if col.Link != nil {
		href := templ.EscapeString(string(templ.URL(col.Link(key))))
		_, err := fmt.Fprintf(w, `<td><a href="%s">%s</a></td>`, href, value)
		return err
	}
	_, err := fmt.Fprintf(w, "<td>%s</td>", value)
	return err
}
