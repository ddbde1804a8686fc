package navigator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/iancoleman/strcase"
)

// Provider resolves navigation states to views.
type Provider interface {
	// ViewName returns the name of the view the provider can supply for the
	// given navigation state. The name must be a prefix of the state.
	ViewName(state string) (string, bool)
	// View returns the view for a name previously returned by ViewName.
	View(name string) (View, error)
}

// StaticProvider provides a single view instance under a fixed name.
type StaticProvider struct {
	name string
	view View
}

func NewStaticProvider(name string, view View) *StaticProvider {
	return &StaticProvider{name: name, view: view}
}

func (p *StaticProvider) Name() string { return p.name }

func (p *StaticProvider) ViewName(state string) (string, bool) {
	return p.name, matchesState(state, p.name)
}

func (p *StaticProvider) View(name string) (View, error) {
	if name != p.name {
		return nil, fmt.Errorf("static provider for %q asked for %q", p.name, name)
	}
	return p.view, nil
}

// FactoryProvider constructs a new view instance every time one is
// requested.
type FactoryProvider struct {
	name    string
	factory func() View
}

func NewFactoryProvider(name string, factory func() View) *FactoryProvider {
	return &FactoryProvider{name: name, factory: factory}
}

func (p *FactoryProvider) Name() string { return p.name }

func (p *FactoryProvider) ViewName(state string) (string, bool) {
	return p.name, matchesState(state, p.name)
}

func (p *FactoryProvider) View(name string) (View, error) {
	if name != p.name {
		return nil, fmt.Errorf("factory provider for %q asked for %q", p.name, name)
	}
	return p.factory(), nil
}

// errorProvider matches every state, using the whole state as the view name.
type errorProvider struct {
	view View
}

func (p *errorProvider) ViewName(state string) (string, bool) { return state, true }

func (p *errorProvider) View(string) (View, error) { return p.view, nil }

// TypeName derives a view name from the type of v, e.g. *ContactListView
// becomes "contact-list".
func TypeName(v View) string {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return strcase.ToKebab(strings.TrimSuffix(t.Name(), "View"))
}

func matchesState(state, name string) bool {
	return state == name || strings.HasPrefix(state, name+"/")
}
