// Package navigator switches a UI between views. A view is an
// application-defined screen; the navigator maps a navigation state, such as
// "contact/row=3", onto a view name and parameters, enters the view and
// hands it to a display for rendering.
package navigator

import (
	"errors"
	"fmt"

	"github.com/a-h/templ"
)

// ErrNotComponent is returned when the component to display for a view
// cannot be determined: the view is neither a templ.Component itself nor a
// ComponentProvider.
var ErrNotComponent = errors.New("view is not a component")

// View is a screen that can be activated by a Navigator.
type View interface {
	// Enter is called immediately before the view is shown. ev.NewView is
	// the receiver.
	Enter(ev *ChangeEvent)
}

// ComponentProvider is implemented by views whose visual representation is a
// separate component rather than the view itself.
type ComponentProvider interface {
	ViewComponent() templ.Component
}

// BeforeLeaver is implemented by views that want a say before the navigator
// moves away from them. The pending navigation only takes place once
// ev.Navigate is called, which may be later, e.g. after the user confirms
// they want to discard unsaved changes.
type BeforeLeaver interface {
	BeforeLeave(ev *BeforeLeaveEvent)
}

// ResolveComponent returns the component to display for v. A view that
// implements ComponentProvider supplies its own; otherwise the view must
// itself be a templ.Component.
func ResolveComponent(v View) (templ.Component, error) {
	if p, ok := v.(ComponentProvider); ok {
		return p.ViewComponent(), nil
	}
	if c, ok := v.(templ.Component); ok {
		return c, nil
	}
	return nil, fmt.Errorf("%w: %T: implement ViewComponent to return the root component of the view", ErrNotComponent, v)
}
