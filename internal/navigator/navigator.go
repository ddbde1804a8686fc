package navigator

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/go-logr/logr"
)

var (
	// ErrUnknownState is returned when no provider can resolve a navigation
	// state and no error view has been set.
	ErrUnknownState = errors.New("unknown navigation state")

	// ErrNavigationVetoed is returned when a listener cancels a navigation.
	ErrNavigationVetoed = errors.New("navigation vetoed")

	// ErrNavigationPostponed is returned when the current view did not
	// permit leaving it straight away. The navigation may still take place
	// later.
	ErrNavigationPostponed = errors.New("navigation postponed")
)

// Navigator switches between views according to a navigation state. A
// Navigator is not safe for concurrent use.
type Navigator struct {
	logger        logr.Logger
	metrics       *Metrics
	state         StateManager
	display       Display
	providers     []Provider
	errorProvider Provider
	listeners     []*listenerEntry
	current       View
}

type listenerEntry struct {
	Listener
}

// Option configures a Navigator.
type Option func(*Navigator)

func WithLogger(logger logr.Logger) Option {
	return func(n *Navigator) { n.logger = logger }
}

func WithMetrics(m *Metrics) Option {
	return func(n *Navigator) { n.metrics = m }
}

func WithStateManager(s StateManager) Option {
	return func(n *Navigator) { n.state = s }
}

// New constructs a navigator that shows views on display. display may be
// nil, in which case views are entered but not shown.
func New(display Display, opts ...Option) *Navigator {
	n := &Navigator{
		logger:  logr.Discard(),
		state:   &memoryState{},
		display: display,
	}
	for _, fn := range opts {
		fn(n)
	}
	return n
}

// AddView registers a single view instance under name, replacing any view
// previously registered under the same name.
func (n *Navigator) AddView(name string, view View) {
	n.RemoveView(name)
	n.AddProvider(NewStaticProvider(name, view))
}

// AddViewFactory registers a view under name, constructing a new instance
// with factory upon every navigation to it.
func (n *Navigator) AddViewFactory(name string, factory func() View) {
	n.RemoveView(name)
	n.AddProvider(NewFactoryProvider(name, factory))
}

// RemoveView removes views registered by name using AddView or
// AddViewFactory.
func (n *Navigator) RemoveView(name string) {
	n.providers = slices.DeleteFunc(n.providers, func(p Provider) bool {
		named, ok := p.(interface{ Name() string })
		return ok && named.Name() == name
	})
}

func (n *Navigator) AddProvider(p Provider) {
	n.providers = append(n.providers, p)
}

func (n *Navigator) RemoveProvider(p Provider) {
	n.providers = slices.DeleteFunc(n.providers, func(existing Provider) bool {
		return existing == p
	})
}

// SetErrorView sets the view to show when a navigation state cannot be
// resolved. The view is entered with the whole state as its name.
func (n *Navigator) SetErrorView(view View) {
	n.errorProvider = &errorProvider{view: view}
}

// SetErrorProvider sets a provider consulted when no other provider can
// resolve a navigation state.
func (n *Navigator) SetErrorProvider(p Provider) {
	n.errorProvider = p
}

// AddListener registers a listener and returns a func to remove it.
func (n *Navigator) AddListener(l Listener) (remove func()) {
	entry := &listenerEntry{Listener: l}
	n.listeners = append(n.listeners, entry)
	return func() {
		n.listeners = slices.DeleteFunc(n.listeners, func(e *listenerEntry) bool {
			return e == entry
		})
	}
}

// State returns the current navigation state.
func (n *Navigator) State() string { return n.state.State() }

// CurrentView returns the active view, or nil if there is none yet.
func (n *Navigator) CurrentView() View { return n.current }

// Display returns the display views are shown on.
func (n *Navigator) Display() Display { return n.display }

// NavigateTo navigates to the view for the given state. The view with the
// longest name matching the state is chosen, and whatever follows the name
// and a slash is passed to the view as parameters.
func (n *Navigator) NavigateTo(state string) error {
	state = strings.TrimPrefix(state, "!")
	state = strings.TrimSuffix(state, "/")

	var (
		name     string
		provider Provider
	)
	for _, p := range n.providers {
		candidate, ok := p.ViewName(state)
		if !ok {
			continue
		}
		if provider == nil || len(candidate) > len(name) {
			name, provider = candidate, p
		}
	}
	var params string
	if provider == nil {
		if n.errorProvider == nil {
			n.metrics.observe(outcomeUnknown)
			return fmt.Errorf("%w: %q", ErrUnknownState, state)
		}
		provider = n.errorProvider
		var ok bool
		if name, ok = provider.ViewName(state); !ok {
			n.metrics.observe(outcomeUnknown)
			return fmt.Errorf("%w: %q", ErrUnknownState, state)
		}
	}
	if len(state) > len(name) && strings.HasPrefix(state, name+"/") {
		params = state[len(name)+1:]
	}

	view, err := provider.View(name)
	if err != nil {
		n.metrics.observe(outcomeError)
		return fmt.Errorf("retrieving view %q: %w", name, err)
	}
	if view == nil {
		n.metrics.observe(outcomeUnknown)
		return fmt.Errorf("%w: %q", ErrUnknownState, state)
	}

	if sameView(n.current, view) && n.State() == state {
		return nil
	}

	if leaver, ok := n.current.(BeforeLeaver); ok {
		var navErr error
		ev := &BeforeLeaveEvent{
			Navigator: n,
			navigate: func() error {
				navErr = n.navigate(view, name, params)
				return navErr
			},
		}
		leaver.BeforeLeave(ev)
		if !ev.NavigateRun() {
			n.logger.V(1).Info("navigation postponed", "from", n.State(), "to", state)
			n.metrics.observe(outcomePostponed)
			return ErrNavigationPostponed
		}
		return navErr
	}
	return n.navigate(view, name, params)
}

func (n *Navigator) navigate(view View, name, params string) error {
	ev := &ChangeEvent{
		Navigator:  n,
		OldView:    n.current,
		NewView:    view,
		ViewName:   name,
		Parameters: params,
	}
	// listeners may remove themselves
	listeners := slices.Clone(n.listeners)
	for _, l := range listeners {
		if !l.BeforeViewChange(ev) {
			n.logger.V(1).Info("navigation vetoed", "view", name)
			n.metrics.observe(outcomeVetoed)
			return ErrNavigationVetoed
		}
	}

	state := name
	if params != "" {
		state += "/" + params
	}
	prevState, prevView := n.State(), n.current
	n.state.SetState(state)
	n.current = view
	view.Enter(ev)

	if n.display != nil {
		if err := n.display.ShowView(view); err != nil {
			// a view that cannot be shown never becomes current
			n.state.SetState(prevState)
			n.current = prevView
			n.metrics.observe(outcomeError)
			return fmt.Errorf("showing view %q: %w", name, err)
		}
	}
	for _, l := range listeners {
		l.AfterViewChange(ev)
	}
	n.logger.V(2).Info("navigated", "view", name, "parameters", params)
	n.metrics.observe(outcomeOK)
	return nil
}

// Destroy detaches the navigator from its views, providers and listeners.
func (n *Navigator) Destroy() {
	n.providers = nil
	n.errorProvider = nil
	n.listeners = nil
	n.current = nil
}

// sameView compares views without panicking on uncomparable types.
func sameView(a, b View) bool {
	if a == nil || b == nil {
		return false
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) || !reflect.TypeOf(a).Comparable() {
		return false
	}
	return a == b
}
