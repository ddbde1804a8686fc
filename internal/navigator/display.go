package navigator

import "github.com/a-h/templ"

type (
	// Display shows views on behalf of a Navigator.
	Display interface {
		ShowView(v View) error
	}

	// StateManager stores the navigation state.
	StateManager interface {
		State() string
		SetState(state string)
	}
)

// ComponentDisplay resolves the component of each view it is asked to show
// and holds onto it until the next view is shown.
type ComponentDisplay struct {
	component templ.Component
}

func (d *ComponentDisplay) ShowView(v View) error {
	c, err := ResolveComponent(v)
	if err != nil {
		return err
	}
	d.component = c
	return nil
}

// Component returns the component of the last view shown, or nil.
func (d *ComponentDisplay) Component() templ.Component {
	return d.component
}

type memoryState struct {
	state string
}

func (s *memoryState) State() string         { return s.state }
func (s *memoryState) SetState(state string) { s.state = state }
