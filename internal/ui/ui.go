// Package ui provides the contacts web UI: one navigator per browser session,
// switching between contact views.
package ui

import (
	"github.com/go-logr/logr"
	"github.com/leg100/viewport/internal/contact"
	"github.com/leg100/viewport/internal/grid"
	"github.com/leg100/viewport/internal/navigator"
	"github.com/leg100/viewport/internal/ui/paths"
)

type (
	// UI is the server-side state of a single browser session.
	UI struct {
		Navigator *navigator.Navigator
		Display   *navigator.ComponentDisplay
		// Contacts is the contacts table; its row keys are shared by every
		// view in the session.
		Contacts *grid.Grid[*contact.Contact, string]
	}

	// Config configures every UI.
	Config struct {
		Logger   logr.Logger
		Contacts *contact.Service
		Metrics  *navigator.Metrics
		// DenyViews are glob patterns of view names that may not be
		// navigated to.
		DenyViews []string
	}
)

// NewFactory validates the config and returns a func constructing a UI for a
// new session.
func NewFactory(cfg Config) (func(sessionID string) *UI, error) {
	guard, err := navigator.NewGuardListener(cfg.DenyViews...)
	if err != nil {
		return nil, err
	}
	return func(sessionID string) *UI {
		return newUI(cfg, guard, sessionID)
	}, nil
}

func newUI(cfg Config, guard *navigator.GuardListener, sessionID string) *UI {
	display := &navigator.ComponentDisplay{}
	ui := &UI{
		Display: display,
		Navigator: navigator.New(display,
			navigator.WithLogger(cfg.Logger.WithValues("session", sessionID)),
			navigator.WithMetrics(cfg.Metrics),
		),
		Contacts: grid.New(contactID,
			grid.Column[*contact.Contact]{
				Header: "Name",
				Value:  func(c *contact.Contact) string { return c.Name },
				Link:   paths.Contact,
			},
			grid.Column[*contact.Contact]{
				Header: "Email",
				Value:  func(c *contact.Contact) string { return c.Email },
			},
		),
	}
	ui.Navigator.AddView("contacts", &ContactsView{ui: ui, svc: cfg.Contacts})
	ui.Navigator.AddViewFactory("contact", func() navigator.View {
		return &ContactView{ui: ui, svc: cfg.Contacts}
	})
	about := &AboutView{}
	ui.Navigator.AddView(navigator.TypeName(about), about)
	ui.Navigator.SetErrorView(&NotFoundView{})
	ui.Navigator.AddListener(guard)
	return ui
}

// Destroy releases the resources held by the UI.
func (ui *UI) Destroy() {
	ui.Navigator.Destroy()
	ui.Contacts.Clear()
}

// reloadContacts refreshes the contacts table. The navigator does not re-enter
// a view it is already showing, so changes made outside navigation must be
// applied here.
func (ui *UI) reloadContacts(svc *contact.Service) {
	ui.Contacts.SetItems(svc.List())
}

func contactID(c *contact.Contact) string { return c.ID }
