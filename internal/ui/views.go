package ui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/leg100/viewport/internal"
	"github.com/leg100/viewport/internal/contact"
	"github.com/leg100/viewport/internal/navigator"
)

// ContactsView lists contacts. It is its own component.
type ContactsView struct {
	ui  *UI
	svc *contact.Service
}

// Enter reloads the contacts. The service returns new instances every time;
// rows keep their keys because they are identified by contact ID.
func (v *ContactsView) Enter(*navigator.ChangeEvent) {
	v.ui.reloadContacts(v.svc)
}

func (v *ContactsView) Title() string { return "contacts" }

func (v *ContactsView) Render(ctx context.Context, w io.Writer) error {
	return contactsPage(v.ui.Contacts).Render(ctx, w)
}

// ContactView shows a single contact, identified by the key of its row in
// the contacts table.
type ContactView struct {
	ui  *UI
	svc *contact.Service

	row     string
	contact *contact.Contact
	err     error
}

type contactParams struct {
	Row string `schema:"row"`
}

func (v *ContactView) Enter(ev *navigator.ChangeEvent) {
	var params contactParams
	if err := ev.DecodeParameters(&params); err != nil {
		v.err = err
		return
	}
	v.row = params.Row
	row, ok := v.ui.Contacts.Item(params.Row)
	if !ok {
		v.err = fmt.Errorf("row %q: %w", params.Row, internal.ErrResourceNotFound)
		return
	}
	// fetch the latest copy in case it changed since the table was loaded
	v.contact, v.err = v.svc.Get(row.ID)
}

func (v *ContactView) Title() string {
	if v.contact == nil {
		return "contact"
	}
	return v.contact.Name
}

func (v *ContactView) NotFound() bool {
	return errors.Is(v.err, internal.ErrResourceNotFound)
}

func (v *ContactView) ViewComponent() templ.Component {
	return contactPage(v.contact, v.row, v.err)
}

// AboutView shows version information.
type AboutView struct{}

func (v *AboutView) Enter(*navigator.ChangeEvent) {}

func (v *AboutView) Title() string { return "about" }

func (v *AboutView) Render(ctx context.Context, w io.Writer) error {
	return aboutPage().Render(ctx, w)
}

// NotFoundView is shown for navigation states that match no view.
type NotFoundView struct {
	state string
}

func (v *NotFoundView) Enter(ev *navigator.ChangeEvent) { v.state = ev.ViewName }

func (v *NotFoundView) Title() string { return "not found" }

func (v *NotFoundView) NotFound() bool { return true }

func (v *NotFoundView) Render(ctx context.Context, w io.Writer) error {
	return notFoundPage(v.state).Render(ctx, w)
}
