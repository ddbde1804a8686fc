package ui

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-logr/logr"
	"github.com/gorilla/mux"
	"github.com/leg100/viewport/internal"
	"github.com/leg100/viewport/internal/contact"
	"github.com/leg100/viewport/internal/http/decode"
	"github.com/leg100/viewport/internal/http/html"
	"github.com/leg100/viewport/internal/navigator"
	"github.com/leg100/viewport/internal/session"
	"github.com/leg100/viewport/internal/ui/helpers"
	"github.com/leg100/viewport/internal/ui/paths"
)

// Handlers registers all UI handlers
type Handlers struct {
	Logger   logr.Logger
	Sessions *session.Store[*UI]
	Contacts *contact.Service
}

// AddHandlers registers all UI handlers with the router
func (h *Handlers) AddHandlers(r *mux.Router) {
	r.Handle("/", http.RedirectHandler(paths.Contacts(), http.StatusFound))
	r.Handle(paths.UIPrefix, http.RedirectHandler(paths.Contacts(), http.StatusFound))

	r.HandleFunc(paths.CreateContact(), h.createContact).Methods("POST")
	r.HandleFunc(paths.DeleteContact(), h.deleteContact).Methods("POST")

	r = r.PathPrefix(paths.UIPrefix).Subrouter()
	r.HandleFunc("/{state:.+}", h.navigate).Methods("GET")
}

func (h *Handlers) navigate(w http.ResponseWriter, r *http.Request) {
	var params struct {
		State string `schema:"state,required"`
	}
	if err := decode.Route(&params, r); err != nil {
		html.Error(r, w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	sess := h.Sessions.Get(w, r)
	sess.Lock()
	defer sess.Unlock()

	ui := sess.Value
	err := ui.Navigator.NavigateTo(params.State)
	switch {
	case errors.Is(err, navigator.ErrNavigationVetoed), errors.Is(err, navigator.ErrNavigationPostponed):
		if ui.Navigator.CurrentView() == nil {
			html.Error(r, w, err.Error(), http.StatusForbidden)
			return
		}
		helpers.FlashWarning(w, fmt.Sprintf("cannot open %s: %s", params.State, err.Error()))
		http.Redirect(w, r, paths.View(ui.Navigator.State()), http.StatusFound)
		return
	case errors.Is(err, navigator.ErrUnknownState):
		html.Error(r, w, err.Error(), http.StatusNotFound)
		return
	case err != nil:
		h.Logger.Error(err, "navigating", "state", params.State)
		html.Error(r, w, err.Error(), http.StatusInternalServerError)
		return
	}
	if state := ui.Navigator.State(); state != params.State {
		http.Redirect(w, r, paths.View(state), http.StatusFound)
		return
	}

	flashes, err := helpers.PopFlashes(r, w)
	if err != nil {
		h.Logger.Error(err, "reading flash messages")
	}
	var opts []func(*templ.ComponentHandler)
	view := ui.Navigator.CurrentView()
	if nf, ok := view.(interface{ NotFound() bool }); ok && nf.NotFound() {
		opts = append(opts, templ.WithStatus(http.StatusNotFound))
	}
	title := "viewport"
	if titled, ok := view.(interface{ Title() string }); ok {
		title = titled.Title()
	}
	html.Render(layout(title, flashes, ui.Display.Component()), w, r, opts...)
}

func (h *Handlers) createContact(w http.ResponseWriter, r *http.Request) {
	var opts contact.CreateOptions
	if err := decode.All(&opts, r); err != nil {
		html.Error(r, w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	created, err := h.Contacts.Create(opts)
	if err != nil {
		helpers.FlashError(w, err.Error())
		http.Redirect(w, r, paths.Contacts(), http.StatusFound)
		return
	}

	sess := h.Sessions.Get(w, r)
	sess.Lock()
	defer sess.Unlock()
	sess.Value.reloadContacts(h.Contacts)

	helpers.FlashSuccess(w, "added contact: "+created.Name)
	http.Redirect(w, r, paths.Contacts(), http.StatusFound)
}

// deleteContact deletes the contact shown in the given row of the session's
// contacts table.
func (h *Handlers) deleteContact(w http.ResponseWriter, r *http.Request) {
	row, err := decode.Param("row", r)
	if err != nil {
		html.Error(r, w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	sess := h.Sessions.Get(w, r)
	sess.Lock()
	defer sess.Unlock()

	c, ok := sess.Value.Contacts.Item(row)
	if !ok {
		err = fmt.Errorf("row %q: %w", row, internal.ErrResourceNotFound)
	} else {
		err = h.Contacts.Delete(c.ID)
	}
	if err != nil {
		helpers.FlashError(w, "deleting contact: "+err.Error())
	} else {
		helpers.FlashSuccess(w, "deleted contact: "+c.Name)
	}
	sess.Value.reloadContacts(h.Contacts)
	http.Redirect(w, r, paths.Contacts(), http.StatusFound)
}
