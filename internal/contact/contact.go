// Package contact is a small in-memory address book used by the demo views.
package contact

import (
	"github.com/google/uuid"
	"github.com/leg100/viewport/internal"
)

// Contact is an entry in the address book.
type Contact struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
	// Notes is markdown.
	Notes string `yaml:"notes"`
}

// CreateOptions are the options for creating a contact.
type CreateOptions struct {
	Name  string `schema:"name"`
	Email string `schema:"email"`
	Notes string `schema:"notes"`
}

func newContact(opts CreateOptions) (Contact, error) {
	if opts.Name == "" {
		return Contact{}, internal.ErrRequiredName
	}
	return Contact{
		ID:    "contact-" + uuid.NewString(),
		Name:  opts.Name,
		Email: opts.Email,
		Notes: opts.Notes,
	}, nil
}
