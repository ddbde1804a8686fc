package contact

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/go-logr/logr"
	"github.com/leg100/viewport/internal"
)

// Service stores contacts. Every retrieval returns a fresh copy so that
// callers never share an instance.
type Service struct {
	logr.Logger

	contacts *internal.SafeMap[string, Contact]
}

func NewService(logger logr.Logger) *Service {
	return &Service{
		Logger:   logger.WithValues("component", "contacts"),
		contacts: internal.NewSafeMap[string, Contact](),
	}
}

func (s *Service) Create(opts CreateOptions) (*Contact, error) {
	c, err := newContact(opts)
	if err != nil {
		return nil, fmt.Errorf("creating contact: %w", err)
	}
	s.contacts.Set(c.ID, c)
	s.V(1).Info("created contact", "id", c.ID, "name", c.Name)
	return &c, nil
}

// Import adds contacts with pre-existing IDs. Contacts without an ID are
// given one.
func (s *Service) Import(contacts []Contact) error {
	for _, c := range contacts {
		if c.ID == "" {
			created, err := newContact(CreateOptions{Name: c.Name, Email: c.Email, Notes: c.Notes})
			if err != nil {
				return fmt.Errorf("importing contact: %w", err)
			}
			c = created
		} else if c.Name == "" {
			return fmt.Errorf("importing contact %s: %w", c.ID, internal.ErrRequiredName)
		}
		if _, existed := s.contacts.GetOrSet(c.ID, func() Contact { return c }); existed {
			return fmt.Errorf("importing contact %s: %w", c.ID, internal.ErrResourceAlreadyExists)
		}
	}
	s.Info("imported contacts", "count", len(contacts))
	return nil
}

func (s *Service) Get(id string) (*Contact, error) {
	c, ok := s.contacts.Get(id)
	if !ok {
		return nil, fmt.Errorf("contact %s: %w", id, internal.ErrResourceNotFound)
	}
	return &c, nil
}

// List returns all contacts sorted by name.
func (s *Service) List() []*Contact {
	values := s.contacts.Values()
	list := make([]*Contact, len(values))
	for i := range values {
		list[i] = &values[i]
	}
	slices.SortFunc(list, func(a, b *Contact) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.ID, b.ID))
	})
	return list
}

func (s *Service) Delete(id string) error {
	if _, ok := s.contacts.Get(id); !ok {
		return fmt.Errorf("contact %s: %w", id, internal.ErrResourceNotFound)
	}
	s.contacts.Delete(id)
	s.V(1).Info("deleted contact", "id", id)
	return nil
}
