package contact

import (
	"strings"
	"testing"

	"github.com/go-logr/logr"
	"github.com/leg100/viewport/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	svc := NewService(logr.Discard())

	bob, err := svc.Create(CreateOptions{Name: "Bob", Email: "bob@example.com"})
	require.NoError(t, err)
	ann, err := svc.Create(CreateOptions{Name: "Ann"})
	require.NoError(t, err)

	t.Run("get returns a copy", func(t *testing.T) {
		got, err := svc.Get(bob.ID)
		require.NoError(t, err)
		assert.Equal(t, bob, got)
		assert.NotSame(t, bob, got)
	})

	t.Run("list sorted by name", func(t *testing.T) {
		list := svc.List()
		require.Len(t, list, 2)
		assert.Equal(t, ann.ID, list[0].ID)
		assert.Equal(t, bob.ID, list[1].ID)
	})

	t.Run("name required", func(t *testing.T) {
		_, err := svc.Create(CreateOptions{})
		assert.ErrorIs(t, err, internal.ErrRequiredName)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, svc.Delete(bob.ID))
		_, err := svc.Get(bob.ID)
		assert.ErrorIs(t, err, internal.ErrResourceNotFound)
		assert.ErrorIs(t, svc.Delete(bob.ID), internal.ErrResourceNotFound)
	})
}

func TestService_Import(t *testing.T) {
	contacts, err := LoadFile("./testdata/contacts.yaml")
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	assert.Equal(t, "Met at *the conference*.\n", contacts[0].Notes)

	svc := NewService(logr.Discard())
	require.NoError(t, svc.Import(contacts))

	ann, err := svc.Get("contact-ann")
	require.NoError(t, err)
	assert.Equal(t, "Ann", ann.Name)

	list := svc.List()
	require.Len(t, list, 2)
	assert.True(t, strings.HasPrefix(list[1].ID, "contact-"))

	err = svc.Import([]Contact{{ID: "contact-ann", Name: "Ann again"}})
	assert.ErrorIs(t, err, internal.ErrResourceAlreadyExists)
}

func TestGenerate(t *testing.T) {
	contacts := Generate(3)
	require.Len(t, contacts, 3)
	for _, c := range contacts {
		assert.NotEmpty(t, c.Name)
		assert.True(t, strings.HasSuffix(c.Email, "@example.com"))
	}
}
