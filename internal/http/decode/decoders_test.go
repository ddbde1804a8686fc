package decode

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/leg100/viewport/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll(t *testing.T) {
	var params struct {
		State string `schema:"state"`
		Sort  string `schema:"sort"`
		Name  string `schema:"name"`
	}
	r := httptest.NewRequest("POST", "/app/contacts?sort=name&state=ignored", strings.NewReader("name=ann"))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	r = mux.SetURLVars(r, map[string]string{"state": "contacts"})

	require.NoError(t, All(&params, r))
	assert.Equal(t, "contacts", params.State)
	assert.Equal(t, "name", params.Sort)
	assert.Equal(t, "ann", params.Name)
}

func TestParam(t *testing.T) {
	r := mux.SetURLVars(httptest.NewRequest("GET", "/", nil), map[string]string{"state": "about"})
	got, err := Param("state", r)
	require.NoError(t, err)
	assert.Equal(t, "about", got)

	_, err = Param("missing", r)
	var missing *internal.MissingParameterError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "missing", missing.Parameter)
}
