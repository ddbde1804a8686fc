package helpers

import (
	"bytes"
	"context"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlash(t *testing.T) {
	w := httptest.NewRecorder()
	FlashWarning(w, "navigation to <about> not permitted")

	r := httptest.NewRequest("GET", "/", nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}

	w = httptest.NewRecorder()
	got, err := PopFlashes(r, w)
	require.NoError(t, err)
	assert.Equal(t, []Flash{{Type: FlashWarningType, Message: "navigation to <about> not permitted"}}, got)
	// cookie purged
	require.Len(t, w.Result().Cookies(), 1)
	assert.Equal(t, "", w.Result().Cookies()[0].Value)

	var buf bytes.Buffer
	require.NoError(t, Flashes(got).Render(context.Background(), &buf))
	assert.Equal(t, `<div class="flash flash-warning" role="alert">navigation to &lt;about&gt; not permitted</div>`, buf.String())
}

func TestPopFlashes_NoCookie(t *testing.T) {
	got, err := PopFlashes(httptest.NewRequest("GET", "/", nil), httptest.NewRecorder())
	require.NoError(t, err)
	assert.Nil(t, got)
}
