package html

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
)

// Render a component. Wraps the upstream templ handler to carry out additional
// actions every time a component is rendered.
func Render(c templ.Component, w http.ResponseWriter, r *http.Request, opts ...func(*templ.ComponentHandler)) {
	// add request to context for components to access
	ctx := context.WithValue(r.Context(), requestKey{}, r)
	// handle errors
	errHandler := templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			Error(r, w, err.Error(), http.StatusInternalServerError)
		})
	})
	templ.Handler(c, append(opts, errHandler)...).ServeHTTP(w, r.WithContext(ctx))
}

type requestKey struct{}

// RequestFromContext returns the request being rendered, or nil.
func RequestFromContext(ctx context.Context) *http.Request {
	if r, ok := ctx.Value(requestKey{}).(*http.Request); ok {
		return r
	}
	return nil
}

// CurrentPath returns the path of the request being rendered.
func CurrentPath(ctx context.Context) string {
	request := RequestFromContext(ctx)
	if request == nil {
		return ""
	}
	return request.URL.Path
}
