package navigator

import (
	"net/url"
	"strings"

	"github.com/gorilla/schema"
)

// DefaultParameterSeparator separates key=value pairs in the parameters of a
// navigation state.
const DefaultParameterSeparator = "&"

// Parameter schema decoder: caches structs, and safe for sharing.
var decoder *schema.Decoder

func init() {
	decoder = schema.NewDecoder()
	decoder.IgnoreUnknownKeys(true)
}

// ChangeEvent describes a change of view.
type ChangeEvent struct {
	Navigator *Navigator
	// OldView is the view being left, or nil if there is no current view.
	OldView View
	// NewView is the view being entered.
	NewView View
	// ViewName is the name the new view was resolved by.
	ViewName string
	// Parameters is whatever followed the view name and a slash in the
	// navigation state.
	Parameters string
}

// ParameterMap splits the parameters into key=value pairs separated by sep.
// A pair without an equals sign maps the key to an empty string. If sep is
// empty then DefaultParameterSeparator is used.
func (e *ChangeEvent) ParameterMap(sep string) map[string]string {
	if sep == "" {
		sep = DefaultParameterSeparator
	}
	m := make(map[string]string)
	if e.Parameters == "" {
		return m
	}
	for pair := range strings.SplitSeq(e.Parameters, sep) {
		if pair == "" {
			continue
		}
		k, v, _ := strings.Cut(pair, "=")
		m[k] = v
	}
	return m
}

// DecodeParameters populates the struct pointed to by dst with the
// parameters, using `schema` struct tags.
func (e *ChangeEvent) DecodeParameters(dst any) error {
	params := e.ParameterMap(DefaultParameterSeparator)
	vals := make(url.Values, len(params))
	for k, v := range params {
		vals.Set(k, v)
	}
	return decoder.Decode(dst, vals)
}

// BeforeLeaveEvent is passed to the current view before the navigator leaves
// it.
type BeforeLeaveEvent struct {
	Navigator *Navigator

	navigate func() error
	ran      bool
}

// Navigate carries out the pending navigation. Only the first call has any
// effect.
func (e *BeforeLeaveEvent) Navigate() error {
	if e.ran {
		return nil
	}
	e.ran = true
	return e.navigate()
}

// NavigateRun reports whether Navigate has been called.
func (e *BeforeLeaveEvent) NavigateRun() bool { return e.ran }
