package navigator

import (
	"fmt"

	"github.com/gobwas/glob"
)

// Listener is notified of view changes.
type Listener interface {
	// BeforeViewChange is called before a view change. Returning false
	// cancels the change.
	BeforeViewChange(ev *ChangeEvent) bool
	// AfterViewChange is called once the new view has been entered and
	// shown.
	AfterViewChange(ev *ChangeEvent)
}

// ListenerFuncs adapts a pair of functions to a Listener. Either may be nil.
type ListenerFuncs struct {
	Before func(ev *ChangeEvent) bool
	After  func(ev *ChangeEvent)
}

func (f ListenerFuncs) BeforeViewChange(ev *ChangeEvent) bool {
	if f.Before == nil {
		return true
	}
	return f.Before(ev)
}

func (f ListenerFuncs) AfterViewChange(ev *ChangeEvent) {
	if f.After != nil {
		f.After(ev)
	}
}

// GuardListener refuses navigation to views whose name matches any of a set
// of glob patterns.
type GuardListener struct {
	patterns []glob.Glob
}

// NewGuardListener compiles the patterns, in which '/' is a separator.
func NewGuardListener(patterns ...string) (*GuardListener, error) {
	l := &GuardListener{patterns: make([]glob.Glob, 0, len(patterns))}
	for _, patt := range patterns {
		g, err := glob.Compile(patt, '/')
		if err != nil {
			return nil, fmt.Errorf("compiling view guard pattern %q: %w", patt, err)
		}
		l.patterns = append(l.patterns, g)
	}
	return l, nil
}

func (l *GuardListener) BeforeViewChange(ev *ChangeEvent) bool {
	for _, g := range l.patterns {
		if g.Match(ev.ViewName) {
			return false
		}
	}
	return true
}

func (l *GuardListener) AfterViewChange(*ChangeEvent) {}
