// Package session keeps per-browser state on the server, identified by a
// cookie.
package session

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/go-logr/logr"
	"github.com/google/uuid"
	"github.com/leg100/viewport/internal"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	CookieName = "viewport_session"

	DefaultTTL             = 30 * time.Minute
	DefaultCleanupInterval = time.Minute
)

// Session is the server-side state of a single browser. Callers must hold the
// session lock while using its value.
type Session[T any] struct {
	sync.Mutex

	ID    string
	Value T

	lastAccess time.Time
}

// Store holds sessions in memory. Sessions idle for longer than the TTL are
// removed by Start.
type Store[T any] struct {
	logr.Logger

	ttl      time.Duration
	factory  func(id string) T
	destroy  func(T)
	sessions *internal.SafeMap[string, *Session[T]]
	active   prometheus.Gauge
	now      func() time.Time
}

// Options for constructing a Store.
type Options[T any] struct {
	// TTL is how long a session may be idle before it is removed. Defaults
	// to DefaultTTL.
	TTL time.Duration
	// New constructs the value of a new session.
	New func(id string) T
	// Destroy, if non-nil, is called with the value of each expired session.
	Destroy func(T)
	// Registerer, if non-nil, is used to register a gauge of active
	// sessions.
	Registerer prometheus.Registerer
}

func NewStore[T any](logger logr.Logger, opts Options[T]) *Store[T] {
	if opts.TTL == 0 {
		opts.TTL = DefaultTTL
	}
	s := &Store[T]{
		Logger:   logger.WithValues("component", "sessions"),
		ttl:      opts.TTL,
		factory:  opts.New,
		destroy:  opts.Destroy,
		sessions: internal.NewSafeMap[string, *Session[T]](),
		now:      time.Now,
	}
	if opts.Registerer != nil {
		s.active = promauto.With(opts.Registerer).NewGauge(prometheus.GaugeOpts{
			Namespace: "viewport",
			Name:      "sessions_active",
			Help:      "Number of active UI sessions.",
		})
	}
	return s
}

// Get retrieves the session for the request, creating a new one and setting
// the session cookie on the response if the request has no valid session.
func (s *Store[T]) Get(w http.ResponseWriter, r *http.Request) *Session[T] {
	if cookie, err := r.Cookie(CookieName); err == nil {
		if sess, ok := s.sessions.Get(cookie.Value); ok {
			sess.Lock()
			sess.lastAccess = s.now()
			sess.Unlock()
			return sess
		}
	}
	id := uuid.NewString()
	sess := &Session[T]{
		ID:         id,
		Value:      s.factory(id),
		lastAccess: s.now(),
	}
	s.sessions.Set(id, sess)
	s.updateGauge()
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	s.V(1).Info("created session", "id", id)
	return sess
}

// Start removes expired sessions every interval until the context is
// cancelled.
func (s *Store[T]) Start(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if n := s.deleteExpired(); n > 0 {
				s.V(1).Info("removed expired sessions", "count", n)
			}
		case <-ctx.Done():
			return nil
		}
	}
}

func (s *Store[T]) deleteExpired() int {
	cutoff := s.now().Add(-s.ttl)
	var expired []T
	n := s.sessions.DeleteFunc(func(_ string, sess *Session[T]) bool {
		sess.Lock()
		defer sess.Unlock()
		if sess.lastAccess.Before(cutoff) {
			expired = append(expired, sess.Value)
			return true
		}
		return false
	})
	if s.destroy != nil {
		for _, v := range expired {
			s.destroy(v)
		}
	}
	s.updateGauge()
	return n
}

// Len returns the number of sessions.
func (s *Store[T]) Len() int { return s.sessions.Len() }

func (s *Store[T]) updateGauge() {
	if s.active != nil {
		s.active.Set(float64(s.sessions.Len()))
	}
}
