package http

import (
	"context"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"
	"time"

	"github.com/go-logr/logr"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeHandlers struct{}

func (fakeHandlers) AddHandlers(r *mux.Router) {
	r.HandleFunc("/hello", func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "hello")
	})
	r.HandleFunc("/panic", func(w http.ResponseWriter, r *http.Request) {
		panic("woops")
	})
}

func TestServer(t *testing.T) {
	srv, err := NewServer(logr.Discard(), ServerConfig{
		EnableRequestLogging: true,
		Gatherer:             prometheus.NewRegistry(),
		Handlers:             []Handlers{fakeHandlers{}},
	})
	require.NoError(t, err)

	tests := []struct {
		path     string
		wantCode int
		wantBody string
	}{
		{"/hello", 200, "hello"},
		{"/healthz", 200, `"Version":"unknown"`},
		{"/metrics", 200, ""},
		{"/panic", 500, ""},
		{"/nowhere", 404, ""},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			srv.Router.ServeHTTP(w, httptest.NewRequest("GET", tt.path, nil))
			assert.Equal(t, tt.wantCode, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
		})
	}
}

func TestServer_SSLRequiresCert(t *testing.T) {
	_, err := NewServer(logr.Discard(), ServerConfig{SSL: true})
	assert.Error(t, err)
}

func TestServer_Start(t *testing.T) {
	srv, err := NewServer(logr.Discard(), ServerConfig{Gatherer: prometheus.NewRegistry()})
	require.NoError(t, err)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() { done <- srv.Start(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, 200, resp.StatusCode)

	cancel()
	assert.NoError(t, <-done)
}

func TestServer_StartReleasesServeGoroutine(t *testing.T) {
	before := runtime.NumGoroutine()

	srv, err := NewServer(logr.Discard(), ServerConfig{Gatherer: prometheus.NewRegistry()})
	require.NoError(t, err)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() { done <- srv.Start(ctx, ln) }()

	client := &http.Client{Transport: &http.Transport{DisableKeepAlives: true}}
	resp, err := client.Get("http://" + ln.Addr().String() + "/healthz")
	require.NoError(t, err)
	resp.Body.Close()

	cancel()
	require.NoError(t, <-done)

	assert.Eventually(t, func() bool {
		return runtime.NumGoroutine() <= before
	}, 5*time.Second, 10*time.Millisecond)
}
