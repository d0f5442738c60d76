package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/Zestathon/payorbit/internal/client/models"
	"github.com/Zestathon/payorbit/internal/client/transport"
	"github.com/Zestathon/payorbit/internal/logging"
	"github.com/stretchr/testify/require"
)

// fakeSessionStore is an in-memory stand-in for the sqlite-backed store. It
// satisfies both the api SessionStore and the transport Credentials surface
// so one instance can be wired into both layers, like the real store is.
type fakeSessionStore struct {
	mu    sync.Mutex
	token string
	user  *models.Profile
	sets  int
}

func (f *fakeSessionStore) Set(ctx context.Context, token string, user *models.Profile) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.token = token
	f.user = user
	f.sets++
	return nil
}

func (f *fakeSessionStore) Clear(ctx context.Context) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	had := f.token != ""
	f.token = ""
	f.user = nil
	return had, nil
}

func (f *fakeSessionStore) Token() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.token
}

func (f *fakeSessionStore) CurrentUser() *models.Profile {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.user
}

func (f *fakeSessionStore) IsAuthenticated() bool {
	return f.Token() != ""
}

func testProfileFixture() *models.Profile {
	return &models.Profile{Username: "maria", Email: "maria@acme.test"}
}

func discardLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// newTestClient wires a full transport + api client pair against the given
// handler and returns the client together with its session store fake.
func newTestClient(t *testing.T, handler http.Handler) (*Client, *fakeSessionStore) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	store := &fakeSessionStore{}
	tc, err := transport.New(srv.URL, store, discardLogger())
	require.NoError(t, err)

	return New(tc, store, discardLogger()), store
}
