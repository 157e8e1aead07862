package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lernia/console-backend/internal/config"
	"github.com/lernia/console-backend/internal/upstream"
)

func fakePlatform(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/admin/login":
			w.Write([]byte(`{"success":true,"token":"upstream-tok","admin":{"_id":"a-1","name":"Root","email":"root@example.com"}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func testManager(t *testing.T, srv *httptest.Server, store Store) *Manager {
	t.Helper()
	cfg := &config.Config{
		AdminAPIBaseURL: srv.URL + "/api/admin",
		UpstreamTimeout: 5 * time.Second,
		SessionSecret:   "test-secret",
		SessionTTL:      time.Hour,
	}
	client := upstream.New(cfg, zerolog.Nop())
	return NewManager(client, store, cfg, zerolog.Nop())
}

func TestManagerLoginIssuesResolvableToken(t *testing.T) {
	srv := fakePlatform(t)
	defer srv.Close()
	store := NewMemoryStore()
	m := testManager(t, srv, store)

	token, profile, err := m.Login(context.Background(), "root@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "root@example.com", profile.Email)
	assert.Equal(t, 1, store.Len())

	sess, err := m.Resolve(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "upstream-tok", sess.Token)
	assert.Equal(t, "a-1", sess.Profile.ID)
}

func TestManagerResolveRejectsTamperedToken(t *testing.T) {
	srv := fakePlatform(t)
	defer srv.Close()
	m := testManager(t, srv, NewMemoryStore())

	token, _, err := m.Login(context.Background(), "root@example.com", "secret")
	require.NoError(t, err)

	_, err = m.Resolve(context.Background(), token+"x")
	assert.ErrorIs(t, err, ErrTokenInvalid)

	_, err = m.Resolve(context.Background(), "not-a-jwt")
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestManagerLogoutInvalidatesToken(t *testing.T) {
	srv := fakePlatform(t)
	defer srv.Close()
	store := NewMemoryStore()
	m := testManager(t, srv, store)

	token, _, err := m.Login(context.Background(), "root@example.com", "secret")
	require.NoError(t, err)

	sess, err := m.Resolve(context.Background(), token)
	require.NoError(t, err)

	require.NoError(t, m.Logout(context.Background(), sess.ID))
	assert.Equal(t, 0, store.Len())

	// The JWT is still cryptographically valid, but its session is gone.
	_, err = m.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestManagerExpireRemovesSession(t *testing.T) {
	srv := fakePlatform(t)
	defer srv.Close()
	store := NewMemoryStore()
	m := testManager(t, srv, store)

	token, _, err := m.Login(context.Background(), "root@example.com", "secret")
	require.NoError(t, err)
	sess, err := m.Resolve(context.Background(), token)
	require.NoError(t, err)

	m.Expire(context.Background(), sess.ID)
	_, err = m.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreTTL(t *testing.T) {
	store := NewMemoryStore()
	sess := Session{ID: "s-1", Token: "tok"}

	require.NoError(t, store.Save(context.Background(), sess, 10*time.Millisecond))
	got, err := store.Load(context.Background(), "s-1")
	require.NoError(t, err)
	assert.Equal(t, "tok", got.Token)

	time.Sleep(20 * time.Millisecond)
	_, err = store.Load(context.Background(), "s-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreDeleteUnknownIsNoop(t *testing.T) {
	store := NewMemoryStore()
	assert.NoError(t, store.Delete(context.Background(), "missing"))
}
