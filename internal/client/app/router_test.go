package app

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/truthlens/truthlens/internal/client/client"
	"github.com/truthlens/truthlens/internal/client/session"
	"github.com/truthlens/truthlens/internal/client/storage"
	"github.com/truthlens/truthlens/internal/logging"
)

func newRouterSession(t *testing.T, cl client.Client) *session.Store {
	t.Helper()
	db, err := storage.Open(context.Background(), filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return session.NewStore(storage.NewSQLiteKV(db), cl, logger)
}

func TestRouter_ProtectedViewRedirectsToAuth(t *testing.T) {
	sess := newRouterSession(t, client.NewSimulated(0))
	r := NewRouter(sess)

	assert.Equal(t, ViewLanding, r.Current())
	assert.Equal(t, ViewAuth, r.Navigate(ViewDashboard))
	assert.Equal(t, ViewAuth, r.Navigate(ViewReport))
	assert.Equal(t, ViewAuth, r.Navigate(ViewUpload))
}

func TestRouter_LoginRedirectsPublicViews(t *testing.T) {
	ctx := context.Background()
	cl := client.NewSimulated(0).WithAccount("alice@example.com", "alice", "secret1")
	sess := newRouterSession(t, cl)
	r := NewRouter(sess)

	r.Navigate(ViewAuth)
	require.NoError(t, sess.Login(ctx, "alice@example.com", "secret1"))

	// the guard reacts to the session change without an explicit Navigate
	assert.Equal(t, ViewDashboard, r.Current())
	assert.Equal(t, ViewDashboard, r.Navigate(ViewLanding))
	assert.Equal(t, ViewReport, r.Navigate(ViewReport))
}

func TestRouter_LogoutKicksOutOfProtectedView(t *testing.T) {
	ctx := context.Background()
	cl := client.NewSimulated(0).WithAccount("alice@example.com", "alice", "secret1")
	sess := newRouterSession(t, cl)
	r := NewRouter(sess)

	require.NoError(t, sess.Login(ctx, "alice@example.com", "secret1"))
	r.Navigate(ViewUpload)
	require.Equal(t, ViewUpload, r.Current())

	require.NoError(t, sess.Logout(ctx))
	assert.Equal(t, ViewAuth, r.Current())
}

func TestRouter_RestoredSessionStartsOnDashboard(t *testing.T) {
	ctx := context.Background()
	cl := client.NewSimulated(0).WithAccount("alice@example.com", "alice", "secret1")
	sess := newRouterSession(t, cl)
	require.NoError(t, sess.Login(ctx, "alice@example.com", "secret1"))

	// router created after the session is already authenticated
	r := NewRouter(sess)
	assert.Equal(t, ViewDashboard, r.Current())
}

func TestRouter_OnChangeObservesTransitions(t *testing.T) {
	ctx := context.Background()
	cl := client.NewSimulated(0).WithAccount("alice@example.com", "alice", "secret1")
	sess := newRouterSession(t, cl)
	r := NewRouter(sess)

	var seen []View
	r.OnChange(func(v View) { seen = append(seen, v) })

	r.Navigate(ViewAuth)
	require.NoError(t, sess.Login(ctx, "alice@example.com", "secret1"))
	require.NoError(t, sess.Logout(ctx))

	assert.Equal(t, []View{ViewAuth, ViewDashboard, ViewAuth}, seen)
}
