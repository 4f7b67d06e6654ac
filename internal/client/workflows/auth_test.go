package workflows

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/truthlens/truthlens/internal/client/async"
	"github.com/truthlens/truthlens/internal/client/client"
	"github.com/truthlens/truthlens/internal/client/forms"
	"github.com/truthlens/truthlens/internal/client/session"
	"github.com/truthlens/truthlens/internal/client/storage"
	"github.com/truthlens/truthlens/internal/common"
	"github.com/truthlens/truthlens/internal/logging"
)

func newTestSession(t *testing.T, cl client.Client) *session.Store {
	t.Helper()
	db, err := storage.Open(context.Background(), filepath.Join(t.TempDir(), "client.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return session.NewStore(storage.NewSQLiteKV(db), cl, logger)
}

func TestAuthFlow_InvalidFormAborts(t *testing.T) {
	cl := client.NewSimulated(0)
	f := NewAuthFlow(newTestSession(t, cl))

	f.Form().Set(forms.FieldEmail, "not-an-email")
	f.Form().Set(forms.FieldPassword, "short")

	err := f.Submit(context.Background())
	assert.ErrorIs(t, err, ErrInvalidForm)
	assert.Equal(t, async.StatusIdle, f.State().Status)
	assert.NotEmpty(t, f.Form().FieldErrors())
}

func TestAuthFlow_LoginSuccess(t *testing.T) {
	cl := client.NewSimulated(0).WithAccount("alice@example.com", "alice", "secret1")
	sess := newTestSession(t, cl)
	f := NewAuthFlow(sess)

	f.Form().Set(forms.FieldEmail, "alice@example.com")
	f.Form().Set(forms.FieldPassword, "secret1")

	require.NoError(t, f.Submit(context.Background()))
	assert.Equal(t, async.StatusSucceeded, f.State().Status)
	assert.True(t, sess.IsAuthenticated())
}

func TestAuthFlow_LoginFailureLeavesSessionUnchanged(t *testing.T) {
	cl := client.NewSimulated(0).WithAccount("alice@example.com", "alice", "secret1")
	sess := newTestSession(t, cl)
	f := NewAuthFlow(sess)

	f.Form().Set(forms.FieldEmail, "alice@example.com")
	f.Form().Set(forms.FieldPassword, "wrong-password")

	err := f.Submit(context.Background())
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
	assert.Equal(t, async.StatusFailed, f.State().Status)
	assert.False(t, sess.IsAuthenticated())
}

func TestAuthFlow_SignupMode(t *testing.T) {
	cl := client.NewSimulated(0)
	sess := newTestSession(t, cl)
	f := NewAuthFlow(sess)

	f.SetMode(forms.KindSignup)
	f.Form().Set(forms.FieldEmail, "bob@example.com")
	f.Form().Set(forms.FieldUsername, "bobby")
	f.Form().Set(forms.FieldPassword, "secret1")

	require.NoError(t, f.Submit(context.Background()))
	assert.True(t, sess.IsAuthenticated())
	assert.Equal(t, "bobby", sess.Current().Username)
}

func TestAuthFlow_SetModeKeepsValues(t *testing.T) {
	f := NewAuthFlow(newTestSession(t, client.NewSimulated(0)))

	f.Form().Set(forms.FieldEmail, "alice@example.com")
	f.SetMode(forms.KindSignup)
	assert.Equal(t, forms.KindSignup, f.Mode())
	assert.Equal(t, "alice@example.com", f.Form().Value(forms.FieldEmail))

	// unrelated kinds are ignored
	f.SetMode(forms.KindReport)
	assert.Equal(t, forms.KindSignup, f.Mode())
}

func TestAuthFlow_SignupRequiresUsername(t *testing.T) {
	f := NewAuthFlow(newTestSession(t, client.NewSimulated(0)))

	f.SetMode(forms.KindSignup)
	f.Form().Set(forms.FieldEmail, "bob@example.com")
	f.Form().Set(forms.FieldUsername, "ab")
	f.Form().Set(forms.FieldPassword, "secret1")

	err := f.Submit(context.Background())
	assert.ErrorIs(t, err, ErrInvalidForm)
	assert.Contains(t, f.Form().FieldErrors(), forms.FieldUsername)
}
