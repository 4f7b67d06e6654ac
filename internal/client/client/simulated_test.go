package client

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/truthlens/truthlens/internal/api"
	"github.com/truthlens/truthlens/internal/common"
)

func TestSimulated_LoginUnknownAccount(t *testing.T) {
	s := NewSimulated(0)

	_, err := s.Login(context.Background(), "a@b.com", "secret1")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestSimulated_RegisterThenLogin(t *testing.T) {
	s := NewSimulated(0)
	ctx := context.Background()

	u, err := s.Register(ctx, "x@y.com", "xy", "abcdef")
	require.NoError(t, err)
	require.Equal(t, "x@y.com", u.Email)
	require.Equal(t, "xy", u.Username)

	u2, err := s.Login(ctx, "x@y.com", "abcdef")
	require.NoError(t, err)
	require.Equal(t, u, u2)
}

func TestSimulated_RegisterDuplicate(t *testing.T) {
	s := NewSimulated(0)
	ctx := context.Background()

	_, err := s.Register(ctx, "x@y.com", "xy", "abcdef")
	require.NoError(t, err)

	_, err = s.Register(ctx, "X@Y.com", "other", "qwerty")
	require.ErrorIs(t, err, common.ErrAlreadyExists)
}

func TestSimulated_LoginWrongPassword(t *testing.T) {
	s := NewSimulated(0).WithAccount("a@b.com", "alice", "secret1")

	_, err := s.Login(context.Background(), "a@b.com", "wrong")
	require.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestSimulated_LoginReturnsStoredUsername(t *testing.T) {
	// The username always comes from the stored account record; it is never
	// derived from the email local part.
	s := NewSimulated(0).WithAccount("a@b.com", "completely-different", "secret1")

	u, err := s.Login(context.Background(), "a@b.com", "secret1")
	require.NoError(t, err)
	require.Equal(t, "completely-different", u.Username)
}

func TestSimulated_SubmitReportRecords(t *testing.T) {
	s := NewSimulated(0)
	ctx := context.Background()

	r := api.Report{Source: api.SourceSMS, URL: "https://phish.example", Message: "click here"}
	receipt, err := s.SubmitReport(ctx, r)
	require.NoError(t, err)
	require.NotEmpty(t, receipt.ID)
	require.False(t, receipt.ReceivedAt.IsZero())

	got := s.Reports()
	require.Len(t, got, 1)
	require.Equal(t, r, got[0])
}

func TestSimulated_AnalyzeImageDeterministic(t *testing.T) {
	s := NewSimulated(0)
	ctx := context.Background()

	img := []byte("png bytes")
	a1, err := s.AnalyzeImage(ctx, "pic.png", img)
	require.NoError(t, err)
	a2, err := s.AnalyzeImage(ctx, "pic.png", img)
	require.NoError(t, err)

	require.Equal(t, a1.Verdict, a2.Verdict)
	require.Equal(t, a1.Confidence, a2.Confidence)
	require.Equal(t, a1.SHA256, a2.SHA256)
	require.NotEqual(t, a1.ID, a2.ID)
}

func TestSimulated_DelayRespectsContext(t *testing.T) {
	s := NewSimulated(time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, err := s.Login(ctx, "a@b.com", "secret1")
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
