package reports

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/truthlens/truthlens/internal/api"
)

func TestService_Submit(t *testing.T) {
	ctx := context.Background()
	s := NewService(NewInMemoryRepository())

	report, err := s.Submit(ctx, "user-1", api.Report{
		Source: api.SourceWhatsApp,
		URL:    "https://phish.example/claim-prize",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, report.ID)
	assert.Equal(t, "user-1", report.UserID)
	assert.False(t, report.CreatedAt.IsZero())
}

func TestService_SubmitMessageOnly(t *testing.T) {
	ctx := context.Background()
	s := NewService(NewInMemoryRepository())

	_, err := s.Submit(ctx, "user-1", api.Report{
		Source:  api.SourceSMS,
		Message: "You have won a lottery you never entered",
	})
	require.NoError(t, err)
}

func TestService_SubmitRejectsEmpty(t *testing.T) {
	ctx := context.Background()
	s := NewService(NewInMemoryRepository())

	_, err := s.Submit(ctx, "user-1", api.Report{Source: api.SourceWeb})
	assert.ErrorIs(t, err, ErrMissingContent)
}

func TestService_SubmitRejectsUnknownSource(t *testing.T) {
	ctx := context.Background()
	s := NewService(NewInMemoryRepository())

	_, err := s.Submit(ctx, "user-1", api.Report{Source: "carrier-pigeon", URL: "https://x.example"})
	assert.ErrorIs(t, err, api.ErrUnknownSource)
}

func TestService_ListByUser(t *testing.T) {
	ctx := context.Background()
	s := NewService(NewInMemoryRepository())

	_, err := s.Submit(ctx, "user-1", api.Report{Source: api.SourceWeb, URL: "https://a.example"})
	require.NoError(t, err)
	_, err = s.Submit(ctx, "user-2", api.Report{Source: api.SourceWeb, URL: "https://b.example"})
	require.NoError(t, err)
	_, err = s.Submit(ctx, "user-1", api.Report{Source: api.SourceSMS, Message: "spam"})
	require.NoError(t, err)

	list, err := s.ListByUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	// newest first
	assert.Equal(t, api.SourceSMS, list[0].Source)
}
