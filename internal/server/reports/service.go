package reports

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/truthlens/truthlens/internal/api"
)

// ErrMissingContent is returned when a report carries neither a link nor a
// message.
var ErrMissingContent = errors.New("report has no content")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Submit validates and stores a report on behalf of userID. The client
// validates before sending; the checks are repeated here because the API is
// reachable without the client.
func (s *Service) Submit(ctx context.Context, userID string, report api.Report) (*Report, error) {

	if !report.Source.Valid() {
		return nil, api.ErrUnknownSource
	}
	if report.URL == "" && report.Message == "" {
		return nil, ErrMissingContent
	}

	stored := &Report{
		ID:      uuid.NewString(),
		UserID:  userID,
		Source:  report.Source,
		URL:     report.URL,
		Message: report.Message,
	}

	stored, err := s.repo.Create(ctx, stored)
	if err != nil {
		return nil, fmt.Errorf("error creating report: %v", err)
	}

	return stored, nil
}

// ListByUser returns the reports previously submitted by userID, newest
// first.
func (s *Service) ListByUser(ctx context.Context, userID string) ([]*Report, error) {
	return s.repo.ListByUser(ctx, userID)
}
