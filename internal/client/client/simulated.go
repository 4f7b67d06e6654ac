package client

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/truthlens/truthlens/internal/analysis"
	"github.com/truthlens/truthlens/internal/api"
	"github.com/truthlens/truthlens/internal/common"
)

// Simulated is an in-process Client used when no backend is configured and as
// the deterministic double in tests. Accounts live in memory for the lifetime
// of the process; every operation waits the configured delay so the pending
// state of a workflow is observable, exactly like a slow network call.
type Simulated struct {
	delay time.Duration

	mu       sync.Mutex
	accounts map[string]simAccount
	reports  []api.Report
}

type simAccount struct {
	username string
	password string
}

// NewSimulated constructs a simulated backend with the given per-operation
// delay. A zero delay makes it settle immediately (the usual test setup).
func NewSimulated(delay time.Duration) *Simulated {
	return &Simulated{
		delay:    delay,
		accounts: make(map[string]simAccount),
	}
}

// WithAccount seeds an account, so Login can succeed without a prior
// Register. Returns s for chaining.
func (s *Simulated) WithAccount(email, username, password string) *Simulated {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[strings.ToLower(email)] = simAccount{username: username, password: password}
	return s
}

func (s *Simulated) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.delay)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Simulated) Close() error { return nil }

func (s *Simulated) Login(ctx context.Context, email, password string) (*api.User, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	acc, ok := s.accounts[strings.ToLower(email)]
	if !ok || acc.password != password {
		return nil, common.ErrInvalidCredentials
	}
	return &api.User{Email: email, Username: acc.username}, nil
}

func (s *Simulated) Register(ctx context.Context, email, username, password string) (*api.User, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	key := strings.ToLower(email)
	if _, ok := s.accounts[key]; ok {
		return nil, common.ErrAlreadyExists
	}
	s.accounts[key] = simAccount{username: username, password: password}
	return &api.User{Email: email, Username: username}, nil
}

func (s *Simulated) SubmitReport(ctx context.Context, report api.Report) (*api.ReportReceipt, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.reports = append(s.reports, report)
	s.mu.Unlock()

	return &api.ReportReceipt{ID: uuid.New().String(), ReceivedAt: time.Now()}, nil
}

func (s *Simulated) AnalyzeImage(ctx context.Context, filename string, image []byte) (*api.AnalysisReport, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	verdict, confidence, digest := analysis.Evaluate(image)
	return &api.AnalysisReport{
		ID:         uuid.New().String(),
		Verdict:    verdict,
		Confidence: confidence,
		SHA256:     digest,
		AnalyzedAt: time.Now(),
	}, nil
}

func (s *Simulated) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Reports returns a copy of everything submitted so far; test hook.
func (s *Simulated) Reports() []api.Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]api.Report, len(s.reports))
	copy(out, s.reports)
	return out
}
