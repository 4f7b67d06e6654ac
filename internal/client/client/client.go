// Package client defines the operation interface the TruthLens client core
// depends on, plus its two implementations: an HTTP client for the real
// backend and an in-memory simulated client for demo mode and tests.
package client

import (
	"context"

	"github.com/truthlens/truthlens/internal/api"
)

// Client is the set of external operations the client core invokes. The
// session store and the workflow controllers never talk to a transport
// directly; they go through this interface so a test double can stand in.
//
// All methods honor context cancellation and deadlines.
type Client interface {
	Close() error

	// Login verifies credentials and returns the stored user record.
	// Fails with common.ErrInvalidCredentials on a mismatch.
	Login(ctx context.Context, email, password string) (*api.User, error)

	// Register creates a new account. Fails with common.ErrAlreadyExists
	// when the email is taken.
	Register(ctx context.Context, email, username, password string) (*api.User, error)

	// SubmitReport files a suspicious link/message report.
	SubmitReport(ctx context.Context, report api.Report) (*api.ReportReceipt, error)

	// AnalyzeImage submits image bytes for authenticity analysis.
	AnalyzeImage(ctx context.Context, filename string, image []byte) (*api.AnalysisReport, error)

	// Ping checks backend liveness.
	Ping(ctx context.Context) error
}
