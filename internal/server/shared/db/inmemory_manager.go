package db

import (
	"context"
	"database/sql"

	"github.com/truthlens/truthlens/internal/server/analyses"
	"github.com/truthlens/truthlens/internal/server/refreshtokens"
	"github.com/truthlens/truthlens/internal/server/reports"
	"github.com/truthlens/truthlens/internal/server/users"
)

// InMemoryRepositoryManager backs every repository with process memory. Meant
// for tests and throwaway local runs; nothing survives a restart.
type InMemoryRepositoryManager struct {
	users         users.Repository
	refreshTokens refreshtokens.Repository
	reports       reports.Repository
	analyses      analyses.Repository
}

func NewInMemoryRepositoryManager() *InMemoryRepositoryManager {
	return &InMemoryRepositoryManager{
		users:         users.NewInMemoryRepository(),
		refreshTokens: refreshtokens.NewInMemoryRepository(),
		reports:       reports.NewInMemoryRepository(),
		analyses:      analyses.NewInMemoryRepository(),
	}
}

func (m *InMemoryRepositoryManager) RunMigrations(ctx context.Context) error { return nil }

func (m *InMemoryRepositoryManager) Conn() *sql.DB { return nil }

func (m *InMemoryRepositoryManager) Users() users.Repository { return m.users }

func (m *InMemoryRepositoryManager) RefreshTokens() refreshtokens.Repository {
	return m.refreshTokens
}

func (m *InMemoryRepositoryManager) Reports() reports.Repository { return m.reports }

func (m *InMemoryRepositoryManager) Analyses() analyses.Repository { return m.analyses }
