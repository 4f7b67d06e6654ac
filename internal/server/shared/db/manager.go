// Package db assembles the server's repositories over a shared backing store.
package db

import (
	"context"
	"database/sql"

	"github.com/truthlens/truthlens/internal/server/analyses"
	"github.com/truthlens/truthlens/internal/server/refreshtokens"
	"github.com/truthlens/truthlens/internal/server/reports"
	"github.com/truthlens/truthlens/internal/server/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Users() users.Repository
	RefreshTokens() refreshtokens.Repository
	Reports() reports.Repository
	Analyses() analyses.Repository
}
