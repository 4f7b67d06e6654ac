// Package server initializes and runs the TruthLens API server.
// It connects to Postgres, wires the domain services and handles
// graceful shutdown on OS signals.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/truthlens/truthlens/internal/logging"
	"github.com/truthlens/truthlens/internal/server/analyses"
	"github.com/truthlens/truthlens/internal/server/config"
	"github.com/truthlens/truthlens/internal/server/httpapi"
	"github.com/truthlens/truthlens/internal/server/reports"
	"github.com/truthlens/truthlens/internal/server/shared/db"
	"github.com/truthlens/truthlens/internal/server/users"
)

type App struct {
	config          *config.Config
	logger          logging.Logger
	userService     *users.Service
	reportService   *reports.Service
	analysisService *analyses.Service
}

func NewApp(c *config.Config) (*App, error) {

	slog := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := logging.NewSlogLogger(slog)

	m, err := db.NewPostgresRepositoryManager(c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	us := users.NewService(m.Users(), m.RefreshTokens(), c)
	rs := reports.NewService(m.Reports())
	as := analyses.NewService(m.Analyses(), c)

	return &App{config: c, logger: logger, userService: us, reportService: rs, analysisService: as}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {

	s, err := httpapi.NewServer(app.config.EndpointAddrHTTP, app.logger, app.userService, app.reportService, app.analysisService, app.config.SecretKey)

	if err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	} else {

		if err := s.Run(ctx); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

}
