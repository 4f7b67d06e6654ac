// Package app wires the TruthLens client together and drives its
// read-eval-print loop. Screens are modeled as views behind a navigation
// guard; commands move between views and run the corresponding workflow.
package app

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	_ "modernc.org/sqlite"

	"github.com/truthlens/truthlens/internal/client/client"
	"github.com/truthlens/truthlens/internal/client/config"
	"github.com/truthlens/truthlens/internal/client/session"
	"github.com/truthlens/truthlens/internal/client/storage"
	"github.com/truthlens/truthlens/internal/client/workflows"
	"github.com/truthlens/truthlens/internal/logging"
)

type App struct {
	config  *config.Config
	db      *sql.DB
	client  client.Client
	session *session.Store
	router  *Router

	authFlow     *workflows.AuthFlow
	reportFlow   *workflows.ReportFlow
	analysisFlow *workflows.AnalysisFlow

	reader *bufio.Reader
}

func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	db, err := storage.Open(ctx, cfg.DatabasePath)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	var cl client.Client
	if cfg.Mode == config.ModeOnline {
		cl = client.NewHTTPClient(cfg.ServerEndpointURL, cfg.RequestTimeout)
	} else {
		cl = client.NewSimulated(cfg.SimulatedDelay)
	}

	sess := session.NewStore(storage.NewSQLiteKV(db), cl, logger)
	if err := sess.Initialize(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	a := &App{
		config:       cfg,
		db:           db,
		client:       cl,
		session:      sess,
		router:       NewRouter(sess),
		authFlow:     workflows.NewAuthFlow(sess),
		reportFlow:   workflows.NewReportFlow(cl),
		analysisFlow: workflows.NewAnalysisFlow(cl),
		reader:       bufio.NewReader(os.Stdin),
	}
	return a, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.Close()
	a.Root(ctx)
}

func (a *App) Close() {
	if a.client != nil {
		_ = a.client.Close()
	}
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// Whoami prints the signed-in user, or a hint when signed out.
func (a *App) Whoami(ctx context.Context) error {
	u := a.session.Current()
	if u == nil {
		fmt.Println("Not signed in. Use 'login' or 'signup'.")
		return nil
	}
	fmt.Printf("%s <%s>\n", u.Username, u.Email)
	return nil
}
