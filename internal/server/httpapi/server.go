// Package httpapi exposes the TruthLens backend as a JSON HTTP API.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/truthlens/truthlens/internal/logging"
	"github.com/truthlens/truthlens/internal/server/analyses"
	"github.com/truthlens/truthlens/internal/server/reports"
	"github.com/truthlens/truthlens/internal/server/users"
)

type Server struct {
	address   string
	logger    logging.Logger
	users     *users.Service
	reports   *reports.Service
	analyses  *analyses.Service
	jwtSecret []byte
}

func NewServer(a string, l logging.Logger, us *users.Service, rs *reports.Service, as *analyses.Service, secretKey string) (*Server, error) {
	return &Server{
		address:   a,
		logger:    l.With("module", "http_server"),
		users:     us,
		reports:   rs,
		analyses:  as,
		jwtSecret: []byte(secretKey),
	}, nil
}

// Handler builds the API router. Split out from Run so tests can drive the
// routes through httptest.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	api := r.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/ping", s.ping).Methods(http.MethodGet)
	api.HandleFunc("/auth/register", s.register).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", s.login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", s.refresh).Methods(http.MethodPost)

	authed := api.NewRoute().Subrouter()
	authed.Use(s.accessTokenMiddleware)
	authed.HandleFunc("/reports", s.submitReport).Methods(http.MethodPost)
	authed.HandleFunc("/reports", s.listReports).Methods(http.MethodGet)
	authed.HandleFunc("/analyses/presign", s.presignUpload).Methods(http.MethodPost)
	authed.HandleFunc("/analyses", s.analyze).Methods(http.MethodPost)

	return r
}

// Run serves the API until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
