package httpapi

import (
	"errors"
	"net/http"

	"github.com/truthlens/truthlens/internal/api"
	"github.com/truthlens/truthlens/internal/common"
	"github.com/truthlens/truthlens/internal/httputil"
	"github.com/truthlens/truthlens/internal/server/reports"
	"github.com/truthlens/truthlens/internal/server/users"
)

func (s *Server) ping(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func (s *Server) register(w http.ResponseWriter, r *http.Request) {
	var req api.RegisterRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, pair, err := s.users.Register(r.Context(), req.Email, req.Username, req.Password)
	if err != nil {
		s.writeServiceError(r, w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, authResponse(user, pair))
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req api.LoginRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	user, pair, err := s.users.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeServiceError(r, w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, authResponse(user, pair))
}

func (s *Server) refresh(w http.ResponseWriter, r *http.Request) {
	var req api.RefreshRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	pair, err := s.users.Refresh(r.Context(), req.RefreshToken)
	if err != nil {
		s.writeServiceError(r, w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, api.RefreshResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	})
}

func (s *Server) submitReport(w http.ResponseWriter, r *http.Request) {
	var req api.Report
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	report, err := s.reports.Submit(r.Context(), userIDFromContext(r.Context()), req)
	if err != nil {
		s.writeServiceError(r, w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, api.ReportReceipt{
		ID:         report.ID,
		ReceivedAt: report.CreatedAt,
	})
}

func (s *Server) listReports(w http.ResponseWriter, r *http.Request) {
	list, err := s.reports.ListByUser(r.Context(), userIDFromContext(r.Context()))
	if err != nil {
		s.writeServiceError(r, w, err)
		return
	}

	out := make([]api.Report, 0, len(list))
	for _, report := range list {
		out = append(out, api.Report{
			Source:  report.Source,
			URL:     report.URL,
			Message: report.Message,
		})
	}
	httputil.WriteJSON(w, http.StatusOK, out)
}

func (s *Server) presignUpload(w http.ResponseWriter, r *http.Request) {
	key, url, err := s.analyses.GetPresignedPutUrl(r.Context())
	if err != nil {
		s.writeServiceError(r, w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, api.PresignResponse{Key: key, URL: url})
}

func (s *Server) analyze(w http.ResponseWriter, r *http.Request) {
	var req api.AnalyzeRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		httputil.WriteError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Key == "" {
		httputil.WriteError(w, http.StatusBadRequest, "missing storage key")
		return
	}

	result, err := s.analyses.Analyze(r.Context(), userIDFromContext(r.Context()), req.Key, req.Filename)
	if err != nil {
		s.writeServiceError(r, w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, api.AnalysisReport{
		ID:         result.ID,
		Verdict:    result.Verdict,
		Confidence: result.Confidence,
		SHA256:     result.SHA256,
		AnalyzedAt: result.CreatedAt,
	})
}

func authResponse(user *users.User, pair *users.TokenPair) api.AuthResponse {
	return api.AuthResponse{
		User:         api.User{Email: user.Email, Username: user.Username},
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}
}

// writeServiceError maps service errors onto HTTP statuses. Sentinel auth
// errors keep their message so the client can match them exactly.
func (s *Server) writeServiceError(r *http.Request, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, common.ErrInvalidCredentials):
		httputil.WriteError(w, http.StatusUnauthorized, common.ErrInvalidCredentials.Error())
	case errors.Is(err, common.ErrRefreshTokenExpired):
		httputil.WriteError(w, http.StatusUnauthorized, common.ErrRefreshTokenExpired.Error())
	case errors.Is(err, common.ErrInvalidToken):
		httputil.WriteError(w, http.StatusUnauthorized, common.ErrInvalidToken.Error())
	case errors.Is(err, common.ErrAlreadyExists):
		httputil.WriteError(w, http.StatusConflict, common.ErrAlreadyExists.Error())
	case errors.Is(err, common.ErrNotFound):
		httputil.WriteError(w, http.StatusNotFound, common.ErrNotFound.Error())
	case errors.Is(err, api.ErrUnknownSource), errors.Is(err, reports.ErrMissingContent):
		httputil.WriteError(w, http.StatusBadRequest, err.Error())
	default:
		s.logger.Error(r.Context(), "request failed", "error", err.Error())
		httputil.WriteError(w, http.StatusInternalServerError, common.ErrInternal.Error())
	}
}
