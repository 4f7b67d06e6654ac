package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/truthlens/truthlens/internal/common"
	"github.com/truthlens/truthlens/internal/httputil"
	"github.com/truthlens/truthlens/internal/server/auth"
)

type ctxKey string

const userIDKey ctxKey = "userID"

// accessTokenMiddleware verifies the bearer access token and stores the user
// ID in the request context. An expired token is reported with its sentinel
// message so clients know to refresh instead of re-authenticating.
func (s *Server) accessTokenMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		header := r.Header.Get(common.AuthorizationHeaderName)
		if !strings.HasPrefix(header, common.BearerPrefix) {
			httputil.WriteError(w, http.StatusUnauthorized, common.ErrUnauthorized.Error())
			return
		}
		accessToken := strings.TrimPrefix(header, common.BearerPrefix)

		userID, err := auth.GetUserIDFromToken(accessToken, s.jwtSecret)
		if err != nil {
			if errors.Is(err, common.ErrTokenExpired) {
				httputil.WriteError(w, http.StatusUnauthorized, common.ErrTokenExpired.Error())
				return
			}
			httputil.WriteError(w, http.StatusUnauthorized, common.ErrInvalidToken.Error())
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// userIDFromContext returns the authenticated user ID placed by the
// middleware.
func userIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(userIDKey).(string)
	return id
}
