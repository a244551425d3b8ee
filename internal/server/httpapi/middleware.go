package httpapi

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/userauth/internal/common"
	"github.com/dmitrijs2005/userauth/internal/server/auth"
	"github.com/google/uuid"
)

type ctxKey string

const subjectKey ctxKey = "subject"

// subjectFromContext returns the token subject stored by
// bearerAuthMiddleware.
func subjectFromContext(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(subjectKey).(string)
	return subject, ok
}

// bearerAuthMiddleware gates a route behind a valid session token.
// A missing or malformed Authorization header is 401; a present but
// invalid or expired token is 403, so the client can tell "log in" apart
// from "log in again".
func (s *Server) bearerAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			writeError(w, http.StatusUnauthorized, "Access denied, no token provided")
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")

		subject, err := auth.ParseToken(tokenString, s.jwtSecret)
		if err != nil {
			if errors.Is(err, common.ErrTokenExpired) {
				writeError(w, http.StatusForbidden, "Token expired")
				return
			}
			writeError(w, http.StatusForbidden, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), subjectKey, subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requestLogMiddleware assigns each request an id, echoes it in the
// X-Request-Id header, and logs the method and path.
func (s *Server) requestLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get("X-Request-Id")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set("X-Request-Id", requestID)

		s.logger.Info(r.Context(), "request", "method", r.Method, "path", r.URL.Path, "request_id", requestID)
		next.ServeHTTP(w, r)
	})
}

// corsMiddleware allows any origin, matching the service's public API
// posture.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
