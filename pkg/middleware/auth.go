package middleware

import (
	"net/http"
	"strings"

	"sreca-account/internal/data/repository"
	"sreca-account/pkg/utils"

	"go.uber.org/zap"
)

func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

// AuthSession validates the Bearer session token and injects the caller's
// user id into the request context as the trusted identity.
func AuthSession(sessionRepo repository.SessionRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				utils.ResponseUnauthorized(w, "Authentication required. Please login again.")
				return
			}

			session, err := sessionRepo.FindValidSession(r.Context(), token)
			if err != nil {
				logger.Error("Failed to validate session", zap.Error(err))
				utils.ResponseInternalError(w, "Internal server error")
				return
			}

			if session == nil {
				logger.Warn("Invalid or expired session")
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			ctx := utils.SetUserContext(r.Context(), session.UserID)
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Guest rejects callers that already hold a valid session. Signup and
// login are only for unauthenticated clients.
func Guest(sessionRepo repository.SessionRepository, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token != "" {
				session, err := sessionRepo.FindValidSession(r.Context(), token)
				if err != nil {
					logger.Error("Failed to check session", zap.Error(err))
					utils.ResponseInternalError(w, "Internal server error")
					return
				}
				if session != nil {
					utils.ResponseForbidden(w, "You are already logged in. Please logout first.")
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}
