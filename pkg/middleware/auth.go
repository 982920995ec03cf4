package middleware

import (
	"net/http"
	"strings"

	"locker-rental/pkg/utils"

	"go.uber.org/zap"
)

// SessionValidator resolves a bearer token to its owner. Expired or
// unknown tokens return ok=false.
type SessionValidator interface {
	ValidateToken(token string) (userID, role string, ok bool)
}

// AuthSession validates the bearer token and stashes the user identity
// in the request context.
func AuthSession(sessions SessionValidator, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				utils.ResponseUnauthorized(w, "Missing authorization token")
				return
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				utils.ResponseUnauthorized(w, "Invalid token format. Use: Bearer <token>")
				return
			}

			token := parts[1]

			userID, role, ok := sessions.ValidateToken(token)
			if !ok {
				logger.Warn("Invalid or expired session", zap.String("path", r.URL.Path))
				utils.ResponseUnauthorized(w, "Invalid or expired session")
				return
			}

			ctx := utils.SetUserContext(r.Context(), userID, role)
			ctx = utils.SetTokenContext(ctx, token)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
