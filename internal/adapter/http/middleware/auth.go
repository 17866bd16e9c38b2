package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/naveenanimation20/api-labs/internal/auth"
	"github.com/naveenanimation20/api-labs/internal/domain"
	"github.com/naveenanimation20/api-labs/internal/logger"
)

type contextKey string

const userIDKey contextKey = "user_id"

// BearerAuth verifies the Authorization bearer token, confirms the subject
// still exists, and stores the user id in the request context. The handlers
// behind it trust that id completely and never re-validate credentials.
func BearerAuth(secret []byte, users domain.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(strings.ToLower(header), "bearer ") {
				logger.Info("auth middleware missing bearer token", logger.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
				})
				http.Error(w, "no token provided", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimSpace(header[len("Bearer "):])
			claims, err := auth.VerifyToken(secret, tokenString)
			if err != nil {
				logger.Info("auth middleware rejected token", logger.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
				})
				http.Error(w, "invalid or expired token", http.StatusUnauthorized)
				return
			}

			user, err := users.GetByID(r.Context(), claims.UserID)
			if err != nil {
				logger.Info("auth middleware unknown user", logger.Fields{
					"method": r.Method,
					"path":   r.URL.Path,
					"userId": claims.UserID,
				})
				http.Error(w, "user not found", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, user.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserID returns the authenticated user id stashed by BearerAuth, or the
// empty string when the request never passed through it.
func UserID(ctx context.Context) string {
	if value, ok := ctx.Value(userIDKey).(string); ok {
		return value
	}
	return ""
}
