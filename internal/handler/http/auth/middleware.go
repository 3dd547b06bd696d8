package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"notes-api/internal/handler/http/respond"
	"notes-api/internal/observability/logging"
)

type ctxKey string

const ctxUser ctxKey = "user"

// UserFromContext returns the authenticated subject, if any.
func UserFromContext(ctx context.Context) (string, bool) {
	user, ok := ctx.Value(ctxUser).(string)
	return user, ok
}

// RequireWriter authenticates the request with a bearer token carrying the
// writer role. With an empty secret every request passes unauthenticated.
func RequireWriter(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if len(secret) == 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			logger := logging.FromContext(r.Context())

			claims, err := parseBearer(r.Header.Get("Authorization"), secret)
			if err != nil {
				RecordAuthRequest("unauthorized")
				logger.Warn("authentication failed", slog.String("reason", err.Error()))
				w.Header().Set("WWW-Authenticate", `Bearer realm="notes-api"`)
				respond.Error(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			if claims.Role != RoleWriter {
				RecordAuthRequest("forbidden")
				logger.Warn("authorization failed",
					slog.String("sub", claims.Subject),
					slog.String("role", claims.Role))
				respond.Error(w, http.StatusForbidden, "Forbidden")
				return
			}

			RecordAuthRequest("success")
			ctx := context.WithValue(r.Context(), ctxUser, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func parseBearer(header string, secret []byte) (*Claims, error) {
	const prefix = "Bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return nil, errors.New("missing bearer token")
	}
	return ParseToken(strings.TrimSpace(header[len(prefix):]), secret)
}
