package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/personalvault/synapse-api/internal/httpx"
	"github.com/personalvault/synapse-api/internal/usecase"
)

type contextKey struct{}

var userIDKey = contextKey{}

// UserID returns the authenticated user identifier stored by Authenticator.
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey).(string)
	return id, ok
}

// Authenticator rejects requests without a valid bearer token and stores the
// resolved user identifier in the request context. Verification is a single
// check per request; nothing is cached across requests.
func Authenticator(authUsecase usecase.AuthUsecase, logger *zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				httpx.WriteError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			// Clients usually send "Bearer <token>", but a bare token is
			// accepted too.
			token := header
			parts := strings.SplitN(header, " ", 2)
			if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
				token = parts[1]
			}

			userID, err := authUsecase.Authenticate(r.Context(), token)
			if err != nil {
				logger.Warn().Err(err).Msg("bearer token rejected")
				httpx.WriteError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
