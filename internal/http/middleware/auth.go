package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rogerio-castellano/boutique/internal/auth"
	"github.com/rogerio-castellano/boutique/internal/logging"
	"github.com/rs/zerolog"
)

type TokenParser interface {
	Parse(token string) (auth.Session, error)
}

type RevocationChecker interface {
	Revoked(ctx context.Context, tokenID string) (bool, error)
}

// Session attaches the caller's session to the request context. A request without a
// bearer token carries an anonymous session; a malformed, expired or revoked token is rejected.
func Session(tokens TokenParser, revoked RevocationChecker, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}
			if !strings.HasPrefix(header, "Bearer ") {
				unauthorized(w, "missing or invalid token")
				return
			}

			sess, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				logger.Debug().Err(err).Fields(logging.Redact(map[string]any{
					"path":          r.URL.Path,
					"authorization": header,
				})).Msg("rejected token")
				unauthorized(w, "invalid token")
				return
			}

			isRevoked, err := revoked.Revoked(r.Context(), sess.TokenID)
			if err != nil {
				logger.Error().Err(err).Msg("revocation check failed")
				http.Error(w, "could not verify token", http.StatusServiceUnavailable)
				return
			}
			if isRevoked {
				unauthorized(w, "token has been revoked")
				return
			}

			next.ServeHTTP(w, r.WithContext(auth.WithSession(r.Context(), sess)))
		})
	}
}

// RequireSession rejects anonymous callers.
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !auth.SessionFrom(r.Context()).Authenticated {
			unauthorized(w, "authentication required")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
