package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rogerio-castellano/boutique/internal/auth"
	rl "github.com/rogerio-castellano/boutique/internal/http/rate_limiter"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type revocations map[string]bool

func (r revocations) Revoked(_ context.Context, id string) (bool, error) {
	if id == "broken" {
		return false, errors.New("cache down")
	}
	return r[id], nil
}

func echoSession(w http.ResponseWriter, r *http.Request) {
	sess := auth.SessionFrom(r.Context())
	if sess.Authenticated {
		w.Write([]byte(sess.UserID))
		return
	}
	w.Write([]byte("anonymous"))
}

func TestSession(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	token, sess, err := tokens.Issue(auth.Session{UserID: "u1", Email: "u1@example.com"})
	require.NoError(t, err)

	serve := func(revoked revocations, header string) *httptest.ResponseRecorder {
		h := Session(tokens, revoked, zerolog.Nop())(http.HandlerFunc(echoSession))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	t.Run("no token gives an anonymous session", func(t *testing.T) {
		rec := serve(revocations{}, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "anonymous", rec.Body.String())
	})

	t.Run("valid token carries the user", func(t *testing.T) {
		rec := serve(revocations{}, "Bearer "+token)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "u1", rec.Body.String())
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		rec := serve(revocations{}, "Bearer not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("non bearer scheme is rejected", func(t *testing.T) {
		rec := serve(revocations{}, "Basic dTE6cHc=")
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("revoked token is rejected", func(t *testing.T) {
		rec := serve(revocations{sess.TokenID: true}, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "revoked")
	})

	t.Run("failing revocation store is not treated as valid", func(t *testing.T) {
		h := Session(tokenStub{sess: auth.Session{UserID: "u2", Authenticated: true, TokenID: "broken"}}, revocations{}, zerolog.Nop())(http.HandlerFunc(echoSession))
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer anything")
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

type tokenStub struct{ sess auth.Session }

func (s tokenStub) Parse(string) (auth.Session, error) { return s.sess, nil }

func TestRequireSession(t *testing.T) {
	h := RequireSession(http.HandlerFunc(echoSession))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(auth.WithSession(req.Context(), auth.Session{UserID: "u1", Authenticated: true}))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimit(t *testing.T) {
	h := RateLimit(rl.New(1, 2))(http.HandlerFunc(echoSession))

	codes := make([]int, 3)
	for i := range codes {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.0.2.7:5555"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		codes[i] = rec.Code
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}
