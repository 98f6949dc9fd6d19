package auth

import (
	"context"
	"time"
)

// Session is the caller's authentication state. The zero value is an anonymous session.
type Session struct {
	UserID        string `json:"user_id,omitempty"`
	Email         string `json:"email,omitempty"`
	Authenticated bool   `json:"authenticated"`
	// Local marks a session opened against the mock store; it never reaches the backend.
	Local     bool      `json:"local,omitempty"`
	TokenID   string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at,omitzero"`
}

type contextKey struct{}

func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, contextKey{}, s)
}

// SessionFrom returns the session stored in ctx, anonymous when none is.
func SessionFrom(ctx context.Context) Session {
	s, _ := ctx.Value(contextKey{}).(Session)
	return s
}
