package gateway

import (
	"context"
	"errors"
	"time"

	"github.com/rogerio-castellano/boutique/internal/auth"
	"github.com/rogerio-castellano/boutique/internal/cache"
	"github.com/rogerio-castellano/boutique/internal/events"
	"github.com/rogerio-castellano/boutique/internal/logging"
	"github.com/rogerio-castellano/boutique/internal/models"
	"github.com/rogerio-castellano/boutique/internal/probe"
	"github.com/rogerio-castellano/boutique/internal/repo"
)

type AuthResult struct {
	Token   string       `json:"token"`
	Session auth.Session `json:"session"`
	Mode    probe.Mode   `json:"mode"`
}

// SignUp creates an account. On the backend the password is stored as a bcrypt hash
// and an empty profile is created; the mock store accepts anything.
func (g *Gateway) SignUp(ctx context.Context, email, password, fullName string) (AuthResult, error) {
	mode := g.Mode(ctx)
	if mode == probe.Remote {
		res, err := g.remoteSignUp(ctx, email, password, fullName)
		if err == nil || !g.fallback("SignUp", err) {
			return res, err
		}
	}

	u, err := g.local.CreateUser(ctx, email, "")
	if err != nil {
		return AuthResult{}, err
	}
	if fullName != "" {
		p, err := g.local.GetProfile(ctx, u.ID)
		if err != nil {
			return AuthResult{}, err
		}
		p.FullName = fullName
		if _, err := g.local.SaveProfile(ctx, u.ID, p); err != nil {
			return AuthResult{}, err
		}
	}
	return g.open(events.SignedUp, auth.Session{UserID: u.ID, Email: u.Email, Local: true}, mode)
}

func (g *Gateway) remoteSignUp(ctx context.Context, email, password, fullName string) (AuthResult, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return AuthResult{}, err
	}
	u, err := g.remote.CreateUser(ctx, email, hash)
	if err != nil {
		return AuthResult{}, err
	}

	profile := models.Profile{ID: u.ID, Email: u.Email, FullName: fullName, Role: models.RoleVDI}
	if _, err := g.remote.SaveProfile(ctx, u.ID, profile); err != nil {
		g.logger.Warn().Err(err).Str("user_id", u.ID).Msg("account created without profile")
	}
	return g.open(events.SignedUp, auth.Session{UserID: u.ID, Email: u.Email}, probe.Remote)
}

// SignIn checks the credentials. A rejection by the backend is returned as
// repo.ErrInvalidCredentials; an unreachable backend opens a mock session instead.
func (g *Gateway) SignIn(ctx context.Context, email, password string) (AuthResult, error) {
	mode := g.Mode(ctx)
	if mode == probe.Remote {
		u, err := g.remote.GetUserByEmail(ctx, email)
		if err == nil && !auth.CheckPassword(u.PasswordHash, password) {
			err = repo.ErrInvalidCredentials
		}
		if err == nil {
			return g.open(events.SignedIn, auth.Session{UserID: u.ID, Email: u.Email}, mode)
		}
		if !g.fallback("SignIn", err) {
			return AuthResult{}, err
		}
	}

	u, err := g.local.GetUserByEmail(ctx, email)
	if err != nil {
		return AuthResult{}, err
	}
	return g.open(events.SignedIn, auth.Session{UserID: u.ID, Email: u.Email, Local: true}, mode)
}

// SignOut revokes the caller's token until it would have expired anyway.
func (g *Gateway) SignOut(ctx context.Context) error {
	sess := auth.SessionFrom(ctx)
	if !sess.Authenticated {
		return nil
	}

	ttl := time.Until(sess.ExpiresAt)
	if ttl > 0 {
		if err := g.revoked.Set(ctx, revokedKey(sess.TokenID), []byte("1"), ttl); err != nil {
			return err
		}
	}
	g.publish(events.Event{Type: events.SignedOut, UserID: sess.UserID})
	return nil
}

// Revoked reports whether the token has been signed out.
func (g *Gateway) Revoked(ctx context.Context, tokenID string) (bool, error) {
	_, err := g.revoked.Get(ctx, revokedKey(tokenID))
	if errors.Is(err, cache.ErrMiss) {
		return false, nil
	}
	return err == nil, err
}

func revokedKey(tokenID string) string {
	return "revoked:" + tokenID
}

func (g *Gateway) open(t events.Type, sess auth.Session, mode probe.Mode) (AuthResult, error) {
	token, sess, err := g.tokens.Issue(sess)
	if err != nil {
		return AuthResult{}, err
	}
	g.logger.Info().Fields(logging.Redact(map[string]any{
		"event":   string(t),
		"user_id": sess.UserID,
		"email":   sess.Email,
		"mode":    string(mode),
		"local":   sess.Local,
		"token":   token,
	})).Msg("auth event")
	g.publish(events.Event{Type: t, UserID: sess.UserID, Mode: string(mode)})
	return AuthResult{Token: token, Session: sess, Mode: mode}, nil
}
