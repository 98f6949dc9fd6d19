// Package gateway is the single entry point for data access. For every call it
// picks the hosted backend or the local mock store, and falls back to the mock
// store when the backend fails.
package gateway

import (
	"context"

	"github.com/rogerio-castellano/boutique/internal/auth"
	"github.com/rogerio-castellano/boutique/internal/cache"
	"github.com/rogerio-castellano/boutique/internal/events"
	"github.com/rogerio-castellano/boutique/internal/probe"
	"github.com/rogerio-castellano/boutique/internal/repo"
	"github.com/rogerio-castellano/boutique/internal/syncvalidator"
	"github.com/rs/zerolog"
)

// Source is a complete data source: collections plus its authentication side.
type Source interface {
	repo.Store
	repo.UserRepository
}

// LocalSource is the mock store, which simulates a single owner.
type LocalSource interface {
	Source
	Owner() string
}

type Resolver interface {
	Resolve(ctx context.Context) probe.Mode
}

type Publisher interface {
	Publish(e events.Event)
}

type Deps struct {
	Prober Resolver
	Local  LocalSource
	// Remote is nil when no backend is configured.
	Remote Source
	Tokens *auth.TokenService
	// Revoked records the ids of signed-out tokens.
	Revoked   cache.Cache
	Logger    zerolog.Logger
	Events    Publisher
	Validator *syncvalidator.Validator
	// Strict returns remote failures to the caller instead of retrying on the mock store.
	Strict bool
}

type Gateway struct {
	prober    Resolver
	local     LocalSource
	remote    Source
	tokens    *auth.TokenService
	revoked   cache.Cache
	logger    zerolog.Logger
	events    Publisher
	validator *syncvalidator.Validator
	strict    bool
}

func New(d Deps) *Gateway {
	g := &Gateway{
		prober:    d.Prober,
		local:     d.Local,
		remote:    d.Remote,
		tokens:    d.Tokens,
		revoked:   d.Revoked,
		logger:    d.Logger,
		events:    d.Events,
		validator: d.Validator,
		strict:    d.Strict,
	}
	if g.revoked == nil {
		g.revoked = cache.NewMemoryCache()
	}
	if g.validator == nil {
		g.validator = syncvalidator.New(d.Logger)
	}
	return g
}

// Mode resolves the data source, probing the backend on first use.
func (g *Gateway) Mode(ctx context.Context) probe.Mode {
	if g.remote == nil {
		return probe.Local
	}
	return g.prober.Resolve(ctx)
}

// remoteOwner returns the owner to use against the backend, or false when the call
// must go to the mock store.
func (g *Gateway) remoteOwner(ctx context.Context, op string, needsSession bool) (string, bool) {
	if g.Mode(ctx) != probe.Remote {
		return "", false
	}
	if !needsSession {
		return "", true
	}
	sess := auth.SessionFrom(ctx)
	if !sess.Authenticated || sess.Local {
		g.logger.Debug().Str("op", op).Msg("no backend session, using mock data")
		return "", false
	}
	return sess.UserID, true
}

// fallback reports whether a failed remote call may be retried on the mock store.
func (g *Gateway) fallback(op string, err error) bool {
	if g.strict || repo.IsDomainError(err) {
		return false
	}
	g.logger.Warn().Err(err).Str("op", op).Msg("remote call failed, falling back to mock data")
	return true
}

// attempt runs fn against the backend when it is in use and the caller is signed in,
// and against the mock store otherwise or after a remote failure.
func attempt[T any](ctx context.Context, g *Gateway, op string, fn func(context.Context, repo.Store, string) (T, error)) (T, error) {
	return call(ctx, g, op, true, fn)
}

func call[T any](ctx context.Context, g *Gateway, op string, needsSession bool, fn func(context.Context, repo.Store, string) (T, error)) (T, error) {
	if owner, ok := g.remoteOwner(ctx, op, needsSession); ok {
		v, err := fn(ctx, g.remote, owner)
		if err == nil || !g.fallback(op, err) {
			return v, err
		}
	}
	return fn(ctx, g.local, g.local.Owner())
}

// exec is attempt for operations without a result.
func exec(ctx context.Context, g *Gateway, op string, fn func(context.Context, repo.Store, string) error) error {
	_, err := attempt(ctx, g, op, func(ctx context.Context, s repo.Store, owner string) (struct{}, error) {
		return struct{}{}, fn(ctx, s, owner)
	})
	return err
}

func (g *Gateway) isLocal(s repo.Store) bool {
	return s == repo.Store(g.local)
}

// purge removes the mock copy of a record deleted on the backend, so it cannot
// reappear after a later fallback.
func (g *Gateway) purge(ctx context.Context, op string, del func(context.Context, string) error) {
	if err := del(ctx, g.local.Owner()); err != nil && !repo.IsNotFound(err) {
		g.logger.Warn().Err(err).Str("op", op).Msg("failed to purge mock copy")
	}
}

func (g *Gateway) publish(e events.Event) {
	if g.events != nil {
		g.events.Publish(e)
	}
}
