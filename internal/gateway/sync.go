package gateway

import (
	"context"

	"github.com/rogerio-castellano/boutique/internal/auth"
	"github.com/rogerio-castellano/boutique/internal/probe"
	"github.com/rogerio-castellano/boutique/internal/syncvalidator"
)

// ValidateSync compares the mock data with what the backend holds for the caller.
// It never falls back: a report that could not be computed says so in its errors.
func (g *Gateway) ValidateSync(ctx context.Context) syncvalidator.Report {
	if g.Mode(ctx) != probe.Remote {
		return g.validator.Failed("backend not in use")
	}
	sess := auth.SessionFrom(ctx)
	if !sess.Authenticated || sess.Local {
		return g.validator.Failed("not authenticated with the backend")
	}

	local, err := syncvalidator.Collect(ctx, g.local, g.local.Owner())
	if err != nil {
		return g.validator.Failed("local: " + err.Error())
	}
	remote, err := syncvalidator.Collect(ctx, g.remote, sess.UserID)
	if err != nil {
		return g.validator.Failed("remote: " + err.Error())
	}
	return g.validator.Compare(local, remote)
}
