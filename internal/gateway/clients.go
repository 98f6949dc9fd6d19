package gateway

import (
	"context"

	"github.com/rogerio-castellano/boutique/internal/models"
	"github.com/rogerio-castellano/boutique/internal/repo"
)

func (g *Gateway) ListClients(ctx context.Context) ([]models.Client, error) {
	return attempt(ctx, g, "ListClients", func(ctx context.Context, s repo.Store, owner string) ([]models.Client, error) {
		return s.ListClients(ctx, owner)
	})
}

func (g *Gateway) AddClient(ctx context.Context, c models.Client) (models.Client, error) {
	return attempt(ctx, g, "AddClient", func(ctx context.Context, s repo.Store, owner string) (models.Client, error) {
		return s.CreateClient(ctx, owner, c)
	})
}

func (g *Gateway) UpdateClient(ctx context.Context, c models.Client) (models.Client, error) {
	return attempt(ctx, g, "UpdateClient", func(ctx context.Context, s repo.Store, owner string) (models.Client, error) {
		return s.UpdateClient(ctx, owner, c)
	})
}

func (g *Gateway) DeleteClient(ctx context.Context, id string) error {
	return exec(ctx, g, "DeleteClient", func(ctx context.Context, s repo.Store, owner string) error {
		if err := s.DeleteClient(ctx, owner, id); err != nil {
			return err
		}
		if !g.isLocal(s) {
			g.purge(ctx, "DeleteClient", func(ctx context.Context, owner string) error {
				return g.local.DeleteClient(ctx, owner, id)
			})
		}
		return nil
	})
}
