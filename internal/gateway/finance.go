package gateway

import (
	"context"

	"github.com/rogerio-castellano/boutique/internal/models"
	"github.com/rogerio-castellano/boutique/internal/repo"
)

func (g *Gateway) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	return attempt(ctx, g, "ListTransactions", func(ctx context.Context, s repo.Store, owner string) ([]models.Transaction, error) {
		return s.ListTransactions(ctx, owner)
	})
}

func (g *Gateway) AddTransaction(ctx context.Context, t models.Transaction) (models.Transaction, error) {
	return attempt(ctx, g, "AddTransaction", func(ctx context.Context, s repo.Store, owner string) (models.Transaction, error) {
		return s.CreateTransaction(ctx, owner, t)
	})
}

func (g *Gateway) DashboardStats(ctx context.Context) (models.DashboardStats, error) {
	return attempt(ctx, g, "DashboardStats", func(ctx context.Context, s repo.Store, owner string) (models.DashboardStats, error) {
		return s.DashboardStats(ctx, owner)
	})
}
