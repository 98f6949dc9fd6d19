package gateway

import (
	"context"

	"github.com/rogerio-castellano/boutique/internal/models"
	"github.com/rogerio-castellano/boutique/internal/repo"
)

func (g *Gateway) ListOrders(ctx context.Context) ([]models.Order, error) {
	return attempt(ctx, g, "ListOrders", func(ctx context.Context, s repo.Store, owner string) ([]models.Order, error) {
		return s.ListOrders(ctx, owner)
	})
}

// CreateOrder records the sale and decrements the stock of every line item.
// The backend does both in one procedure call.
func (g *Gateway) CreateOrder(ctx context.Context, o models.Order) (models.Order, error) {
	return attempt(ctx, g, "CreateOrder", func(ctx context.Context, s repo.Store, owner string) (models.Order, error) {
		return s.CreateOrder(ctx, owner, o)
	})
}

func (g *Gateway) UpdateOrderStatus(ctx context.Context, id string, status models.OrderStatus) (models.Order, error) {
	return attempt(ctx, g, "UpdateOrderStatus", func(ctx context.Context, s repo.Store, owner string) (models.Order, error) {
		return s.UpdateOrderStatus(ctx, owner, id, status)
	})
}

func (g *Gateway) UpdatePaymentStatus(ctx context.Context, id string, status models.PaymentStatus) (models.Order, error) {
	return attempt(ctx, g, "UpdatePaymentStatus", func(ctx context.Context, s repo.Store, owner string) (models.Order, error) {
		return s.UpdatePaymentStatus(ctx, owner, id, status)
	})
}

func (g *Gateway) DeleteOrder(ctx context.Context, id string) error {
	return exec(ctx, g, "DeleteOrder", func(ctx context.Context, s repo.Store, owner string) error {
		if err := s.DeleteOrder(ctx, owner, id); err != nil {
			return err
		}
		if !g.isLocal(s) {
			g.purge(ctx, "DeleteOrder", func(ctx context.Context, owner string) error {
				return g.local.DeleteOrder(ctx, owner, id)
			})
		}
		return nil
	})
}
