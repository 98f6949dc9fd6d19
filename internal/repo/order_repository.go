package repo

import (
	"context"

	"github.com/rogerio-castellano/boutique/internal/models"
)

// OrderRepository defines order operations. CreateOrder must decrement the stock of
// every line item and record the sale as one unit of work.
type OrderRepository interface {
	ListOrders(ctx context.Context, owner string) ([]models.Order, error)
	CreateOrder(ctx context.Context, owner string, o models.Order) (models.Order, error)
	UpdateOrderStatus(ctx context.Context, owner, id string, status models.OrderStatus) (models.Order, error)
	UpdatePaymentStatus(ctx context.Context, owner, id string, status models.PaymentStatus) (models.Order, error)
	DeleteOrder(ctx context.Context, owner, id string) error
}
