package repo

import (
	"context"

	"github.com/rogerio-castellano/boutique/internal/models"
)

// ProductRepository defines the catalogue operations. Every call is scoped to owner.
type ProductRepository interface {
	ListProducts(ctx context.Context, owner string) ([]models.Product, error)
	GetProduct(ctx context.Context, owner, id string) (models.Product, error)
	CreateProduct(ctx context.Context, owner string, p models.Product) (models.Product, error)
	UpdateProduct(ctx context.Context, owner string, p models.Product) (models.Product, error)
	DeleteProduct(ctx context.Context, owner, id string) error
	AdjustStock(ctx context.Context, owner, id string, tier models.SizeTier, delta int) (models.Product, error)
	SetProductImage(ctx context.Context, owner, id, url string) (models.Product, error)
	LowStockProducts(ctx context.Context, owner string) ([]models.Product, error)
}
