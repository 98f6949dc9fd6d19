package gateway

import (
	"context"

	"github.com/rogerio-castellano/boutique/internal/models"
	"github.com/rogerio-castellano/boutique/internal/repo"
)

const productImagesBucket = "product-images"

func (g *Gateway) ListProducts(ctx context.Context) ([]models.Product, error) {
	return attempt(ctx, g, "ListProducts", func(ctx context.Context, s repo.Store, owner string) ([]models.Product, error) {
		return s.ListProducts(ctx, owner)
	})
}

func (g *Gateway) AddProduct(ctx context.Context, p models.Product) (models.Product, error) {
	return attempt(ctx, g, "AddProduct", func(ctx context.Context, s repo.Store, owner string) (models.Product, error) {
		return s.CreateProduct(ctx, owner, p)
	})
}

func (g *Gateway) UpdateProduct(ctx context.Context, p models.Product) (models.Product, error) {
	return attempt(ctx, g, "UpdateProduct", func(ctx context.Context, s repo.Store, owner string) (models.Product, error) {
		return s.UpdateProduct(ctx, owner, p)
	})
}

// DeleteProduct removes the product. A backend delete also drops the mock copy.
func (g *Gateway) DeleteProduct(ctx context.Context, id string) error {
	return exec(ctx, g, "DeleteProduct", func(ctx context.Context, s repo.Store, owner string) error {
		if err := s.DeleteProduct(ctx, owner, id); err != nil {
			return err
		}
		if !g.isLocal(s) {
			g.purge(ctx, "DeleteProduct", func(ctx context.Context, owner string) error {
				return g.local.DeleteProduct(ctx, owner, id)
			})
		}
		return nil
	})
}

// AdjustStock applies delta to one size tier, or to the aggregate when tier is empty.
func (g *Gateway) AdjustStock(ctx context.Context, id string, tier models.SizeTier, delta int) (models.Product, error) {
	return attempt(ctx, g, "AdjustStock", func(ctx context.Context, s repo.Store, owner string) (models.Product, error) {
		return s.AdjustStock(ctx, owner, id, tier, delta)
	})
}

// UpdateProductImage stores the image and points the product at its public URL.
func (g *Gateway) UpdateProductImage(ctx context.Context, id string, file Upload) (models.Product, error) {
	return attempt(ctx, g, "UpdateProductImage", func(ctx context.Context, s repo.Store, owner string) (models.Product, error) {
		if _, err := s.GetProduct(ctx, owner, id); err != nil {
			return models.Product{}, err
		}
		url, err := s.PutObject(ctx, owner, file.object(productImagesBucket, owner, id))
		if err != nil {
			return models.Product{}, err
		}
		return s.SetProductImage(ctx, owner, id, url)
	})
}

func (g *Gateway) LowStockProducts(ctx context.Context) ([]models.Product, error) {
	return attempt(ctx, g, "LowStockProducts", func(ctx context.Context, s repo.Store, owner string) ([]models.Product, error) {
		return s.LowStockProducts(ctx, owner)
	})
}
