package mockstore

import (
	"cmp"
	"context"
	"slices"

	"github.com/rogerio-castellano/boutique/internal/models"
	"github.com/rogerio-castellano/boutique/internal/repo"
)

func (s *Store) ListProducts(ctx context.Context, _ string) ([]models.Product, error) {
	if err := delay(ctx, s.latency.Products); err != nil {
		return nil, err
	}

	s.mu.Lock()
	products := append([]models.Product{}, s.products...)
	s.mu.Unlock()

	slices.SortStableFunc(products, func(a, b models.Product) int { return cmp.Compare(a.Name, b.Name) })
	return products, nil
}

func (s *Store) GetProduct(ctx context.Context, _, id string) (models.Product, error) {
	if err := delay(ctx, s.latency.Products); err != nil {
		return models.Product{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.productIndex(id)
	if i < 0 {
		return models.Product{}, repo.ErrProductNotFound
	}
	return s.products[i], nil
}

func (s *Store) CreateProduct(ctx context.Context, _ string, p models.Product) (models.Product, error) {
	if err := delay(ctx, s.latency.Products); err != nil {
		return models.Product{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	p.ID = newID("p_")
	p.OwnerID = s.profile.ID
	p.CreatedAt = now
	p.UpdatedAt = now
	p.Normalize()
	s.products = append(s.products, p)
	return p, nil
}

// UpdateProduct replaces the stored product. Identity and creation time are kept.
func (s *Store) UpdateProduct(ctx context.Context, _ string, p models.Product) (models.Product, error) {
	if err := delay(ctx, s.latency.Products); err != nil {
		return models.Product{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.productIndex(p.ID)
	if i < 0 {
		return models.Product{}, repo.ErrProductNotFound
	}
	p.OwnerID = s.products[i].OwnerID
	p.CreatedAt = s.products[i].CreatedAt
	p.UpdatedAt = s.now()
	p.Normalize()
	s.products[i] = p
	return p, nil
}

func (s *Store) DeleteProduct(ctx context.Context, _, id string) error {
	if err := delay(ctx, s.latency.Products); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.productIndex(id)
	if i < 0 {
		return repo.ErrProductNotFound
	}
	s.products = slices.Delete(s.products, i, i+1)
	return nil
}

// AdjustStock adds delta to one size bucket, or to the aggregate when tier is empty.
func (s *Store) AdjustStock(ctx context.Context, _, id string, tier models.SizeTier, delta int) (models.Product, error) {
	if err := delay(ctx, s.latency.Products); err != nil {
		return models.Product{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.productIndex(id)
	if i < 0 {
		return models.Product{}, repo.ErrProductNotFound
	}
	p := s.products[i]
	if err := p.Adjust(tier, delta); err != nil {
		return models.Product{}, err
	}
	p.UpdatedAt = s.now()
	s.products[i] = p
	return p, nil
}

func (s *Store) SetProductImage(ctx context.Context, _, id, url string) (models.Product, error) {
	if err := delay(ctx, s.latency.Products); err != nil {
		return models.Product{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.productIndex(id)
	if i < 0 {
		return models.Product{}, repo.ErrProductNotFound
	}
	s.products[i].ImageURL = url
	s.products[i].UpdatedAt = s.now()
	return s.products[i], nil
}

func (s *Store) LowStockProducts(ctx context.Context, owner string) ([]models.Product, error) {
	products, err := s.ListProducts(ctx, owner)
	if err != nil {
		return nil, err
	}

	low := []models.Product{}
	for _, p := range products {
		if p.IsLowStock() {
			low = append(low, p)
		}
	}
	return low, nil
}

func (s *Store) productIndex(id string) int {
	return slices.IndexFunc(s.products, func(p models.Product) bool { return p.ID == id })
}
