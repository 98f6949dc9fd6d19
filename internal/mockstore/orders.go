package mockstore

import (
	"context"
	"slices"

	"github.com/rogerio-castellano/boutique/internal/models"
	"github.com/rogerio-castellano/boutique/internal/repo"
)

// ListOrders returns the orders newest first.
func (s *Store) ListOrders(ctx context.Context, _ string) ([]models.Order, error) {
	if err := delay(ctx, s.latency.Orders); err != nil {
		return nil, err
	}

	s.mu.Lock()
	orders := cloneOrders(s.orders)
	s.mu.Unlock()

	slices.SortStableFunc(orders, func(a, b models.Order) int { return b.CreatedAt.Compare(a.CreatedAt) })
	return orders, nil
}

// CreateOrder stores the order and applies its side effects in one critical section:
// every line item's stock is decremented (clamped at zero), the client's aggregates
// are updated and a sale is recorded when the order is created paid.
func (s *Store) CreateOrder(ctx context.Context, _ string, o models.Order) (models.Order, error) {
	if err := delay(ctx, s.latency.CreateOrder); err != nil {
		return models.Order{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	o.Items = append([]models.LineItem(nil), o.Items...)
	for i, li := range o.Items {
		if li.Quantity <= 0 {
			return models.Order{}, repo.ErrInvalidQuantity
		}
		if _, err := models.ParseSizeTier(string(li.Size)); err != nil {
			return models.Order{}, err
		}
		if j := s.productIndex(li.ProductID); j >= 0 {
			o.Items[i] = fillLineItem(li, s.products[j])
		}
	}

	now := s.now()
	o.ID = newID("ord_")
	o.OwnerID = s.profile.ID
	o.CreatedAt = now
	o.UpdatedAt = now
	o.Prepare()

	for _, li := range o.Items {
		if j := s.productIndex(li.ProductID); j >= 0 {
			_ = s.products[j].Adjust(li.Size, -li.Quantity)
			s.products[j].UpdatedAt = now
		}
	}
	if j := s.clientIndex(o.ClientID); j >= 0 {
		s.clients[j].RecordPurchase(o.TotalAmount, now)
		s.clients[j].UpdatedAt = now
	}
	if o.PaymentStatus == models.PaymentPaid {
		s.recordSale(o)
	}

	s.orders = append(s.orders, o)
	return cloneOrders([]models.Order{o})[0], nil
}

// fillLineItem completes a line item from the catalogue entry it refers to.
func fillLineItem(li models.LineItem, p models.Product) models.LineItem {
	if li.ProductName == "" {
		li.ProductName = p.Name
	}
	if li.UnitPrice == 0 {
		tier := li.Size
		if tier == "" {
			tier = p.PrimaryTier()
		}
		li.UnitPrice = p.PriceFor(tier)
	}
	return li
}

func (s *Store) UpdateOrderStatus(ctx context.Context, _, id string, status models.OrderStatus) (models.Order, error) {
	if err := delay(ctx, s.latency.Orders); err != nil {
		return models.Order{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.orderIndex(id)
	if i < 0 {
		return models.Order{}, repo.ErrOrderNotFound
	}
	if !s.orders[i].Status.CanAdvanceTo(status) {
		return models.Order{}, repo.ErrInvalidTransition
	}
	s.orders[i].Status = status
	s.orders[i].UpdatedAt = s.now()
	return cloneOrders(s.orders[i : i+1])[0], nil
}

// UpdatePaymentStatus records the sale the first time an order becomes paid.
func (s *Store) UpdatePaymentStatus(ctx context.Context, _, id string, status models.PaymentStatus) (models.Order, error) {
	if err := delay(ctx, s.latency.Orders); err != nil {
		return models.Order{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.orderIndex(id)
	if i < 0 {
		return models.Order{}, repo.ErrOrderNotFound
	}
	o := &s.orders[i]
	if !o.PaymentStatus.CanAdvanceTo(status) {
		return models.Order{}, repo.ErrInvalidTransition
	}
	if o.PaymentStatus == models.PaymentPending && status == models.PaymentPaid {
		s.recordSale(*o)
	}
	o.PaymentStatus = status
	o.UpdatedAt = s.now()
	return cloneOrders(s.orders[i : i+1])[0], nil
}

func (s *Store) DeleteOrder(ctx context.Context, _, id string) error {
	if err := delay(ctx, s.latency.Orders); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.orderIndex(id)
	if i < 0 {
		return repo.ErrOrderNotFound
	}
	s.orders = slices.Delete(s.orders, i, i+1)
	return nil
}

func (s *Store) orderIndex(id string) int {
	return slices.IndexFunc(s.orders, func(o models.Order) bool { return o.ID == id })
}
