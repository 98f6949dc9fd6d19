package mockstore

import (
	"context"
	"slices"

	"github.com/rogerio-castellano/boutique/internal/models"
)

func (s *Store) ListTransactions(ctx context.Context, _ string) ([]models.Transaction, error) {
	if err := delay(ctx, s.latency.Orders); err != nil {
		return nil, err
	}

	s.mu.Lock()
	txs := append([]models.Transaction{}, s.transactions...)
	s.mu.Unlock()

	slices.SortStableFunc(txs, func(a, b models.Transaction) int { return b.TransactionDate.Compare(a.TransactionDate) })
	return txs, nil
}

func (s *Store) CreateTransaction(ctx context.Context, _ string, t models.Transaction) (models.Transaction, error) {
	if err := delay(ctx, s.latency.Orders); err != nil {
		return models.Transaction{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.appendTransaction(t), nil
}

// recordSale must be called with s.mu held.
func (s *Store) recordSale(o models.Order) {
	s.appendTransaction(models.SaleFor(o, s.now()))
}

func (s *Store) appendTransaction(t models.Transaction) models.Transaction {
	now := s.now()
	t.ID = newID("tx_")
	t.OwnerID = s.profile.ID
	if t.TransactionDate.IsZero() {
		t.TransactionDate = now
	}
	t.CreatedAt = now
	s.transactions = append(s.transactions, t)
	return t
}

// DashboardStats is computed from the collections, like the backend procedure does.
func (s *Store) DashboardStats(ctx context.Context, _ string) (models.DashboardStats, error) {
	if err := delay(ctx, s.latency.Orders); err != nil {
		return models.DashboardStats{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return models.ComputeStats(s.products, s.clients, s.orders), nil
}
