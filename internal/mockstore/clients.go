package mockstore

import (
	"cmp"
	"context"
	"slices"

	"github.com/rogerio-castellano/boutique/internal/models"
	"github.com/rogerio-castellano/boutique/internal/repo"
)

func (s *Store) ListClients(ctx context.Context, _ string) ([]models.Client, error) {
	if err := delay(ctx, s.latency.Clients); err != nil {
		return nil, err
	}

	s.mu.Lock()
	clients := append([]models.Client{}, s.clients...)
	s.mu.Unlock()

	slices.SortStableFunc(clients, func(a, b models.Client) int { return cmp.Compare(a.FullName, b.FullName) })
	return clients, nil
}

func (s *Store) CreateClient(ctx context.Context, _ string, c models.Client) (models.Client, error) {
	if err := delay(ctx, s.latency.Clients); err != nil {
		return models.Client{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	c.ID = newID("c_")
	c.OwnerID = s.profile.ID
	if c.Status == "" {
		c.Status = models.ClientNew
	}
	c.CreatedAt = now
	c.UpdatedAt = now
	s.clients = append(s.clients, c)
	return c, nil
}

func (s *Store) UpdateClient(ctx context.Context, _ string, c models.Client) (models.Client, error) {
	if err := delay(ctx, s.latency.Clients); err != nil {
		return models.Client{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.clientIndex(c.ID)
	if i < 0 {
		return models.Client{}, repo.ErrClientNotFound
	}
	c.OwnerID = s.clients[i].OwnerID
	c.CreatedAt = s.clients[i].CreatedAt
	c.UpdatedAt = s.now()
	s.clients[i] = c
	return c, nil
}

func (s *Store) DeleteClient(ctx context.Context, _, id string) error {
	if err := delay(ctx, s.latency.Clients); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.clientIndex(id)
	if i < 0 {
		return repo.ErrClientNotFound
	}
	s.clients = slices.Delete(s.clients, i, i+1)
	return nil
}

func (s *Store) clientIndex(id string) int {
	return slices.IndexFunc(s.clients, func(c models.Client) bool { return c.ID == id })
}
