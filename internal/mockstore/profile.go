package mockstore

import (
	"context"
	"strings"

	"github.com/rogerio-castellano/boutique/internal/models"
	"github.com/rogerio-castellano/boutique/internal/repo"
)

func (s *Store) GetProfile(ctx context.Context, _ string) (models.Profile, error) {
	if err := delay(ctx, s.latency.Profile); err != nil {
		return models.Profile{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return cloneProfile(s.profile), nil
}

// SaveProfile replaces the profile. The owner id never changes.
func (s *Store) SaveProfile(ctx context.Context, _ string, p models.Profile) (models.Profile, error) {
	if err := delay(ctx, s.latency.Profile); err != nil {
		return models.Profile{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = s.profile.ID
	if p.Role == "" {
		p.Role = s.profile.Role
	}
	p.UpdatedAt = s.now()
	s.profile = cloneProfile(p)
	return cloneProfile(p), nil
}

// CreateUser accepts any credentials. The new email becomes the display identity of
// the single simulated owner.
func (s *Store) CreateUser(ctx context.Context, email, _ string) (models.User, error) {
	if err := delay(ctx, s.latency.SignIn); err != nil {
		return models.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile.Email = strings.ToLower(email)
	s.profile.UpdatedAt = s.now()
	return models.User{ID: s.profile.ID, Email: s.profile.Email, CreatedAt: s.now()}, nil
}

// GetUserByEmail returns the simulated owner whatever the email.
func (s *Store) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	if err := delay(ctx, s.latency.SignIn); err != nil {
		return models.User{}, err
	}
	if strings.TrimSpace(email) == "" {
		return models.User{}, repo.ErrInvalidCredentials
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return models.User{ID: s.profile.ID, Email: strings.ToLower(email)}, nil
}
