package repo

import (
	"context"

	"github.com/rogerio-castellano/boutique/internal/models"
)

// UserRepository is the authentication side of a backend.
type UserRepository interface {
	CreateUser(ctx context.Context, email, passwordHash string) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
}
