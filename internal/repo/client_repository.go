package repo

import (
	"context"

	"github.com/rogerio-castellano/boutique/internal/models"
)

type ClientRepository interface {
	ListClients(ctx context.Context, owner string) ([]models.Client, error)
	CreateClient(ctx context.Context, owner string, c models.Client) (models.Client, error)
	UpdateClient(ctx context.Context, owner string, c models.Client) (models.Client, error)
	DeleteClient(ctx context.Context, owner, id string) error
}
