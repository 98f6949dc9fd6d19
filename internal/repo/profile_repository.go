package repo

import (
	"context"

	"github.com/rogerio-castellano/boutique/internal/models"
)

type ProfileRepository interface {
	GetProfile(ctx context.Context, owner string) (models.Profile, error)
	SaveProfile(ctx context.Context, owner string, p models.Profile) (models.Profile, error)
}
