package repo

import (
	"context"

	"github.com/rogerio-castellano/boutique/internal/models"
)

type MetricsRepository interface {
	DashboardStats(ctx context.Context, owner string) (models.DashboardStats, error)
}
