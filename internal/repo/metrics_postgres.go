package repo

import (
	"context"
	"database/sql"

	"github.com/rogerio-castellano/boutique/internal/models"
)

type PostgresMetricsRepository struct {
	db *sql.DB
}

func NewPostgresMetricsRepository(db *sql.DB) *PostgresMetricsRepository {
	return &PostgresMetricsRepository{db: db}
}

// DashboardStats calls the get_dashboard_stats procedure, which aggregates server-side.
func (r *PostgresMetricsRepository) DashboardStats(ctx context.Context, owner string) (models.DashboardStats, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	var m models.DashboardStats
	err := r.db.QueryRowContext(ctx, `
		SELECT revenue, profit, cost, total_orders, pending_payments, new_clients, total_clients,
			low_stock, total_stock_value
		FROM get_dashboard_stats($1)
	`, owner).Scan(&m.Revenue, &m.Profit, &m.Cost, &m.TotalOrders, &m.PendingPayments, &m.NewClients,
		&m.TotalClients, &m.LowStock, &m.TotalStockValue)
	return m, err
}
