package repo

import "context"

// Store is everything the gateway needs from one data source. The remote backend
// and the local mock store both implement it.
type Store interface {
	ProductRepository
	ClientRepository
	OrderRepository
	ProfileRepository
	TransactionRepository
	MetricsRepository
	ObjectStore
}

// HealthChecker answers the availability probe.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
