package repo

import (
	"context"
	"database/sql"
	"time"
)

const queryTimeout = 3 * time.Second

// PostgresStore is the remote backend: one repository per collection over a shared pool.
type PostgresStore struct {
	*PostgresProductRepository
	*PostgresClientRepository
	*PostgresOrderRepository
	*PostgresProfileRepository
	*PostgresTransactionRepository
	*PostgresMetricsRepository
	*PostgresObjectStore
	*PostgresUserRepository

	db *sql.DB
}

// NewPostgresStore wires every repository to db. storageBaseURL prefixes public object URLs.
func NewPostgresStore(db *sql.DB, storageBaseURL string) *PostgresStore {
	return &PostgresStore{
		PostgresProductRepository:     NewPostgresProductRepository(db),
		PostgresClientRepository:      NewPostgresClientRepository(db),
		PostgresOrderRepository:       NewPostgresOrderRepository(db),
		PostgresProfileRepository:     NewPostgresProfileRepository(db),
		PostgresTransactionRepository: NewPostgresTransactionRepository(db),
		PostgresMetricsRepository:     NewPostgresMetricsRepository(db),
		PostgresObjectStore:           NewPostgresObjectStore(db, storageBaseURL),
		PostgresUserRepository:        NewPostgresUserRepository(db),
		db:                            db,
	}
}

// Ping reads from a real collection instead of pinging the server, so a backend whose
// schema is missing is reported as unavailable.
func (s *PostgresStore) Ping(ctx context.Context) error {
	var id string
	err := s.db.QueryRowContext(ctx, `SELECT id FROM products LIMIT 1`).Scan(&id)
	if err == sql.ErrNoRows {
		return nil
	}
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}
