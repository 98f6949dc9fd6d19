package repo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/rogerio-castellano/boutique/internal/models"
)

type PostgresTransactionRepository struct {
	db *sql.DB
}

func NewPostgresTransactionRepository(db *sql.DB) *PostgresTransactionRepository {
	return &PostgresTransactionRepository{db: db}
}

const transactionColumns = `id, created_by, transaction_type, amount, COALESCE(description, ''),
	COALESCE(category, ''), COALESCE(payment_method, ''), COALESCE(order_id::text, ''), transaction_date, created_at`

func scanTransaction(row rowScanner) (models.Transaction, error) {
	var t models.Transaction
	err := row.Scan(&t.ID, &t.OwnerID, &t.TransactionType, &t.Amount, &t.Description, &t.Category,
		&t.PaymentMethod, &t.OrderID, &t.TransactionDate, &t.CreatedAt)
	return t, err
}

// ListTransactions returns the ledger, newest first.
func (r *PostgresTransactionRepository) ListTransactions(ctx context.Context, owner string) ([]models.Transaction, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := fmt.Sprintf("SELECT %s FROM transactions WHERE created_by = $1 ORDER BY transaction_date DESC", transactionColumns)
	rows, err := r.db.QueryContext(ctx, query, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, t)
	}

	// Check for iteration errors
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return transactions, nil
}

func (r *PostgresTransactionRepository) CreateTransaction(ctx context.Context, owner string, t models.Transaction) (models.Transaction, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	created, err := insertTransaction(ctx, r.db, owner, t)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("failed to insert transaction: %w", err)
	}
	return created, nil
}

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func insertTransaction(ctx context.Context, q queryRower, owner string, t models.Transaction) (models.Transaction, error) {
	query := `INSERT INTO transactions (created_by, transaction_type, amount, description, category, payment_method,
		order_id, transaction_date)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, '')::uuid, COALESCE($8, now()))
		RETURNING ` + transactionColumns

	var date any
	if !t.TransactionDate.IsZero() {
		date = t.TransactionDate
	}
	return scanTransaction(q.QueryRowContext(ctx, query, owner, t.TransactionType, t.Amount, t.Description,
		t.Category, t.PaymentMethod, t.OrderID, date))
}
