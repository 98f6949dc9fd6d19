package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rogerio-castellano/boutique/internal/models"
)

type PostgresOrderRepository struct {
	db *sql.DB
}

func NewPostgresOrderRepository(db *sql.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{db: db}
}

const orderColumns = `id, user_id, client_id, items, total_amount, profit, status, payment_status,
	COALESCE(notes, ''), created_at, updated_at`

func scanOrder(row rowScanner) (models.Order, error) {
	var (
		o     models.Order
		items []byte
	)
	err := row.Scan(&o.ID, &o.OwnerID, &o.ClientID, &items, &o.TotalAmount, &o.Profit, &o.Status,
		&o.PaymentStatus, &o.Notes, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return models.Order{}, err
	}
	if err := json.Unmarshal(items, &o.Items); err != nil {
		return models.Order{}, fmt.Errorf("failed to decode order items: %w", err)
	}
	return o, nil
}

func (r *PostgresOrderRepository) ListOrders(ctx context.Context, owner string) ([]models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE user_id = $1 ORDER BY created_at DESC`, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

// CreateOrder issues a single create_order_with_items call. The procedure inserts the
// order and its order_items rows, decrements stock clamped at zero, updates the client
// aggregates and records the sale when the order is already paid, in one transaction.
func (r *PostgresOrderRepository) CreateOrder(ctx context.Context, owner string, o models.Order) (models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	o.Prepare()
	items, err := json.Marshal(o.Items)
	if err != nil {
		return models.Order{}, fmt.Errorf("failed to encode order items: %w", err)
	}

	query := `SELECT ` + orderColumns + ` FROM create_order_with_items($1, $2, $3::jsonb, $4, $5, $6, $7, $8)`
	return scanOrder(r.db.QueryRowContext(ctx, query, owner, o.ClientID, items, o.TotalAmount, o.Profit,
		o.Status, o.PaymentStatus, o.Notes))
}

func (r *PostgresOrderRepository) UpdateOrderStatus(ctx context.Context, owner, id string, status models.OrderStatus) (models.Order, error) {
	return r.transition(ctx, owner, id, func(o models.Order) (string, any, error) {
		if !o.Status.CanAdvanceTo(status) {
			return "", nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.Status, status)
		}
		return "status", status, nil
	})
}

// UpdatePaymentStatus records the sale in the ledger when the order becomes paid.
func (r *PostgresOrderRepository) UpdatePaymentStatus(ctx context.Context, owner, id string, status models.PaymentStatus) (models.Order, error) {
	return r.transition(ctx, owner, id, func(o models.Order) (string, any, error) {
		if !o.PaymentStatus.CanAdvanceTo(status) {
			return "", nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, o.PaymentStatus, status)
		}
		return "payment_status", status, nil
	})
}

// transition locks the order, lets check pick the column and value to write, and
// inserts the sale transaction on a pending -> paid move.
func (r *PostgresOrderRepository) transition(ctx context.Context, owner, id string, check func(models.Order) (string, any, error)) (models.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Order{}, err
	}
	defer tx.Rollback()

	current, err := scanOrder(tx.QueryRowContext(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1 AND user_id = $2 FOR UPDATE`, id, owner))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Order{}, ErrOrderNotFound
	}
	if err != nil {
		return models.Order{}, err
	}

	column, value, err := check(current)
	if err != nil {
		return models.Order{}, err
	}

	// column comes from the two fixed names above, never from input.
	update := fmt.Sprintf(`UPDATE orders SET %s = $1, updated_at = now() WHERE id = $2 RETURNING %s`, column, orderColumns)
	updated, err := scanOrder(tx.QueryRowContext(ctx, update, value, id))
	if err != nil {
		return models.Order{}, err
	}

	if current.PaymentStatus == models.PaymentPending && updated.PaymentStatus == models.PaymentPaid {
		sale := models.SaleFor(updated, time.Now().UTC())
		if _, err := insertTransaction(ctx, tx, owner, sale); err != nil {
			return models.Order{}, fmt.Errorf("failed to record sale: %w", err)
		}
	}
	return updated, tx.Commit()
}

func (r *PostgresOrderRepository) DeleteOrder(ctx context.Context, owner, id string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE id = $1 AND user_id = $2`, id, owner)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}
