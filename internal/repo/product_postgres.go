package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/rogerio-castellano/boutique/internal/models"
)

type PostgresProductRepository struct {
	db *sql.DB
}

func NewPostgresProductRepository(db *sql.DB) *PostgresProductRepository {
	return &PostgresProductRepository{db: db}
}

const productColumns = `id, user_id, name, brand, category, COALESCE(description, ''),
	COALESCE(cat_15ml, ''), COALESCE(cat_30ml, ''), COALESCE(cat_70ml, ''),
	price_15ml, price_30ml, price_70ml, stock_15ml, stock_30ml, stock_70ml, stock_total,
	alert_threshold, COALESCE(image_url, ''), is_active, created_at, updated_at`

func scanProduct(row rowScanner) (models.Product, error) {
	var p models.Product
	err := row.Scan(&p.ID, &p.OwnerID, &p.Name, &p.Brand, &p.Category, &p.Description,
		&p.Cat15ml, &p.Cat30ml, &p.Cat70ml,
		&p.Price15ml, &p.Price30ml, &p.Price70ml, &p.Stock15ml, &p.Stock30ml, &p.Stock70ml, &p.StockTotal,
		&p.AlertThreshold, &p.ImageURL, &p.IsActive, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *PostgresProductRepository) ListProducts(ctx context.Context, owner string) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE user_id = $1 ORDER BY name`
	return r.queryProducts(ctx, query, owner)
}

// LowStockProducts calls the get_low_stock_products procedure.
func (r *PostgresProductRepository) LowStockProducts(ctx context.Context, owner string) ([]models.Product, error) {
	query := `SELECT ` + productColumns + ` FROM get_low_stock_products($1)`
	return r.queryProducts(ctx, query, owner)
}

func (r *PostgresProductRepository) queryProducts(ctx context.Context, query string, args ...any) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	products := []models.Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *PostgresProductRepository) GetProduct(ctx context.Context, owner, id string) (models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND user_id = $2`
	p, err := scanProduct(r.db.QueryRowContext(ctx, query, id, owner))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}

// CreateProduct lets the backend assign the id; stock_total is a generated column.
func (r *PostgresProductRepository) CreateProduct(ctx context.Context, owner string, p models.Product) (models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	p.Normalize()
	query := `INSERT INTO products (user_id, name, brand, category, description, cat_15ml, cat_30ml, cat_70ml,
		price_15ml, price_30ml, price_70ml, stock_15ml, stock_30ml, stock_70ml, alert_threshold, image_url, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING ` + productColumns
	return scanProduct(r.db.QueryRowContext(ctx, query, owner, p.Name, p.Brand, p.Category, p.Description,
		p.Cat15ml, p.Cat30ml, p.Cat70ml, p.Price15ml, p.Price30ml, p.Price70ml,
		p.Stock15ml, p.Stock30ml, p.Stock70ml, p.AlertThreshold, p.ImageURL, p.IsActive))
}

func (r *PostgresProductRepository) UpdateProduct(ctx context.Context, owner string, p models.Product) (models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	p.Normalize()
	query := `UPDATE products SET name = $1, brand = $2, category = $3, description = $4,
		cat_15ml = $5, cat_30ml = $6, cat_70ml = $7, price_15ml = $8, price_30ml = $9, price_70ml = $10,
		stock_15ml = $11, stock_30ml = $12, stock_70ml = $13, alert_threshold = $14, image_url = $15,
		is_active = $16, updated_at = now()
		WHERE id = $17 AND user_id = $18
		RETURNING ` + productColumns
	updated, err := scanProduct(r.db.QueryRowContext(ctx, query, p.Name, p.Brand, p.Category, p.Description,
		p.Cat15ml, p.Cat30ml, p.Cat70ml, p.Price15ml, p.Price30ml, p.Price70ml,
		p.Stock15ml, p.Stock30ml, p.Stock70ml, p.AlertThreshold, p.ImageURL, p.IsActive, p.ID, owner))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return updated, err
}

func (r *PostgresProductRepository) DeleteProduct(ctx context.Context, owner, id string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1 AND user_id = $2`, id, owner)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// AdjustStock locks the row, applies the adjustment with the same clamping rules as
// the local store, and writes the three buckets back.
func (r *PostgresProductRepository) AdjustStock(ctx context.Context, owner, id string, tier models.SizeTier, delta int) (models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return models.Product{}, err
	}
	defer tx.Rollback()

	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 AND user_id = $2 FOR UPDATE`
	p, err := scanProduct(tx.QueryRowContext(ctx, query, id, owner))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	if err != nil {
		return models.Product{}, err
	}

	if err := p.Adjust(tier, delta); err != nil {
		return models.Product{}, err
	}

	update := `UPDATE products SET stock_15ml = $1, stock_30ml = $2, stock_70ml = $3, updated_at = $4
		WHERE id = $5 RETURNING ` + productColumns
	p, err = scanProduct(tx.QueryRowContext(ctx, update, p.Stock15ml, p.Stock30ml, p.Stock70ml, time.Now().UTC(), id))
	if err != nil {
		return models.Product{}, fmt.Errorf("failed to write stock: %w", err)
	}
	return p, tx.Commit()
}

func (r *PostgresProductRepository) SetProductImage(ctx context.Context, owner, id, url string) (models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `UPDATE products SET image_url = $1, updated_at = now() WHERE id = $2 AND user_id = $3 RETURNING ` + productColumns
	p, err := scanProduct(r.db.QueryRowContext(ctx, query, url, id, owner))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, ErrProductNotFound
	}
	return p, err
}
