package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rogerio-castellano/boutique/internal/models"
)

type PostgresClientRepository struct {
	db *sql.DB
}

func NewPostgresClientRepository(db *sql.DB) *PostgresClientRepository {
	return &PostgresClientRepository{db: db}
}

const clientColumns = `id, user_id, full_name, COALESCE(email, ''), COALESCE(phone, ''), COALESCE(address, ''),
	COALESCE(city, ''), COALESCE(postal_code, ''), status, COALESCE(birth_date, ''), COALESCE(notes, ''),
	loyalty_points, COALESCE(preferred_contact, ''), COALESCE(last_purchase_date, ''), total_spent,
	is_active, created_at, updated_at`

func scanClient(row rowScanner) (models.Client, error) {
	var c models.Client
	err := row.Scan(&c.ID, &c.OwnerID, &c.FullName, &c.Email, &c.Phone, &c.Address, &c.City, &c.PostalCode,
		&c.Status, &c.BirthDate, &c.Notes, &c.LoyaltyPoints, &c.PreferredContact, &c.LastPurchaseDate,
		&c.TotalSpent, &c.IsActive, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

func (r *PostgresClientRepository) ListClients(ctx context.Context, owner string) ([]models.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `SELECT `+clientColumns+` FROM clients WHERE user_id = $1 ORDER BY full_name`, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	clients := []models.Client{}
	for rows.Next() {
		c, err := scanClient(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	return clients, rows.Err()
}

func (r *PostgresClientRepository) CreateClient(ctx context.Context, owner string, c models.Client) (models.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `INSERT INTO clients (user_id, full_name, email, phone, address, city, postal_code, status, birth_date,
		notes, loyalty_points, preferred_contact, last_purchase_date, total_spent, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), $10, $11, $12, NULLIF($13, ''), $14, $15)
		RETURNING ` + clientColumns
	return scanClient(r.db.QueryRowContext(ctx, query, owner, c.FullName, c.Email, c.Phone, c.Address, c.City,
		c.PostalCode, c.Status, c.BirthDate, c.Notes, c.LoyaltyPoints, c.PreferredContact, c.LastPurchaseDate,
		c.TotalSpent, c.IsActive))
}

func (r *PostgresClientRepository) UpdateClient(ctx context.Context, owner string, c models.Client) (models.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `UPDATE clients SET full_name = $1, email = $2, phone = $3, address = $4, city = $5, postal_code = $6,
		status = $7, birth_date = NULLIF($8, ''), notes = $9, loyalty_points = $10, preferred_contact = $11,
		last_purchase_date = NULLIF($12, ''), total_spent = $13, is_active = $14, updated_at = now()
		WHERE id = $15 AND user_id = $16
		RETURNING ` + clientColumns
	updated, err := scanClient(r.db.QueryRowContext(ctx, query, c.FullName, c.Email, c.Phone, c.Address, c.City,
		c.PostalCode, c.Status, c.BirthDate, c.Notes, c.LoyaltyPoints, c.PreferredContact, c.LastPurchaseDate,
		c.TotalSpent, c.IsActive, c.ID, owner))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Client{}, ErrClientNotFound
	}
	return updated, err
}

func (r *PostgresClientRepository) DeleteClient(ctx context.Context, owner, id string) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE id = $1 AND user_id = $2`, id, owner)
	if err != nil {
		return err
	}
	rowsAffected, _ := res.RowsAffected()
	if rowsAffected == 0 {
		return ErrClientNotFound
	}
	return nil
}
