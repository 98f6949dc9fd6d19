package repo

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

// PostgresObjectStore keeps images in the storage_objects table of the backend.
type PostgresObjectStore struct {
	db      *sql.DB
	baseURL string
}

func NewPostgresObjectStore(db *sql.DB, baseURL string) *PostgresObjectStore {
	return &PostgresObjectStore{db: db, baseURL: strings.TrimRight(baseURL, "/")}
}

func (s *PostgresObjectStore) PutObject(ctx context.Context, owner string, obj Object) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `INSERT INTO storage_objects (bucket, name, owner_id, content_type, data)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (bucket, name) DO UPDATE SET content_type = EXCLUDED.content_type, data = EXCLUDED.data,
			updated_at = now()`
	if _, err := s.db.ExecContext(ctx, query, obj.Bucket, obj.Name, owner, obj.ContentType, obj.Data); err != nil {
		return "", err
	}
	return PublicURL(s.baseURL, obj.Bucket, obj.Name), nil
}

func (s *PostgresObjectStore) GetObject(ctx context.Context, bucket, name string) (Object, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	obj := Object{Bucket: bucket, Name: name}
	err := s.db.QueryRowContext(ctx, `SELECT content_type, data FROM storage_objects WHERE bucket = $1 AND name = $2`,
		bucket, name).Scan(&obj.ContentType, &obj.Data)
	if errors.Is(err, sql.ErrNoRows) {
		return Object{}, ErrObjectNotFound
	}
	return obj, err
}

// PublicURL is where an object is served from.
func PublicURL(baseURL, bucket, name string) string {
	return strings.TrimRight(baseURL, "/") + "/" + bucket + "/" + name
}
