package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rogerio-castellano/boutique/internal/models"
)

type PostgresProfileRepository struct {
	db *sql.DB
}

func NewPostgresProfileRepository(db *sql.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

const profileColumns = `id, email, full_name, COALESCE(avatar_url, ''), role, COALESCE(team_name, ''),
	COALESCE(sponsor, ''), recruits, updated_at`

func scanProfile(row rowScanner) (models.Profile, error) {
	var (
		p        models.Profile
		recruits []byte
	)
	err := row.Scan(&p.ID, &p.Email, &p.FullName, &p.AvatarURL, &p.Role, &p.TeamName, &p.Sponsor, &recruits, &p.UpdatedAt)
	if err != nil {
		return models.Profile{}, err
	}
	if err := json.Unmarshal(recruits, &p.Recruits); err != nil {
		return models.Profile{}, fmt.Errorf("failed to decode recruits: %w", err)
	}
	return p, nil
}

func (r *PostgresProfileRepository) GetProfile(ctx context.Context, owner string) (models.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	p, err := scanProfile(r.db.QueryRowContext(ctx, `SELECT `+profileColumns+` FROM profiles WHERE id = $1`, owner))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Profile{}, ErrProfileNotFound
	}
	return p, err
}

// SaveProfile upserts, so a freshly signed-up operator gets a row on first save.
func (r *PostgresProfileRepository) SaveProfile(ctx context.Context, owner string, p models.Profile) (models.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if p.Recruits == nil {
		p.Recruits = []models.Recruit{}
	}
	recruits, err := json.Marshal(p.Recruits)
	if err != nil {
		return models.Profile{}, fmt.Errorf("failed to encode recruits: %w", err)
	}
	if p.Role == "" {
		p.Role = models.RoleVDI
	}

	query := `INSERT INTO profiles (id, email, full_name, avatar_url, role, team_name, sponsor, recruits, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8::jsonb, now())
		ON CONFLICT (id) DO UPDATE SET email = EXCLUDED.email, full_name = EXCLUDED.full_name,
			avatar_url = EXCLUDED.avatar_url, role = EXCLUDED.role, team_name = EXCLUDED.team_name,
			sponsor = EXCLUDED.sponsor, recruits = EXCLUDED.recruits, updated_at = now()
		RETURNING ` + profileColumns
	return scanProfile(r.db.QueryRowContext(ctx, query, owner, p.Email, p.FullName, p.AvatarURL, p.Role,
		p.TeamName, p.Sponsor, recruits))
}
