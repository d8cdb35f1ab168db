// Package profiles provides the PostgreSQL-backed credential store adapter.
package profiles

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/blustick/blustick-api/internal/common"
	"github.com/blustick/blustick-api/internal/dbx"
	"github.com/blustick/blustick-api/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// GetByUsername performs a single case-sensitive equality lookup.
func (r *PostgresRepository) GetByUsername(ctx context.Context, username string) (*models.Profile, error) {
	query :=
		`SELECT user_id, username, password_hash FROM profiles
		 WHERE username = $1
		 LIMIT 1
		 `

	profile := &models.Profile{}
	err := r.db.QueryRowContext(ctx, query, username).Scan(&profile.ID, &profile.Username, &profile.PasswordHash)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return profile, nil
}

// Create provisions a profile. The API itself has no registration endpoint;
// this is used by operator tooling and tests.
func (r *PostgresRepository) Create(ctx context.Context, profile *models.Profile) (*models.Profile, error) {

	query :=
		`INSERT INTO profiles (username, password_hash)
         VALUES ($1, $2)
		 RETURNING user_id
		 `

	err := r.db.QueryRowContext(ctx, query,
		profile.Username, profile.PasswordHash).Scan(&profile.ID)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return profile, nil
}
