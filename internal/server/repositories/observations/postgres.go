// Package observations provides PostgreSQL-backed storage for free-text
// field notes.
package observations

import (
	"context"
	"fmt"

	"github.com/blustick/blustick-api/internal/dbx"
	"github.com/blustick/blustick-api/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns up to limit observations, newest first.
func (r *PostgresRepository) List(ctx context.Context, limit int) ([]*models.Observation, error) {
	query :=
		`SELECT id, user_id, full_name, observation_details, created_at FROM observations
		 ORDER BY created_at DESC
		 LIMIT $1
		 `

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Observation{}
	for rows.Next() {
		var item models.Observation
		if err := rows.Scan(&item.ID, &item.UserID, &item.FullName, &item.Details, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Create inserts one observation and returns the persisted row including
// store-generated id and timestamp.
func (r *PostgresRepository) Create(ctx context.Context, fullName, details string) (*models.Observation, error) {
	query :=
		`INSERT INTO observations (full_name, observation_details)
		 VALUES ($1, $2)
		 RETURNING id, user_id, full_name, observation_details, created_at
		 `

	obs := &models.Observation{}
	err := r.db.QueryRowContext(ctx, query, fullName, details).
		Scan(&obs.ID, &obs.UserID, &obs.FullName, &obs.Details, &obs.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return obs, nil
}
