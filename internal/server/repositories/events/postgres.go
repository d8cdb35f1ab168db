// Package events provides read-only PostgreSQL access to event metadata.
package events

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

// List returns up to limit events, newest first.
func (r *PostgresRepository) List(ctx context.Context, limit int) ([]*models.Event, error) {
	query :=
		`SELECT id, user_id, event_name, event_description, created_at FROM events
		 ORDER BY created_at DESC
		 LIMIT $1
		 `

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Event{}
	for rows.Next() {
		var item models.Event
		if err := rows.Scan(&item.ID, &item.UserID, &item.Name, &item.Description, &item.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
