// Package detections provides PostgreSQL-backed storage for wireless-signal
// detections: the multi-row batch insert and the filtered list query.
package detections

import (
	"context"
	"errors"
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

// InsertBatch persists all rows with a single multi-row INSERT and returns
// the number of rows the store reports as inserted. Callers are responsible
// for verifying the count against len(rows) and rolling back on mismatch.
func (r *PostgresRepository) InsertBatch(ctx context.Context, rows []models.NewDetection) (int64, error) {
	if len(rows) == 0 {
		return 0, errors.New("empty batch")
	}

	query, args := BuildInsert(rows)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected error: %w", err)
	}

	return n, nil
}

// List returns up to limit detections, newest first by detection time,
// optionally restricted to a single event.
func (r *PostgresRepository) List(ctx context.Context, eventID *string, limit int) ([]*models.Detection, error) {
	query :=
		`SELECT blustick_id, event_id, mac_address, signal_type, rssi,
		        estimated_distance, latitude, longitude, detected_at
		 FROM detections
		 `

	args := []any{}
	if eventID != nil {
		query += ` WHERE event_id = $1`
		args = append(args, *eventID)
	}
	query += fmt.Sprintf(` ORDER BY detected_at DESC LIMIT $%d`, len(args)+1)
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Detection{}
	for rows.Next() {
		var item models.Detection
		if err := rows.Scan(
			&item.ID, &item.EventID, &item.MACAddress, &item.SignalType, &item.RSSI,
			&item.EstimatedDistance, &item.Latitude, &item.Longitude, &item.DetectedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
