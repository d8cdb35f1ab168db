// Package devices provides read-only PostgreSQL access to current sensor
// positions for the map view.
package devices

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

// List returns every current device position, most recently seen first.
// The fleet is small so the result is intentionally unbounded.
func (r *PostgresRepository) List(ctx context.Context) ([]*models.Device, error) {
	query :=
		`SELECT device_id, lat, lon, last_seen, sensor_id FROM devices
		 ORDER BY last_seen DESC
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.Device{}
	for rows.Next() {
		var item models.Device
		if err := rows.Scan(&item.DeviceID, &item.Lat, &item.Lon, &item.LastSeen, &item.SensorID); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
