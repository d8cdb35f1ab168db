package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/blustick/blustick-api/internal/common"
	"github.com/blustick/blustick-api/internal/dbx"
	"github.com/blustick/blustick-api/internal/logging"
	"github.com/blustick/blustick-api/internal/server/models"
	"github.com/blustick/blustick-api/internal/server/repositories/repomanager"
)

// DetectionService implements the batch ingestion pipeline and detection
// listing. Ingestion is all-or-nothing: the first invalid element rejects the
// whole batch before any store call, and a storage failure rolls back every
// row.
type DetectionService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

// NewDetectionService constructs a DetectionService.
func NewDetectionService(db *sql.DB, m repomanager.RepositoryManager, l logging.Logger) *DetectionService {
	return &DetectionService{
		db:          db,
		repomanager: m,
		logger:      l.With("module", "detections"),
	}
}

// Ingest validates every element of the raw batch, normalizes missing
// optional fields to explicit NULLs, and persists the batch with a single
// multi-row insert inside a transaction. It returns the number of rows
// persisted, which on success always equals len(raw).
func (s *DetectionService) Ingest(ctx context.Context, raw []json.RawMessage) (int64, error) {
	if len(raw) == 0 {
		return 0, common.ErrEmptyBatch
	}

	rows := make([]models.NewDetection, 0, len(raw))
	for i, element := range raw {
		row, err := parseDetection(element)
		if err != nil {
			s.logger.Warn(ctx, "rejecting detection batch", "element", i, "reason", err.Error())
			return 0, fmt.Errorf("%w: element %d: %v", common.ErrInvalidPayload, i, err)
		}
		rows = append(rows, row)
	}

	var inserted int64
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Detections(tx)
		n, err := repo.InsertBatch(ctx, rows)
		if err != nil {
			return err
		}
		if n != int64(len(rows)) {
			// Invariant violation: the store must report one inserted row per
			// validated record. Returning an error rolls the batch back.
			s.logger.Error(ctx, "batch insert count mismatch", "expected", len(rows), "got", n)
			return fmt.Errorf("inserted %d of %d detections", n, len(rows))
		}
		inserted = n
		return nil
	})
	if err != nil {
		return 0, err
	}

	return inserted, nil
}

// List returns detections newest first, optionally filtered by event, with
// the limit clamped to the detection ceiling.
func (s *DetectionService) List(ctx context.Context, eventID *string, limit int) ([]*models.Detection, error) {
	repo := s.repomanager.Detections(s.db)
	return repo.List(ctx, eventID, clampLimit(limit, DetectionListDefault, DetectionListMax))
}

// parseDetection validates one raw batch element against the detection
// schema and normalizes it. The mac_address key must be present (its value
// may be null); every other field is optional. detected_at defaults to the
// current instant at processing time, not the original sensing time.
func parseDetection(raw json.RawMessage) (models.NewDetection, error) {
	var d models.NewDetection

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return d, fmt.Errorf("element is not an object")
	}

	macRaw, ok := fields["mac_address"]
	if !ok {
		return d, fmt.Errorf("mac_address is required")
	}
	mac, err := stringOrNull(macRaw, "mac_address")
	if err != nil {
		return d, err
	}
	d.MACAddress = mac

	if eventRaw, ok := fields["event_id"]; ok {
		eventID, err := uuidOrNull(eventRaw, "event_id")
		if err != nil {
			return d, err
		}
		d.EventID = eventID
	}

	if v, ok := fields["signal_type"]; ok {
		if d.SignalType, err = stringOrNull(v, "signal_type"); err != nil {
			return d, err
		}
	}
	if v, ok := fields["rssi"]; ok {
		if d.RSSI, err = numberOrNull(v, "rssi"); err != nil {
			return d, err
		}
	}
	if v, ok := fields["estimated_distance"]; ok {
		if d.EstimatedDistance, err = numberOrNull(v, "estimated_distance"); err != nil {
			return d, err
		}
	}
	if v, ok := fields["latitude"]; ok {
		if d.Latitude, err = numberOrNull(v, "latitude"); err != nil {
			return d, err
		}
	}
	if v, ok := fields["longitude"]; ok {
		if d.Longitude, err = numberOrNull(v, "longitude"); err != nil {
			return d, err
		}
	}

	d.DetectedAt = time.Now().UTC()
	if v, ok := fields["detected_at"]; ok {
		ts, err := timestamp(v)
		if err != nil {
			return d, err
		}
		d.DetectedAt = ts
	}

	return d, nil
}
