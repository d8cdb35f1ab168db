package detections

import (
	"context"

	"github.com/blustick/blustick-api/internal/server/models"
)

type Repository interface {
	InsertBatch(ctx context.Context, rows []models.NewDetection) (int64, error)
	List(ctx context.Context, eventID *string, limit int) ([]*models.Detection, error)
}
