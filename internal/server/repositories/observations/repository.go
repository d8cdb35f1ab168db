package observations

import (
	"context"

	"github.com/blustick/blustick-api/internal/server/models"
)

type Repository interface {
	List(ctx context.Context, limit int) ([]*models.Observation, error)
	Create(ctx context.Context, fullName, details string) (*models.Observation, error)
}
