package devices

import (
	"context"

	"github.com/blustick/blustick-api/internal/server/models"
)

type Repository interface {
	List(ctx context.Context) ([]*models.Device, error)
}
