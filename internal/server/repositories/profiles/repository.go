package profiles

import (
	"context"

	"github.com/blustick/blustick-api/internal/server/models"
)

type Repository interface {
	GetByUsername(ctx context.Context, username string) (*models.Profile, error)
	Create(ctx context.Context, profile *models.Profile) (*models.Profile, error)
}
