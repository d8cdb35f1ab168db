package services

import (
	"context"
	"database/sql"

	"github.com/blustick/blustick-api/internal/server/models"
	"github.com/blustick/blustick-api/internal/server/repositories/repomanager"
)

// CatalogService serves the read-only listings: event metadata and current
// device positions.
type CatalogService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewCatalogService constructs a CatalogService.
func NewCatalogService(db *sql.DB, m repomanager.RepositoryManager) *CatalogService {
	return &CatalogService{db: db, repomanager: m}
}

// ListEvents returns events newest first, with the limit clamped to the
// event ceiling.
func (s *CatalogService) ListEvents(ctx context.Context, limit int) ([]*models.Event, error) {
	repo := s.repomanager.Events(s.db)
	return repo.List(ctx, clampLimit(limit, EventListDefault, EventListMax))
}

// ListDevices returns every current device position, newest first.
func (s *CatalogService) ListDevices(ctx context.Context) ([]*models.Device, error) {
	repo := s.repomanager.Devices(s.db)
	return repo.List(ctx)
}
