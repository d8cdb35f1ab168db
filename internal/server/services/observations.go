package services

import (
	"context"
	"database/sql"

	"github.com/blustick/blustick-api/internal/server/models"
	"github.com/blustick/blustick-api/internal/server/repositories/repomanager"
)

// ObservationService serves free-text field notes.
type ObservationService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewObservationService constructs an ObservationService.
func NewObservationService(db *sql.DB, m repomanager.RepositoryManager) *ObservationService {
	return &ObservationService{db: db, repomanager: m}
}

// List returns observations newest first, with the limit clamped to the
// observation ceiling.
func (s *ObservationService) List(ctx context.Context, limit int) ([]*models.Observation, error) {
	repo := s.repomanager.Observations(s.db)
	return repo.List(ctx, clampLimit(limit, ObservationListDefault, ObservationListMax))
}

// Create persists one observation and returns the stored row.
func (s *ObservationService) Create(ctx context.Context, fullName, details string) (*models.Observation, error) {
	repo := s.repomanager.Observations(s.db)
	return repo.Create(ctx, fullName, details)
}
