package services

import (
	"context"
	"database/sql"

	"github.com/blustick/blustick-api/internal/server/models"
	"github.com/blustick/blustick-api/internal/server/repositories/questionnaires"
	"github.com/blustick/blustick-api/internal/server/repositories/repomanager"
)

// QuestionnaireService serves field survey responses.
type QuestionnaireService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewQuestionnaireService constructs a QuestionnaireService.
func NewQuestionnaireService(db *sql.DB, m repomanager.RepositoryManager) *QuestionnaireService {
	return &QuestionnaireService{db: db, repomanager: m}
}

// List returns responses newest first, with the limit clamped to the
// questionnaire ceiling.
func (s *QuestionnaireService) List(ctx context.Context, limit int) ([]*models.QuestionnaireResponse, error) {
	repo := s.repomanager.Questionnaires(s.db)
	return repo.List(ctx, clampLimit(limit, QuestionnaireListDefault, QuestionnaireListMax))
}

// Create persists one response and returns the stored row.
func (s *QuestionnaireService) Create(ctx context.Context, a questionnaires.Answers) (*models.QuestionnaireResponse, error) {
	repo := s.repomanager.Questionnaires(s.db)
	return repo.Create(ctx, a)
}
