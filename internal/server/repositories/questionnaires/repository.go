package questionnaires

import (
	"context"

	"github.com/blustick/blustick-api/internal/server/models"
)

// Answers carries the validated fields of one questionnaire submission.
type Answers struct {
	Respondent string
	Q1         string
	Q2         string
	Q3         string
	Q4         string
	Q5         string
}

type Repository interface {
	List(ctx context.Context, limit int) ([]*models.QuestionnaireResponse, error)
	Create(ctx context.Context, a Answers) (*models.QuestionnaireResponse, error)
}
