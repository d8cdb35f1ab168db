// Package questionnaires provides PostgreSQL-backed storage for field survey
// responses.
package questionnaires

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

// List returns up to limit responses, newest first.
func (r *PostgresRepository) List(ctx context.Context, limit int) ([]*models.QuestionnaireResponse, error) {
	query :=
		`SELECT id, event_id, respondent, q1, q2, q3, q4, q5, ts FROM questionnaire_responses
		 ORDER BY ts DESC
		 LIMIT $1
		 `

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	result := []*models.QuestionnaireResponse{}
	for rows.Next() {
		var item models.QuestionnaireResponse
		if err := rows.Scan(
			&item.ID, &item.EventID, &item.Respondent,
			&item.Q1, &item.Q2, &item.Q3, &item.Q4, &item.Q5, &item.Timestamp,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Create inserts one response and returns the persisted row including
// store-generated id and timestamp.
func (r *PostgresRepository) Create(ctx context.Context, a Answers) (*models.QuestionnaireResponse, error) {
	query :=
		`INSERT INTO questionnaire_responses (respondent, q1, q2, q3, q4, q5)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, event_id, respondent, q1, q2, q3, q4, q5, ts
		 `

	resp := &models.QuestionnaireResponse{}
	err := r.db.QueryRowContext(ctx, query, a.Respondent, a.Q1, a.Q2, a.Q3, a.Q4, a.Q5).
		Scan(&resp.ID, &resp.EventID, &resp.Respondent,
			&resp.Q1, &resp.Q2, &resp.Q3, &resp.Q4, &resp.Q5, &resp.Timestamp)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return resp, nil
}
