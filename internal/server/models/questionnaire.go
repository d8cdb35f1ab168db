package models

import "time"

// QuestionnaireResponse is one respondent's answers to the five-question
// field survey.
type QuestionnaireResponse struct {
	ID         string    `json:"id"`
	EventID    *string   `json:"event_id"`
	Respondent string    `json:"respondent"`
	Q1         string    `json:"q1"`
	Q2         string    `json:"q2"`
	Q3         string    `json:"q3"`
	Q4         string    `json:"q4"`
	Q5         string    `json:"q5"`
	Timestamp  time.Time `json:"ts"`
}
