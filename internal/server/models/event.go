package models

import "time"

// Event is a named happening that detections and questionnaire responses may
// reference. Read-only from the API's perspective.
type Event struct {
	ID          string    `json:"id"`
	UserID      *string   `json:"user_id"`
	Name        string    `json:"event_name"`
	Description *string   `json:"event_description"`
	CreatedAt   time.Time `json:"created_at"`
}
