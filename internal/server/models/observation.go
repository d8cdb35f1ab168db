package models

import "time"

// Observation is a free-text field note submitted from the app.
type Observation struct {
	ID        string    `json:"id"`
	UserID    *string   `json:"user_id"`
	FullName  string    `json:"full_name"`
	Details   string    `json:"observation_details"`
	CreatedAt time.Time `json:"created_at"`
}
