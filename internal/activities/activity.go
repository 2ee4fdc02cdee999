package activities

import "time"

type Activity struct {
	ID              int       `json:"id"`
	Type            string    `json:"type"`
	Name            string    `json:"name"`
	StartedAt       time.Time `json:"startedAt"`
	DurationSeconds int       `json:"durationSeconds"`
	Distance        float64   `json:"distance"`
}
