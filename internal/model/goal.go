package model

import "time"

// Goal represents a savings goal with a positive target amount.
// Current progress starts at zero and is advanced by goal-specific logic
// elsewhere; the store only holds it.
type Goal struct {
	CreatedAt time.Time `json:"createdAt"`
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Target    float64   `json:"target"`
	Current   float64   `json:"current"`
}

// GoalDraft carries the caller-supplied fields for a new goal. Any
// Current value in the draft is discarded at creation.
type GoalDraft struct {
	Title  string
	Target float64
}
