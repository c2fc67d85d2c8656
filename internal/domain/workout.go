package domain

import "time"

// Workout is either an instructor-authored template (UserID == nil, visible to
// everyone) or a personal workout owned by exactly one user.
type Workout struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description,omitempty"`
	Duration     int       `json:"duration"` // in minutes
	InstructorID int64     `json:"instructor_id"`
	UserID       *int64    `json:"user_id,omitempty"` // nil for templates
	CreatedAt    time.Time `json:"created_at"`
}

// IsTemplate reports whether the workout is a shared instructor template.
func (w *Workout) IsTemplate() bool {
	return w.UserID == nil
}
