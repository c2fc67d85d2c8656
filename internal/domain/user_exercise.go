package domain

import "time"

// UserExercise tracks one exercise in a user's personal profile.
// At most one row exists per (user, exercise) pair.
type UserExercise struct {
	ID             int64     `json:"id"`
	UserID         int64     `json:"user_id"`
	ExerciseID     int64     `json:"exercise_id"`
	PersonalRecord *float64  `json:"personal_record,omitempty"` // user submittable attribute
	Notes          string    `json:"notes,omitempty"`           // user submittable attribute
	CreatedAt      time.Time `json:"created_at"`
}
