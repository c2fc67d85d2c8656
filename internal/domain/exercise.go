package domain

import "time"

// Exercise represents a single exercise definition in the shared library.
type Exercise struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Category     string    `json:"category"`     // e.g. "Bodyweight", "Cardio", "Weightlifting"
	MuscleGroup  string    `json:"muscle_group"` // e.g. "Chest", "Legs", "Back"
	Difficulty   string    `json:"difficulty"`   // e.g. "Beginner", "Intermediate", "Advanced"
	Instructions string    `json:"instructions"`
	InstructorID int64     `json:"instructor_id"` // Instructor who authored this exercise
	CreatedAt    time.Time `json:"created_at"`
}
