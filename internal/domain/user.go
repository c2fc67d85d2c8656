package domain

import "time"

// User represents a registered account in the system.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"` // Should be unique
	PasswordHash string    `json:"-"`     // Never expose this via JSON
	FitnessLevel string    `json:"fitness_level"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
}
