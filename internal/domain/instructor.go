package domain

import "time"

// Instructor authors the shared exercise and workout catalog.
// Instructors are catalog data, not login accounts.
type Instructor struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Specialty string    `json:"specialty"`
	Bio       string    `json:"bio,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
