package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID           int64     `json:"id" db:"id" example:"1"`                                   // Unique identifier for the user
	FirstName    string    `json:"firstName" db:"first_name" example:"Joe"`                  // User's first name
	LastName     string    `json:"lastName" db:"last_name" example:"Smith"`                  // User's last name
	EmailAddress string    `json:"emailAddress" db:"email_address" example:"joe@smith.com"`  // User's email address, unique
	Password     string    `json:"-" db:"password"`                                          // Bcrypt hash of the user's password (excluded from JSON)
	CreatedAt    time.Time `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the user was created
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"` // Timestamp when the user was last updated
}
