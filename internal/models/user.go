package models

import "time"

// UserDB represents a user record in the database
type UserDB struct {
	ID        int64     `json:"id" db:"id"`                 // Primary key
	Username  string    `json:"username" db:"username"`     // Unique username, no spaces
	Password  string    `json:"-" db:"password"`            // Bcrypt hash, never serialized
	Email     string    `json:"email" db:"email"`           // Unique email
	Name      string    `json:"name" db:"name"`             // First name
	LastName  string    `json:"last_name" db:"last_name"`   // Last name
	IsActive  bool      `json:"is_active" db:"is_active"`   // Active users are listed by the active-users query
	CreatedAt time.Time `json:"created_at" db:"created_at"` // Creation timestamp
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"` // Last update timestamp
}
