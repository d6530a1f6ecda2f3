package models

import "time"

// RoomDB represents a bookable room
type RoomDB struct {
	ID          int64     `json:"id" db:"id"`
	NumberRoom  string    `json:"number_room" db:"number_room"` // Unique alphanumeric room code, e.g. A101
	Description string    `json:"description" db:"description"`
	Location    string    `json:"location" db:"location"`
	Capacity    int       `json:"capacity" db:"capacity"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}
