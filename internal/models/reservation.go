package models

import "time"

// Reservation status codes
const (
	StatusPending   = "P"
	StatusConfirmed = "C"
	StatusCancelled = "X"
)

// ReservationStatuses lists every valid reservation status code.
var ReservationStatuses = []string{StatusPending, StatusConfirmed, StatusCancelled}

// ReservationDB represents a reservation of a room by a user over [StartTime, EndTime).
type ReservationDB struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"user_id" db:"user_id"`
	RoomID    int64     `json:"room_id" db:"room_id"`
	StartTime time.Time `json:"start_time" db:"start_time"`
	EndTime   time.Time `json:"end_time" db:"end_time"`
	Status    string    `json:"status" db:"status"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
