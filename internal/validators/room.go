package validators

import (
	"unicode"

	"github.com/sbilibin2017/room-booking/internal/models"
)

// ValidateRoom checks that the room number is alphanumeric and the capacity is positive.
func ValidateRoom(room models.RoomDB) error {
	if !isAlphanumeric(room.NumberRoom) {
		return newValidationError(ErrInvalidFormat, "number_room", "room number must be alphanumeric")
	}
	if room.Capacity <= 0 {
		return newValidationError(ErrInvalidValue, "capacity", "capacity must be a positive number")
	}
	return nil
}

// isAlphanumeric is false for the empty string.
func isAlphanumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
