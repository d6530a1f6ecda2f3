package validators

import (
	"context"

	"github.com/sbilibin2017/room-booking/internal/models"
)

// ValidateReservation checks the time range of a reservation and that it does not
// overlap another reservation of the same room. The reservation's own ID is excluded,
// so an update never conflicts with the stored version of itself.
func ValidateReservation(ctx context.Context, reservation models.ReservationDB, source ReservationSource) error {
	if !reservation.StartTime.Before(reservation.EndTime) {
		return newValidationError(ErrInvalidRange, "start_time", "start time must be before end time")
	}

	overlap, err := CheckOverlap(ctx, source, reservation.RoomID, reservation.StartTime, reservation.EndTime, reservation.ID)
	if err != nil {
		return err
	}
	if overlap {
		return newValidationError(ErrConflict, "room_id", "the room is already reserved for the requested period")
	}

	return nil
}
