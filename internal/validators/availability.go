package validators

import (
	"time"

	"github.com/sbilibin2017/room-booking/internal/models"
)

// Daily window during which a room may be made available.
var (
	OpeningTime = models.NewTimeOfDay(8, 0)
	ClosingTime = models.NewTimeOfDay(20, 0)
)

// ValidateAvailability checks that the window lies within opening hours and that the
// date is not in the past relative to now.
func ValidateAvailability(availability models.AvailabilityDB, now time.Time) error {
	start, end := availability.StartTime, availability.EndTime
	if !(OpeningTime <= start && start < end && end <= ClosingTime) {
		return newValidationError(ErrInvalidRange, "start_time", "availability must be within opening hours (08:00 - 20:00)")
	}

	if availability.Date.Before(models.DateOf(now)) {
		return newValidationError(ErrInvalidValue, "date", "availability date must not be in the past")
	}

	return nil
}
