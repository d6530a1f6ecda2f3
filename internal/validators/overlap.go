package validators

import (
	"context"
	"fmt"
	"time"

	"github.com/sbilibin2017/room-booking/internal/models"
)

//go:generate mockgen -source=overlap.go -destination=overlap_mock_test.go -package=validators

// ReservationSource returns the reservations of a room that may intersect [start, end).
// It may return more than that; CheckOverlap applies the exact predicate.
type ReservationSource interface {
	ListByRoomWithin(ctx context.Context, roomID int64, start, end time.Time) ([]models.ReservationDB, error)
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and [bStart, bEnd) intersect.
// Intervals that only touch do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// CheckOverlap reports whether any reservation of roomID other than excludeID intersects [start, end).
// An excludeID of 0 excludes nothing.
func CheckOverlap(
	ctx context.Context,
	source ReservationSource,
	roomID int64,
	start, end time.Time,
	excludeID int64,
) (bool, error) {
	existing, err := source.ListByRoomWithin(ctx, roomID, start, end)
	if err != nil {
		return false, fmt.Errorf("list reservations of room %d: %w", roomID, err)
	}

	for _, r := range existing {
		if r.RoomID != roomID {
			continue
		}
		if excludeID != 0 && r.ID == excludeID {
			continue
		}
		if Overlaps(r.StartTime, r.EndTime, start, end) {
			return true, nil
		}
	}

	return false, nil
}
