package services

import (
	"context"
	"time"

	"github.com/sbilibin2017/room-booking/internal/logger"
	"github.com/sbilibin2017/room-booking/internal/models"
	"github.com/sbilibin2017/room-booking/internal/validators"
)

//go:generate mockgen -source=reservation.go -destination=reservation_mock_test.go -package=services

// ReservationReader defines read-only operations for reservations.
type ReservationReader interface {
	GetByID(ctx context.Context, id int64) (*models.ReservationDB, error)
	List(ctx context.Context) ([]models.ReservationDB, error)
	ListByUser(ctx context.Context, userID int64) ([]models.ReservationDB, error)
	ListByRoomWithin(ctx context.Context, roomID int64, start, end time.Time) ([]models.ReservationDB, error)
}

// ReservationWriter defines write operations for reservations.
type ReservationWriter interface {
	LockRoom(ctx context.Context, roomID int64) error
	Create(ctx context.Context, reservation *models.ReservationDB) error
	Update(ctx context.Context, reservation *models.ReservationDB) error
	Delete(ctx context.Context, id int64) error
}

// ReservationService books rooms and publishes reservation events.
type ReservationService struct {
	reader      ReservationReader
	writer      ReservationWriter
	tx          TxManager
	kafkaWriter KafkaWriter
}

// NewReservationService creates a new ReservationService.
func NewReservationService(
	reader ReservationReader,
	writer ReservationWriter,
	tx TxManager,
	kafkaWriter KafkaWriter,
) *ReservationService {
	return &ReservationService{
		reader:      reader,
		writer:      writer,
		tx:          tx,
		kafkaWriter: kafkaWriter,
	}
}

// Create books a room. The overlap check and the insert run under a lock on the room.
func (s *ReservationService) Create(ctx context.Context, reservation *models.ReservationDB) error {
	if reservation.Status == "" {
		reservation.Status = models.StatusPending
	}
	reservation.ID = 0

	if err := s.save(ctx, reservation, s.writer.Create); err != nil {
		return err
	}

	s.publishAfterCommit(ctx, newEvent(models.EventReservationCreated, reservation.ID, reservation.UserID, reservation.RoomID, reservation))
	return nil
}

// Update overwrites a reservation. Its own stored interval never conflicts with the new one.
func (s *ReservationService) Update(ctx context.Context, reservation *models.ReservationDB) error {
	if reservation.Status == "" {
		reservation.Status = models.StatusPending
	}

	if err := s.save(ctx, reservation, s.writer.Update); err != nil {
		return err
	}

	s.publishAfterCommit(ctx, newEvent(models.EventReservationUpdated, reservation.ID, reservation.UserID, reservation.RoomID, reservation))
	return nil
}

func (s *ReservationService) save(ctx context.Context, reservation *models.ReservationDB, write func(context.Context, *models.ReservationDB) error) error {
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.writer.LockRoom(ctx, reservation.RoomID); err != nil {
			return err
		}
		if err := validators.ValidateReservation(ctx, *reservation, s.reader); err != nil {
			return err
		}
		return write(ctx, reservation)
	})
	if err != nil {
		logger.Log.Errorw("failed to save reservation",
			"id", reservation.ID,
			"room_id", reservation.RoomID,
			"start_time", reservation.StartTime,
			"end_time", reservation.EndTime,
			"error", err,
		)
	}
	return err
}

// publishAfterCommit sends the event once the surrounding transaction has committed.
func (s *ReservationService) publishAfterCommit(ctx context.Context, event models.Event) {
	s.tx.AfterCommit(ctx, func(ctx context.Context) {
		publishEvent(ctx, s.kafkaWriter, event)
	})
}

// Get returns a reservation by id.
func (s *ReservationService) Get(ctx context.Context, id int64) (*models.ReservationDB, error) {
	return s.reader.GetByID(ctx, id)
}

// List returns all reservations.
func (s *ReservationService) List(ctx context.Context) ([]models.ReservationDB, error) {
	return s.reader.List(ctx)
}

// Delete removes a reservation and its payments.
func (s *ReservationService) Delete(ctx context.Context, id int64) error {
	reservation, err := s.reader.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.writer.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete reservation", "id", id, "error", err)
		return err
	}

	s.publishAfterCommit(ctx, newEvent(models.EventReservationDeleted, id, reservation.UserID, reservation.RoomID, nil))
	return nil
}

// ReservationsByUser returns the reservations of a user in storage order.
// An unknown user yields an empty list.
func (s *ReservationService) ReservationsByUser(ctx context.Context, userID int64) ([]models.ReservationDB, error) {
	reservations, err := s.reader.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list reservations by user", "user_id", userID, "error", err)
		return nil, &RetrievalError{Err: err}
	}
	return reservations, nil
}
