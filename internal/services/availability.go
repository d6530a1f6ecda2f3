package services

import (
	"context"
	"time"

	"github.com/sbilibin2017/room-booking/internal/logger"
	"github.com/sbilibin2017/room-booking/internal/models"
	"github.com/sbilibin2017/room-booking/internal/validators"
)

//go:generate mockgen -source=availability.go -destination=availability_mock_test.go -package=services

// AvailabilityReader defines read-only operations for availability windows.
type AvailabilityReader interface {
	GetByID(ctx context.Context, id int64) (*models.AvailabilityDB, error)
	List(ctx context.Context) ([]models.AvailabilityDB, error)
}

// AvailabilityWriter defines write operations for availability windows.
type AvailabilityWriter interface {
	Create(ctx context.Context, availability *models.AvailabilityDB) error
	Update(ctx context.Context, availability *models.AvailabilityDB) error
	Delete(ctx context.Context, id int64) error
}

// AvailabilityService manages the windows during which rooms can be booked.
type AvailabilityService struct {
	reader AvailabilityReader
	writer AvailabilityWriter
	now    func() time.Time
}

// NewAvailabilityService creates a new AvailabilityService. A nil clock means time.Now.
func NewAvailabilityService(reader AvailabilityReader, writer AvailabilityWriter, now func() time.Time) *AvailabilityService {
	if now == nil {
		now = time.Now
	}
	return &AvailabilityService{
		reader: reader,
		writer: writer,
		now:    now,
	}
}

// Create validates and stores an availability window.
func (s *AvailabilityService) Create(ctx context.Context, availability *models.AvailabilityDB) error {
	if err := validators.ValidateAvailability(*availability, s.now()); err != nil {
		return err
	}
	if err := s.writer.Create(ctx, availability); err != nil {
		logger.Log.Errorw("failed to save availability", "room_id", availability.RoomID, "date", availability.Date, "error", err)
		return err
	}
	return nil
}

// Get returns an availability window by id.
func (s *AvailabilityService) Get(ctx context.Context, id int64) (*models.AvailabilityDB, error) {
	return s.reader.GetByID(ctx, id)
}

// List returns all availability windows.
func (s *AvailabilityService) List(ctx context.Context) ([]models.AvailabilityDB, error) {
	return s.reader.List(ctx)
}

// Update validates and overwrites an availability window.
func (s *AvailabilityService) Update(ctx context.Context, availability *models.AvailabilityDB) error {
	if err := validators.ValidateAvailability(*availability, s.now()); err != nil {
		return err
	}
	if err := s.writer.Update(ctx, availability); err != nil {
		logger.Log.Errorw("failed to update availability", "id", availability.ID, "error", err)
		return err
	}
	return nil
}

// Delete removes an availability window.
func (s *AvailabilityService) Delete(ctx context.Context, id int64) error {
	if err := s.writer.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete availability", "id", id, "error", err)
		return err
	}
	return nil
}
