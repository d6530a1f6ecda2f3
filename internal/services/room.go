package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/room-booking/internal/logger"
	"github.com/sbilibin2017/room-booking/internal/models"
	"github.com/sbilibin2017/room-booking/internal/repositories"
	"github.com/sbilibin2017/room-booking/internal/validators"
)

//go:generate mockgen -source=room.go -destination=room_mock_test.go -package=services

// RoomReader defines read-only operations for rooms.
type RoomReader interface {
	GetByID(ctx context.Context, id int64) (*models.RoomDB, error)
	List(ctx context.Context) ([]models.RoomDB, error)
}

// RoomWriter defines write operations for rooms.
type RoomWriter interface {
	Create(ctx context.Context, room *models.RoomDB) error
	Update(ctx context.Context, room *models.RoomDB) error
	Delete(ctx context.Context, id int64) error
}

// RoomCache caches room snapshots.
type RoomCache interface {
	Get(ctx context.Context, id int64) (*models.RoomDB, error)
	Set(ctx context.Context, room *models.RoomDB) error
	Delete(ctx context.Context, id int64) error
}

// RoomService manages rooms, reading through the cache.
type RoomService struct {
	reader RoomReader
	writer RoomWriter
	cache  RoomCache
	tx     TxManager
}

// NewRoomService creates a new RoomService.
func NewRoomService(reader RoomReader, writer RoomWriter, cache RoomCache, tx TxManager) *RoomService {
	return &RoomService{
		reader: reader,
		writer: writer,
		cache:  cache,
		tx:     tx,
	}
}

// Create validates and stores a room.
func (s *RoomService) Create(ctx context.Context, room *models.RoomDB) error {
	if err := validators.ValidateRoom(*room); err != nil {
		return err
	}
	if err := s.writer.Create(ctx, room); err != nil {
		logger.Log.Errorw("failed to save room", "number_room", room.NumberRoom, "error", err)
		return err
	}
	return nil
}

// Get returns a room, consulting the cache first.
func (s *RoomService) Get(ctx context.Context, id int64) (*models.RoomDB, error) {
	room, err := s.cache.Get(ctx, id)
	if err == nil {
		return room, nil
	}
	if !errors.Is(err, repositories.ErrCacheMiss) {
		logger.Log.Errorw("failed to read room from cache", "id", id, "error", err)
	}

	room, err = s.reader.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, room); err != nil {
		logger.Log.Errorw("failed to cache room", "id", id, "error", err)
	}
	return room, nil
}

// List returns all rooms.
func (s *RoomService) List(ctx context.Context) ([]models.RoomDB, error) {
	return s.reader.List(ctx)
}

// Update validates and overwrites a room. Its cached snapshot is evicted once the
// transaction commits, so a read racing the write cannot pin the old row.
func (s *RoomService) Update(ctx context.Context, room *models.RoomDB) error {
	if err := validators.ValidateRoom(*room); err != nil {
		return err
	}
	if err := s.writer.Update(ctx, room); err != nil {
		logger.Log.Errorw("failed to update room", "id", room.ID, "error", err)
		return err
	}
	s.evictAfterCommit(ctx, room.ID)
	return nil
}

// Delete removes a room with its availabilities, reservations and their payments.
func (s *RoomService) Delete(ctx context.Context, id int64) error {
	if err := s.writer.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete room", "id", id, "error", err)
		return err
	}
	s.evictAfterCommit(ctx, id)
	return nil
}

func (s *RoomService) evictAfterCommit(ctx context.Context, id int64) {
	s.tx.AfterCommit(ctx, func(ctx context.Context) {
		if err := s.cache.Delete(ctx, id); err != nil {
			logger.Log.Errorw("failed to evict room from cache", "id", id, "error", err)
		}
	})
}
