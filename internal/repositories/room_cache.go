package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sbilibin2017/room-booking/internal/logger"
	"github.com/sbilibin2017/room-booking/internal/models"
)

// ErrCacheMiss is returned when a room is not cached.
var ErrCacheMiss = errors.New("room not found in cache")

// RoomCacheRepository caches room snapshots in Redis
type RoomCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached rooms
}

// NewRoomCacheRepository creates a new repository instance with the given TTL
func NewRoomCacheRepository(client *redis.Client, expiration time.Duration) *RoomCacheRepository {
	return &RoomCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func roomKey(id int64) string {
	return fmt.Sprintf("room:%d", id)
}

// Get returns the cached room or ErrCacheMiss
func (r *RoomCacheRepository) Get(ctx context.Context, id int64) (*models.RoomDB, error) {
	key := roomKey(id)

	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		logger.Log.Debugw("cache get", "key", key, "error", err)
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var room models.RoomDB
	if err := json.Unmarshal(val, &room); err != nil {
		logger.Log.Warnw("cache entry is corrupt", "key", key, "error", err)
		return nil, err
	}

	logger.Log.Debugw("cache get", "key", key, "result", room.NumberRoom)
	return &room, nil
}

// Set caches the room with expiration
func (r *RoomCacheRepository) Set(ctx context.Context, room *models.RoomDB) error {
	key := roomKey(room.ID)

	data, err := json.Marshal(room)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()
	logger.Log.Debugw("cache set", "key", key, "ttl", r.exp, "error", err)
	return err
}

// Delete evicts the room from the cache
func (r *RoomCacheRepository) Delete(ctx context.Context, id int64) error {
	key := roomKey(id)
	err := r.client.Del(ctx, key).Err()
	logger.Log.Debugw("cache delete", "key", key, "error", err)
	return err
}
