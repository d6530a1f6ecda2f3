package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/room-booking/internal/models"
)

const roomColumns = `id, number_room, description, location, capacity, created_at, updated_at`

type RoomReadRepository struct {
	db *sqlx.DB
}

func NewRoomReadRepository(db *sqlx.DB) *RoomReadRepository {
	return &RoomReadRepository{db: db}
}

// GetByID returns the room with the given id or ErrNotFound.
func (r *RoomReadRepository) GetByID(ctx context.Context, id int64) (*models.RoomDB, error) {
	const query = `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1`

	var room models.RoomDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &room, query, id)
	logQuery(query, []any{id}, room.NumberRoom, err)
	if err != nil {
		return nil, mapError(err)
	}
	return &room, nil
}

// List returns all rooms in storage order.
func (r *RoomReadRepository) List(ctx context.Context) ([]models.RoomDB, error) {
	const query = `SELECT ` + roomColumns + ` FROM rooms ORDER BY id`

	rooms := []models.RoomDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &rooms, query)
	logQuery(query, nil, len(rooms), err)
	return rooms, mapError(err)
}

type RoomWriteRepository struct {
	db *sqlx.DB
}

func NewRoomWriteRepository(db *sqlx.DB) *RoomWriteRepository {
	return &RoomWriteRepository{db: db}
}

// Create inserts the room and fills in its id and timestamps.
func (r *RoomWriteRepository) Create(ctx context.Context, room *models.RoomDB) error {
	const query = `
		INSERT INTO rooms (number_room, description, location, capacity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	args := []any{room.NumberRoom, room.Description, room.Location, room.Capacity}

	err := executor(ctx, r.db).QueryRowxContext(ctx, query, args...).Scan(&room.ID, &room.CreatedAt, &room.UpdatedAt)
	logQuery(query, args, room.ID, err)
	return mapError(err)
}

// Update overwrites every column of the room identified by room.ID.
func (r *RoomWriteRepository) Update(ctx context.Context, room *models.RoomDB) error {
	const query = `
		UPDATE rooms
		SET number_room = $2, description = $3, location = $4, capacity = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at
	`
	args := []any{room.ID, room.NumberRoom, room.Description, room.Location, room.Capacity}

	err := executor(ctx, r.db).QueryRowxContext(ctx, query, args...).Scan(&room.CreatedAt, &room.UpdatedAt)
	logQuery(query, args, room.UpdatedAt, err)
	return mapError(err)
}

// Delete removes the room with its availabilities, reservations and their payments.
func (r *RoomWriteRepository) Delete(ctx context.Context, id int64) error {
	return withinTx(ctx, r.db, func(ctx context.Context) error {
		return deleteCascade(ctx, r.db, id, []string{
			`DELETE FROM payments WHERE reservation_id IN (SELECT id FROM reservations WHERE room_id = $1)`,
			`DELETE FROM reservations WHERE room_id = $1`,
			`DELETE FROM availabilities WHERE room_id = $1`,
		}, `DELETE FROM rooms WHERE id = $1`)
	})
}
