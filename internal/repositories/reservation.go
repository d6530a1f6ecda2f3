package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/room-booking/internal/models"
)

const reservationColumns = `id, user_id, room_id, start_time, end_time, status, created_at, updated_at`

// ReservationReadRepository handles reservation read operations
type ReservationReadRepository struct {
	db *sqlx.DB
}

func NewReservationReadRepository(db *sqlx.DB) *ReservationReadRepository {
	return &ReservationReadRepository{db: db}
}

// GetByID returns the reservation with the given id or ErrNotFound.
func (r *ReservationReadRepository) GetByID(ctx context.Context, id int64) (*models.ReservationDB, error) {
	const query = `SELECT ` + reservationColumns + ` FROM reservations WHERE id = $1`

	var reservation models.ReservationDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &reservation, query, id)
	logQuery(query, []any{id}, reservation.ID, err)
	if err != nil {
		return nil, mapError(err)
	}
	return &reservation, nil
}

// List returns all reservations in storage order.
func (r *ReservationReadRepository) List(ctx context.Context) ([]models.ReservationDB, error) {
	const query = `SELECT ` + reservationColumns + ` FROM reservations ORDER BY id`
	return r.selectReservations(ctx, query)
}

// ListByUser returns the reservations of a user in storage order.
// An unknown user yields an empty slice.
func (r *ReservationReadRepository) ListByUser(ctx context.Context, userID int64) ([]models.ReservationDB, error) {
	const query = `SELECT ` + reservationColumns + ` FROM reservations WHERE user_id = $1 ORDER BY id`
	return r.selectReservations(ctx, query, userID)
}

// ListByRoomWithin returns the reservations of a room whose interval intersects [start, end).
func (r *ReservationReadRepository) ListByRoomWithin(ctx context.Context, roomID int64, start, end time.Time) ([]models.ReservationDB, error) {
	const query = `
		SELECT ` + reservationColumns + `
		FROM reservations
		WHERE room_id = $1
		  AND start_time < $3
		  AND end_time > $2
		ORDER BY id
	`
	return r.selectReservations(ctx, query, roomID, start, end)
}

func (r *ReservationReadRepository) selectReservations(ctx context.Context, query string, args ...any) ([]models.ReservationDB, error) {
	reservations := []models.ReservationDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &reservations, query, args...)
	logQuery(query, args, len(reservations), err)
	return reservations, mapError(err)
}

// ReservationWriteRepository handles reservation write operations
type ReservationWriteRepository struct {
	db *sqlx.DB
}

func NewReservationWriteRepository(db *sqlx.DB) *ReservationWriteRepository {
	return &ReservationWriteRepository{db: db}
}

// LockRoom takes a row lock on the room until the surrounding transaction ends,
// serializing reservation writes for that room. It returns ErrInvalidReference
// when the room does not exist.
func (r *ReservationWriteRepository) LockRoom(ctx context.Context, roomID int64) error {
	const query = `SELECT id FROM rooms WHERE id = $1 FOR UPDATE`

	var id int64
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &id, query, roomID)
	logQuery(query, []any{roomID}, id, err)
	if err != nil {
		if err = mapError(err); errors.Is(err, ErrNotFound) {
			return ErrInvalidReference
		}
		return err
	}
	return nil
}

// Create inserts the reservation and fills in its id and timestamps.
func (r *ReservationWriteRepository) Create(ctx context.Context, reservation *models.ReservationDB) error {
	const query = `
		INSERT INTO reservations (user_id, room_id, start_time, end_time, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	args := []any{reservation.UserID, reservation.RoomID, reservation.StartTime, reservation.EndTime, reservation.Status}

	err := executor(ctx, r.db).QueryRowxContext(ctx, query, args...).Scan(&reservation.ID, &reservation.CreatedAt, &reservation.UpdatedAt)
	logQuery(query, args, reservation.ID, err)
	return mapError(err)
}

// Update overwrites every column of the reservation identified by reservation.ID.
func (r *ReservationWriteRepository) Update(ctx context.Context, reservation *models.ReservationDB) error {
	const query = `
		UPDATE reservations
		SET user_id = $2, room_id = $3, start_time = $4, end_time = $5, status = $6, updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at
	`
	args := []any{reservation.ID, reservation.UserID, reservation.RoomID, reservation.StartTime, reservation.EndTime, reservation.Status}

	err := executor(ctx, r.db).QueryRowxContext(ctx, query, args...).Scan(&reservation.CreatedAt, &reservation.UpdatedAt)
	logQuery(query, args, reservation.UpdatedAt, err)
	return mapError(err)
}

// Delete removes the reservation and its payments.
func (r *ReservationWriteRepository) Delete(ctx context.Context, id int64) error {
	return withinTx(ctx, r.db, func(ctx context.Context) error {
		return deleteCascade(ctx, r.db, id, []string{
			`DELETE FROM payments WHERE reservation_id = $1`,
		}, `DELETE FROM reservations WHERE id = $1`)
	})
}
