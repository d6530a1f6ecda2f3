package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/room-booking/internal/models"
)

// TIME columns are read as text so that TimeOfDay.Scan sees "15:04:05" regardless of driver mapping.
const availabilityColumns = `id, room_id, date, start_time::TEXT AS start_time, end_time::TEXT AS end_time, created_at, updated_at`

type AvailabilityReadRepository struct {
	db *sqlx.DB
}

func NewAvailabilityReadRepository(db *sqlx.DB) *AvailabilityReadRepository {
	return &AvailabilityReadRepository{db: db}
}

// GetByID returns the availability with the given id or ErrNotFound.
func (r *AvailabilityReadRepository) GetByID(ctx context.Context, id int64) (*models.AvailabilityDB, error) {
	const query = `SELECT ` + availabilityColumns + ` FROM availabilities WHERE id = $1`

	var availability models.AvailabilityDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &availability, query, id)
	logQuery(query, []any{id}, availability.ID, err)
	if err != nil {
		return nil, mapError(err)
	}
	return &availability, nil
}

// List returns all availabilities in storage order.
func (r *AvailabilityReadRepository) List(ctx context.Context) ([]models.AvailabilityDB, error) {
	const query = `SELECT ` + availabilityColumns + ` FROM availabilities ORDER BY id`

	availabilities := []models.AvailabilityDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &availabilities, query)
	logQuery(query, nil, len(availabilities), err)
	return availabilities, mapError(err)
}

type AvailabilityWriteRepository struct {
	db *sqlx.DB
}

func NewAvailabilityWriteRepository(db *sqlx.DB) *AvailabilityWriteRepository {
	return &AvailabilityWriteRepository{db: db}
}

// Create inserts the availability and fills in its id and timestamps.
func (r *AvailabilityWriteRepository) Create(ctx context.Context, availability *models.AvailabilityDB) error {
	const query = `
		INSERT INTO availabilities (room_id, date, start_time, end_time, created_at, updated_at)
		VALUES ($1, $2, $3, $4, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	args := []any{availability.RoomID, availability.Date, availability.StartTime, availability.EndTime}

	err := executor(ctx, r.db).QueryRowxContext(ctx, query, args...).Scan(&availability.ID, &availability.CreatedAt, &availability.UpdatedAt)
	logQuery(query, args, availability.ID, err)
	return mapError(err)
}

// Update overwrites every column of the availability identified by availability.ID.
func (r *AvailabilityWriteRepository) Update(ctx context.Context, availability *models.AvailabilityDB) error {
	const query = `
		UPDATE availabilities
		SET room_id = $2, date = $3, start_time = $4, end_time = $5, updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at
	`
	args := []any{availability.ID, availability.RoomID, availability.Date, availability.StartTime, availability.EndTime}

	err := executor(ctx, r.db).QueryRowxContext(ctx, query, args...).Scan(&availability.CreatedAt, &availability.UpdatedAt)
	logQuery(query, args, availability.UpdatedAt, err)
	return mapError(err)
}

// Delete removes the availability.
func (r *AvailabilityWriteRepository) Delete(ctx context.Context, id int64) error {
	return deleteCascade(ctx, r.db, id, nil, `DELETE FROM availabilities WHERE id = $1`)
}
