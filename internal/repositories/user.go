package repositories

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/room-booking/internal/models"
)

const userColumns = `id, username, password, email, name, last_name, is_active, created_at, updated_at`

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// GetByID returns the user with the given id or ErrNotFound.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &user, query, id)
	logQuery(query, []any{id}, user.ID, err)
	if err != nil {
		return nil, mapError(err)
	}
	return &user, nil
}

// GetByUsername returns the user with the given username or ErrNotFound.
func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE username = $1`

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &user, query, username)
	logQuery(query, []any{username}, user.ID, err)
	if err != nil {
		return nil, mapError(err)
	}
	return &user, nil
}

// List returns all users in storage order.
func (r *UserReadRepository) List(ctx context.Context) ([]models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users ORDER BY id`

	users := []models.UserDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &users, query)
	logQuery(query, nil, len(users), err)
	return users, mapError(err)
}

// ListActive returns all users flagged active, in storage order.
func (r *UserReadRepository) ListActive(ctx context.Context) ([]models.UserDB, error) {
	const query = `SELECT ` + userColumns + ` FROM users WHERE is_active = TRUE ORDER BY id`

	users := []models.UserDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &users, query)
	logQuery(query, nil, len(users), err)
	return users, mapError(err)
}

type UserWriteRepository struct {
	db *sqlx.DB
}

func NewUserWriteRepository(db *sqlx.DB) *UserWriteRepository {
	return &UserWriteRepository{db: db}
}

// Create inserts the user and fills in its id and timestamps.
// The password field must already hold the hash.
func (r *UserWriteRepository) Create(ctx context.Context, user *models.UserDB) error {
	const query = `
		INSERT INTO users (username, password, email, name, last_name, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	args := []any{user.Username, user.Password, user.Email, user.Name, user.LastName, user.IsActive}

	err := executor(ctx, r.db).QueryRowxContext(ctx, query, args...).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	logQuery(query, []any{user.Username, user.Email}, user.ID, err)
	return mapError(err)
}

// Update overwrites every column of the user identified by user.ID.
func (r *UserWriteRepository) Update(ctx context.Context, user *models.UserDB) error {
	const query = `
		UPDATE users
		SET username = $2, password = $3, email = $4, name = $5, last_name = $6, is_active = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at
	`
	args := []any{user.ID, user.Username, user.Password, user.Email, user.Name, user.LastName, user.IsActive}

	err := executor(ctx, r.db).QueryRowxContext(ctx, query, args...).Scan(&user.CreatedAt, &user.UpdatedAt)
	logQuery(query, []any{user.ID, user.Username, user.Email}, user.UpdatedAt, err)
	return mapError(err)
}

// Delete removes the user together with their reservations and payments.
func (r *UserWriteRepository) Delete(ctx context.Context, id int64) error {
	return withinTx(ctx, r.db, func(ctx context.Context) error {
		return deleteCascade(ctx, r.db, id, []string{
			`DELETE FROM payments WHERE user_id = $1 OR reservation_id IN (SELECT id FROM reservations WHERE user_id = $1)`,
			`DELETE FROM reservations WHERE user_id = $1`,
		}, `DELETE FROM users WHERE id = $1`)
	})
}

// deleteCascade runs the dependent deletes in order, then the parent delete,
// which must affect exactly one row.
func deleteCascade(ctx context.Context, db *sqlx.DB, id int64, dependents []string, parent string) error {
	exec := executor(ctx, db)

	for _, query := range dependents {
		res, err := exec.ExecContext(ctx, query, id)
		logQuery(query, []any{id}, rowsAffected(res), err)
		if err != nil {
			return mapError(err)
		}
	}

	res, err := exec.ExecContext(ctx, parent, id)
	affected := rowsAffected(res)
	logQuery(parent, []any{id}, affected, err)
	if err != nil {
		return mapError(err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func rowsAffected(res sql.Result) int64 {
	if res == nil {
		return 0
	}
	n, _ := res.RowsAffected()
	return n
}
