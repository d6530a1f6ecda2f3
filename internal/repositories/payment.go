package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/room-booking/internal/models"
)

const paymentColumns = `id, user_id, reservation_id, amount, payment_date, payment_method, transaction_id, created_at, updated_at`

type PaymentReadRepository struct {
	db *sqlx.DB
}

func NewPaymentReadRepository(db *sqlx.DB) *PaymentReadRepository {
	return &PaymentReadRepository{db: db}
}

// GetByID returns the payment with the given id or ErrNotFound.
func (r *PaymentReadRepository) GetByID(ctx context.Context, id int64) (*models.PaymentDB, error) {
	const query = `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`

	var payment models.PaymentDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db), &payment, query, id)
	logQuery(query, []any{id}, payment.ID, err)
	if err != nil {
		return nil, mapError(err)
	}
	return &payment, nil
}

// List returns all payments in storage order.
func (r *PaymentReadRepository) List(ctx context.Context) ([]models.PaymentDB, error) {
	const query = `SELECT ` + paymentColumns + ` FROM payments ORDER BY id`

	payments := []models.PaymentDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db), &payments, query)
	logQuery(query, nil, len(payments), err)
	return payments, mapError(err)
}

type PaymentWriteRepository struct {
	db *sqlx.DB
}

func NewPaymentWriteRepository(db *sqlx.DB) *PaymentWriteRepository {
	return &PaymentWriteRepository{db: db}
}

// Create inserts the payment and fills in its id and timestamps.
func (r *PaymentWriteRepository) Create(ctx context.Context, payment *models.PaymentDB) error {
	const query = `
		INSERT INTO payments (user_id, reservation_id, amount, payment_date, payment_method, transaction_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	args := []any{payment.UserID, payment.ReservationID, payment.Amount, payment.PaymentDate, payment.PaymentMethod, payment.TransactionID}

	err := executor(ctx, r.db).QueryRowxContext(ctx, query, args...).Scan(&payment.ID, &payment.CreatedAt, &payment.UpdatedAt)
	logQuery(query, args, payment.ID, err)
	return mapError(err)
}

// Update overwrites every column of the payment identified by payment.ID.
func (r *PaymentWriteRepository) Update(ctx context.Context, payment *models.PaymentDB) error {
	const query = `
		UPDATE payments
		SET user_id = $2, reservation_id = $3, amount = $4, payment_date = $5,
		    payment_method = $6, transaction_id = $7, updated_at = NOW()
		WHERE id = $1
		RETURNING created_at, updated_at
	`
	args := []any{payment.ID, payment.UserID, payment.ReservationID, payment.Amount, payment.PaymentDate, payment.PaymentMethod, payment.TransactionID}

	err := executor(ctx, r.db).QueryRowxContext(ctx, query, args...).Scan(&payment.CreatedAt, &payment.UpdatedAt)
	logQuery(query, args, payment.UpdatedAt, err)
	return mapError(err)
}

// Delete removes the payment.
func (r *PaymentWriteRepository) Delete(ctx context.Context, id int64) error {
	return deleteCascade(ctx, r.db, id, nil, `DELETE FROM payments WHERE id = $1`)
}
