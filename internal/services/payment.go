package services

import (
	"context"
	"time"

	"github.com/sbilibin2017/room-booking/internal/logger"
	"github.com/sbilibin2017/room-booking/internal/models"
	"github.com/sbilibin2017/room-booking/internal/validators"
)

//go:generate mockgen -source=payment.go -destination=payment_mock_test.go -package=services

// PaymentReader defines read-only operations for payments.
type PaymentReader interface {
	GetByID(ctx context.Context, id int64) (*models.PaymentDB, error)
	List(ctx context.Context) ([]models.PaymentDB, error)
}

// PaymentWriter defines write operations for payments.
type PaymentWriter interface {
	Create(ctx context.Context, payment *models.PaymentDB) error
	Update(ctx context.Context, payment *models.PaymentDB) error
	Delete(ctx context.Context, id int64) error
}

// PaymentService records payments for reservations.
type PaymentService struct {
	reader      PaymentReader
	writer      PaymentWriter
	tx          TxManager
	kafkaWriter KafkaWriter
	now         func() time.Time
}

// NewPaymentService creates a new PaymentService. A nil clock means time.Now.
func NewPaymentService(
	reader PaymentReader,
	writer PaymentWriter,
	tx TxManager,
	kafkaWriter KafkaWriter,
	now func() time.Time,
) *PaymentService {
	if now == nil {
		now = time.Now
	}
	return &PaymentService{
		reader:      reader,
		writer:      writer,
		tx:          tx,
		kafkaWriter: kafkaWriter,
		now:         now,
	}
}

// Create validates and stores a payment. A missing payment date defaults to now.
// The payment.created event goes out after the transaction commits.
func (s *PaymentService) Create(ctx context.Context, payment *models.PaymentDB) error {
	if payment.PaymentDate.IsZero() {
		payment.PaymentDate = s.now()
	}
	if err := validators.ValidatePayment(*payment); err != nil {
		return err
	}

	if err := s.writer.Create(ctx, payment); err != nil {
		logger.Log.Errorw("failed to save payment",
			"user_id", payment.UserID,
			"reservation_id", payment.ReservationID,
			"amount", payment.Amount,
			"error", err,
		)
		return err
	}

	event := newEvent(models.EventPaymentCreated, payment.ID, payment.UserID, 0, payment)
	s.tx.AfterCommit(ctx, func(ctx context.Context) {
		publishEvent(ctx, s.kafkaWriter, event)
	})
	return nil
}

// Get returns a payment by id.
func (s *PaymentService) Get(ctx context.Context, id int64) (*models.PaymentDB, error) {
	return s.reader.GetByID(ctx, id)
}

// List returns all payments.
func (s *PaymentService) List(ctx context.Context) ([]models.PaymentDB, error) {
	return s.reader.List(ctx)
}

// Update validates and overwrites a payment. A missing payment date keeps the stored one.
func (s *PaymentService) Update(ctx context.Context, payment *models.PaymentDB) error {
	if payment.PaymentDate.IsZero() {
		existing, err := s.reader.GetByID(ctx, payment.ID)
		if err != nil {
			return err
		}
		payment.PaymentDate = existing.PaymentDate
	}
	if err := validators.ValidatePayment(*payment); err != nil {
		return err
	}

	if err := s.writer.Update(ctx, payment); err != nil {
		logger.Log.Errorw("failed to update payment", "id", payment.ID, "error", err)
		return err
	}
	return nil
}

// Delete removes a payment.
func (s *PaymentService) Delete(ctx context.Context, id int64) error {
	if err := s.writer.Delete(ctx, id); err != nil {
		logger.Log.Errorw("failed to delete payment", "id", id, "error", err)
		return err
	}
	return nil
}
