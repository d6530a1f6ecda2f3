package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sbilibin2017/room-booking/internal/models"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=payment.go -destination=payment_mock_test.go -package=handlers

// PaymentManager defines the payment operations used by the handlers.
type PaymentManager interface {
	Create(ctx context.Context, payment *models.PaymentDB) error
	Get(ctx context.Context, id int64) (*models.PaymentDB, error)
	List(ctx context.Context) ([]models.PaymentDB, error)
	Update(ctx context.Context, payment *models.PaymentDB) error
	Delete(ctx context.Context, id int64) error
}

// PaymentRequest represents the JSON body for creating or updating a payment
// swagger:model PaymentRequest
type PaymentRequest struct {
	// Paying user, the authenticated user when omitted
	UserID int64 `json:"user_id" validate:"omitempty,gt=0"`

	// Paid reservation
	// required: true
	ReservationID int64 `json:"reservation_id" validate:"required"`

	// Amount, greater than zero, two decimal places
	// required: true
	// default: 10.50
	Amount decimal.Decimal `json:"amount" swaggertype:"string"`

	// Payment time, now when omitted
	PaymentDate *time.Time `json:"payment_date"`

	// Payment method: CASH, CC, DC or PP
	// required: true
	// default: CC
	PaymentMethod string `json:"payment_method" validate:"required"`

	// Optional external transaction reference
	TransactionID *string `json:"transaction_id" validate:"omitempty,max=100"`
}

func (req PaymentRequest) toModel(id int64) *models.PaymentDB {
	payment := &models.PaymentDB{
		ID:            id,
		UserID:        req.UserID,
		ReservationID: req.ReservationID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		TransactionID: req.TransactionID,
	}
	if req.PaymentDate != nil {
		payment.PaymentDate = *req.PaymentDate
	}
	return payment
}

// NewCreatePaymentHandler returns an HTTP handler that records a payment.
// @Summary Create payment
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param payment body handlers.PaymentRequest true "Payment"
// @Success 201 {object} models.PaymentDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Router /payments [post]
func NewCreatePaymentHandler(svc PaymentManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req PaymentRequest
		if err := decodeRequest(r, &req); err != nil {
			writeErrorMessage(w, http.StatusBadRequest, err.Error())
			return
		}

		userID, err := userOrCaller(r, req.UserID)
		if err != nil {
			writeErrorMessage(w, http.StatusBadRequest, err.Error())
			return
		}
		req.UserID = userID

		payment := req.toModel(0)
		if err := svc.Create(r.Context(), payment); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, payment)
	}
}

// NewListPaymentsHandler returns an HTTP handler that lists payments.
// @Summary List payments
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.PaymentDB
// @Router /payments [get]
func NewListPaymentsHandler(svc PaymentManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payments, err := svc.List(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, payments)
	}
}

// NewGetPaymentHandler returns an HTTP handler that retrieves a payment.
// @Summary Get payment
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param id path int true "Payment ID"
// @Success 200 {object} models.PaymentDB
// @Failure 404 {object} handlers.ErrorResponse "Payment not found"
// @Router /payments/{id} [get]
func NewGetPaymentHandler(svc PaymentManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			writeErrorMessage(w, http.StatusBadRequest, "invalid id")
			return
		}

		payment, err := svc.Get(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, payment)
	}
}

// NewUpdatePaymentHandler returns an HTTP handler that overwrites a payment.
// @Summary Update payment
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Payment ID"
// @Param payment body handlers.PaymentRequest true "Payment"
// @Success 200 {object} models.PaymentDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Payment not found"
// @Router /payments/{id} [put]
func NewUpdatePaymentHandler(svc PaymentManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			writeErrorMessage(w, http.StatusBadRequest, "invalid id")
			return
		}

		var req PaymentRequest
		if err := decodeRequest(r, &req); err != nil {
			writeErrorMessage(w, http.StatusBadRequest, err.Error())
			return
		}

		userID, err := userOrCaller(r, req.UserID)
		if err != nil {
			writeErrorMessage(w, http.StatusBadRequest, err.Error())
			return
		}
		req.UserID = userID

		payment := req.toModel(id)
		if err := svc.Update(r.Context(), payment); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, payment)
	}
}

// NewDeletePaymentHandler returns an HTTP handler that deletes a payment.
// @Summary Delete payment
// @Tags payments
// @Security BearerAuth
// @Param id path int true "Payment ID"
// @Success 204
// @Failure 404 {object} handlers.ErrorResponse "Payment not found"
// @Router /payments/{id} [delete]
func NewDeletePaymentHandler(svc PaymentManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			writeErrorMessage(w, http.StatusBadRequest, "invalid id")
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			writeError(w, r, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
