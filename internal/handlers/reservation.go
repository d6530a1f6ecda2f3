package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sbilibin2017/room-booking/internal/models"
)

//go:generate mockgen -source=reservation.go -destination=reservation_mock_test.go -package=handlers

// ReservationManager defines the reservation operations used by the handlers.
type ReservationManager interface {
	Create(ctx context.Context, reservation *models.ReservationDB) error
	Get(ctx context.Context, id int64) (*models.ReservationDB, error)
	List(ctx context.Context) ([]models.ReservationDB, error)
	Update(ctx context.Context, reservation *models.ReservationDB) error
	Delete(ctx context.Context, id int64) error
}

// UserReservationsLister answers the reservations-by-user query.
type UserReservationsLister interface {
	ReservationsByUser(ctx context.Context, userID int64) ([]models.ReservationDB, error)
}

// ReservationRequest represents the JSON body for creating or updating a reservation
// swagger:model ReservationRequest
type ReservationRequest struct {
	// Booking user, the authenticated user when omitted
	UserID int64 `json:"user_id" validate:"omitempty,gt=0"`

	// Booked room
	// required: true
	RoomID int64 `json:"room_id" validate:"required"`

	// Start of the booking, RFC 3339
	// required: true
	// default: 2026-10-20T09:00:00Z
	StartTime time.Time `json:"start_time" validate:"required"`

	// End of the booking (exclusive), RFC 3339
	// required: true
	// default: 2026-10-20T10:00:00Z
	EndTime time.Time `json:"end_time" validate:"required"`

	// Status code: P (pending, default), C (confirmed) or X (cancelled)
	// default: P
	Status string `json:"status" validate:"omitempty,oneof=P C X"`
}

func (req ReservationRequest) toModel(id int64) *models.ReservationDB {
	return &models.ReservationDB{
		ID:        id,
		UserID:    req.UserID,
		RoomID:    req.RoomID,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Status:    req.Status,
	}
}

// NewCreateReservationHandler returns an HTTP handler that books a room.
// @Summary Create reservation
// @Description Books a room unless the interval overlaps another reservation of the same room
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param reservation body handlers.ReservationRequest true "Reservation"
// @Success 201 {object} models.ReservationDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 401 "Unauthorized"
// @Failure 409 {object} handlers.ErrorResponse "Room already reserved"
// @Router /reservations [post]
func NewCreateReservationHandler(svc ReservationManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ReservationRequest
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

		reservation := req.toModel(0)
		if err := svc.Create(r.Context(), reservation); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, reservation)
	}
}

// NewListReservationsHandler returns an HTTP handler that lists reservations.
// @Summary List reservations
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.ReservationDB
// @Failure 401 "Unauthorized"
// @Router /reservations [get]
func NewListReservationsHandler(svc ReservationManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		reservations, err := svc.List(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, reservations)
	}
}

// NewGetReservationHandler returns an HTTP handler that retrieves a reservation.
// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Success 200 {object} models.ReservationDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 404 {object} handlers.ErrorResponse "Reservation not found"
// @Router /reservations/{id} [get]
func NewGetReservationHandler(svc ReservationManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			writeErrorMessage(w, http.StatusBadRequest, "invalid id")
			return
		}

		reservation, err := svc.Get(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, reservation)
	}
}

// NewUpdateReservationHandler returns an HTTP handler that overwrites a reservation.
// @Summary Update reservation
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Param reservation body handlers.ReservationRequest true "Reservation"
// @Success 200 {object} models.ReservationDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Reservation not found"
// @Failure 409 {object} handlers.ErrorResponse "Room already reserved"
// @Router /reservations/{id} [put]
func NewUpdateReservationHandler(svc ReservationManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			writeErrorMessage(w, http.StatusBadRequest, "invalid id")
			return
		}

		var req ReservationRequest
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

		reservation := req.toModel(id)
		if err := svc.Update(r.Context(), reservation); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, reservation)
	}
}

// NewDeleteReservationHandler returns an HTTP handler that deletes a reservation and its payments.
// @Summary Delete reservation
// @Tags reservations
// @Security BearerAuth
// @Param id path int true "Reservation ID"
// @Success 204
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 404 {object} handlers.ErrorResponse "Reservation not found"
// @Router /reservations/{id} [delete]
func NewDeleteReservationHandler(svc ReservationManager) http.HandlerFunc {
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

// NewReservationsByUserHandler returns an HTTP handler listing the reservations of a user.
// @Summary Reservations by user
// @Description Returns the reservations of the user in storage order; an unknown user yields an empty list
// @Tags queries
// @Produce json
// @Param user_id path int true "User ID"
// @Success 200 {array} models.ReservationDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid user id or query failed"
// @Router /reservations-by-user/{user_id} [get]
func NewReservationsByUserHandler(svc UserReservationsLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := pathID(r, "user_id")
		if !ok {
			writeErrorMessage(w, http.StatusBadRequest, "invalid user id")
			return
		}

		reservations, err := svc.ReservationsByUser(r.Context(), userID)
		if err != nil {
			writeError(w, r, err)
			return
		}
		if reservations == nil {
			reservations = []models.ReservationDB{}
		}
		writeJSON(w, http.StatusOK, reservations)
	}
}
