package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/room-booking/internal/models"
)

//go:generate mockgen -source=availability.go -destination=availability_mock_test.go -package=handlers

// AvailabilityManager defines the availability operations used by the handlers.
type AvailabilityManager interface {
	Create(ctx context.Context, availability *models.AvailabilityDB) error
	Get(ctx context.Context, id int64) (*models.AvailabilityDB, error)
	List(ctx context.Context) ([]models.AvailabilityDB, error)
	Update(ctx context.Context, availability *models.AvailabilityDB) error
	Delete(ctx context.Context, id int64) error
}

// AvailabilityRequest represents the JSON body for creating or updating an availability window
// swagger:model AvailabilityRequest
type AvailabilityRequest struct {
	// Room
	// required: true
	RoomID int64 `json:"room_id" validate:"required"`

	// Day, YYYY-MM-DD, not in the past
	// required: true
	// default: 2026-10-20
	Date models.Date `json:"date" validate:"required" swaggertype:"string"`

	// Window start, HH:MM[:SS], not before 08:00
	// default: 09:00:00
	StartTime models.TimeOfDay `json:"start_time" swaggertype:"string"`

	// Window end, HH:MM[:SS], not after 20:00
	// default: 18:00:00
	EndTime models.TimeOfDay `json:"end_time" swaggertype:"string"`
}

func (req AvailabilityRequest) toModel(id int64) *models.AvailabilityDB {
	return &models.AvailabilityDB{
		ID:        id,
		RoomID:    req.RoomID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}
}

// NewCreateAvailabilityHandler returns an HTTP handler that opens an availability window.
// @Summary Create availability
// @Tags availabilities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param availability body handlers.AvailabilityRequest true "Availability"
// @Success 201 {object} models.AvailabilityDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Router /availabilities [post]
func NewCreateAvailabilityHandler(svc AvailabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AvailabilityRequest
		if err := decodeRequest(r, &req); err != nil {
			writeErrorMessage(w, http.StatusBadRequest, err.Error())
			return
		}

		availability := req.toModel(0)
		if err := svc.Create(r.Context(), availability); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, availability)
	}
}

// NewListAvailabilitiesHandler returns an HTTP handler that lists availability windows.
// @Summary List availabilities
// @Tags availabilities
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.AvailabilityDB
// @Router /availabilities [get]
func NewListAvailabilitiesHandler(svc AvailabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		availabilities, err := svc.List(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, availabilities)
	}
}

// NewGetAvailabilityHandler returns an HTTP handler that retrieves an availability window.
// @Summary Get availability
// @Tags availabilities
// @Produce json
// @Security BearerAuth
// @Param id path int true "Availability ID"
// @Success 200 {object} models.AvailabilityDB
// @Failure 404 {object} handlers.ErrorResponse "Availability not found"
// @Router /availabilities/{id} [get]
func NewGetAvailabilityHandler(svc AvailabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			writeErrorMessage(w, http.StatusBadRequest, "invalid id")
			return
		}

		availability, err := svc.Get(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, availability)
	}
}

// NewUpdateAvailabilityHandler returns an HTTP handler that overwrites an availability window.
// @Summary Update availability
// @Tags availabilities
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Availability ID"
// @Param availability body handlers.AvailabilityRequest true "Availability"
// @Success 200 {object} models.AvailabilityDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Availability not found"
// @Router /availabilities/{id} [put]
func NewUpdateAvailabilityHandler(svc AvailabilityManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			writeErrorMessage(w, http.StatusBadRequest, "invalid id")
			return
		}

		var req AvailabilityRequest
		if err := decodeRequest(r, &req); err != nil {
			writeErrorMessage(w, http.StatusBadRequest, err.Error())
			return
		}

		availability := req.toModel(id)
		if err := svc.Update(r.Context(), availability); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, availability)
	}
}

// NewDeleteAvailabilityHandler returns an HTTP handler that deletes an availability window.
// @Summary Delete availability
// @Tags availabilities
// @Security BearerAuth
// @Param id path int true "Availability ID"
// @Success 204
// @Failure 404 {object} handlers.ErrorResponse "Availability not found"
// @Router /availabilities/{id} [delete]
func NewDeleteAvailabilityHandler(svc AvailabilityManager) http.HandlerFunc {
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
