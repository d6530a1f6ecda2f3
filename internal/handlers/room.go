package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/room-booking/internal/models"
)

//go:generate mockgen -source=room.go -destination=room_mock_test.go -package=handlers

// RoomManager defines the room operations used by the handlers.
type RoomManager interface {
	Create(ctx context.Context, room *models.RoomDB) error
	Get(ctx context.Context, id int64) (*models.RoomDB, error)
	List(ctx context.Context) ([]models.RoomDB, error)
	Update(ctx context.Context, room *models.RoomDB) error
	Delete(ctx context.Context, id int64) error
}

// RoomRequest represents the JSON body for creating or updating a room
// swagger:model RoomRequest
type RoomRequest struct {
	// Alphanumeric room number
	// required: true
	// default: A101
	NumberRoom string `json:"number_room" validate:"required,max=10"`

	// Description
	// required: true
	// default: Meeting room with projector
	Description string `json:"description" validate:"required,max=100"`

	// Location
	// required: true
	// default: 1F
	Location string `json:"location" validate:"required,max=10"`

	// Capacity, greater than zero
	// default: 4
	Capacity int `json:"capacity"`
}

func (req RoomRequest) toModel(id int64) *models.RoomDB {
	return &models.RoomDB{
		ID:          id,
		NumberRoom:  req.NumberRoom,
		Description: req.Description,
		Location:    req.Location,
		Capacity:    req.Capacity,
	}
}

// NewCreateRoomHandler returns an HTTP handler that creates a room.
// @Summary Create room
// @Tags rooms
// @Accept json
// @Produce json
// @Param room body handlers.RoomRequest true "Room"
// @Success 201 {object} models.RoomDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 409 {object} handlers.ErrorResponse "Room number already taken"
// @Router /rooms [post]
func NewCreateRoomHandler(svc RoomManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RoomRequest
		if err := decodeRequest(r, &req); err != nil {
			writeErrorMessage(w, http.StatusBadRequest, err.Error())
			return
		}

		room := req.toModel(0)
		if err := svc.Create(r.Context(), room); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusCreated, room)
	}
}

// NewListRoomsHandler returns an HTTP handler that lists rooms.
// @Summary List rooms
// @Tags rooms
// @Produce json
// @Success 200 {array} models.RoomDB
// @Router /rooms [get]
func NewListRoomsHandler(svc RoomManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rooms, err := svc.List(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, rooms)
	}
}

// NewGetRoomHandler returns an HTTP handler that retrieves a room.
// @Summary Get room
// @Tags rooms
// @Produce json
// @Param id path int true "Room ID"
// @Success 200 {object} models.RoomDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 404 {object} handlers.ErrorResponse "Room not found"
// @Router /rooms/{id} [get]
func NewGetRoomHandler(svc RoomManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			writeErrorMessage(w, http.StatusBadRequest, "invalid id")
			return
		}

		room, err := svc.Get(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, room)
	}
}

// NewUpdateRoomHandler returns an HTTP handler that overwrites a room.
// @Summary Update room
// @Tags rooms
// @Accept json
// @Produce json
// @Param id path int true "Room ID"
// @Param room body handlers.RoomRequest true "Room"
// @Success 200 {object} models.RoomDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "Room not found"
// @Router /rooms/{id} [put]
func NewUpdateRoomHandler(svc RoomManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			writeErrorMessage(w, http.StatusBadRequest, "invalid id")
			return
		}

		var req RoomRequest
		if err := decodeRequest(r, &req); err != nil {
			writeErrorMessage(w, http.StatusBadRequest, err.Error())
			return
		}

		room := req.toModel(id)
		if err := svc.Update(r.Context(), room); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, room)
	}
}

// NewDeleteRoomHandler returns an HTTP handler that deletes a room and everything booked in it.
// @Summary Delete room
// @Tags rooms
// @Param id path int true "Room ID"
// @Success 204
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 404 {object} handlers.ErrorResponse "Room not found"
// @Router /rooms/{id} [delete]
func NewDeleteRoomHandler(svc RoomManager) http.HandlerFunc {
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
