package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/room-booking/internal/models"
)

//go:generate mockgen -source=user.go -destination=user_mock_test.go -package=handlers

// UserManager defines the user operations used by the handlers.
type UserManager interface {
	Create(ctx context.Context, user *models.UserDB, password string) error
	Get(ctx context.Context, id int64) (*models.UserDB, error)
	List(ctx context.Context) ([]models.UserDB, error)
	Update(ctx context.Context, user *models.UserDB, password string) error
	Delete(ctx context.Context, id int64) error
}

// ActiveUsersLister answers the active users query.
type ActiveUsersLister interface {
	ActiveUsers(ctx context.Context) ([]models.UserDB, error)
}

// UserRequest represents the JSON body for creating or updating a user
// swagger:model UserRequest
type UserRequest struct {
	// Username, no spaces
	// required: true
	// default: john_doe
	Username string `json:"username" validate:"required,max=100"`

	// Raw password, at least 8 characters. May be omitted on update to keep the current one.
	// default: secret123
	Password string `json:"password" validate:"max=128"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email" validate:"required,email"`

	// First name
	Name string `json:"name" validate:"max=30"`

	// Last name
	LastName string `json:"last_name" validate:"max=150"`

	// Whether the user is active, true when omitted
	IsActive *bool `json:"is_active"`
}

func (req UserRequest) toModel(id int64) *models.UserDB {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}
	return &models.UserDB{
		ID:       id,
		Username: req.Username,
		Email:    req.Email,
		Name:     req.Name,
		LastName: req.LastName,
		IsActive: isActive,
	}
}

// NewCreateUserHandler returns an HTTP handler that registers a user.
// @Summary Create user
// @Description Validates the user, hashes the password and stores the user
// @Tags users
// @Accept json
// @Produce json
// @Param user body handlers.UserRequest true "User"
// @Success 201 {object} models.UserDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 409 {object} handlers.ErrorResponse "Username or email already taken"
// @Router /users [post]
func NewCreateUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req UserRequest
		if err := decodeRequest(r, &req); err != nil {
			writeErrorMessage(w, http.StatusBadRequest, err.Error())
			return
		}

		user := req.toModel(0)
		if err := svc.Create(r.Context(), user, req.Password); err != nil {
			writeError(w, r, err)
			return
		}

		writeJSON(w, http.StatusCreated, user)
	}
}

// NewListUsersHandler returns an HTTP handler that lists users.
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} models.UserDB
// @Router /users [get]
func NewListUsersHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.List(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, users)
	}
}

// NewGetUserHandler returns an HTTP handler that retrieves a user.
// @Summary Get user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.UserDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/{id} [get]
func NewGetUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			writeErrorMessage(w, http.StatusBadRequest, "invalid id")
			return
		}

		user, err := svc.Get(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}

// NewUpdateUserHandler returns an HTTP handler that overwrites a user.
// @Summary Update user
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param user body handlers.UserRequest true "User"
// @Success 200 {object} models.UserDB
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Failure 409 {object} handlers.ErrorResponse "Username or email already taken"
// @Router /users/{id} [put]
func NewUpdateUserHandler(svc UserManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := pathID(r, "id")
		if !ok {
			writeErrorMessage(w, http.StatusBadRequest, "invalid id")
			return
		}

		var req UserRequest
		if err := decodeRequest(r, &req); err != nil {
			writeErrorMessage(w, http.StatusBadRequest, err.Error())
			return
		}

		user := req.toModel(id)
		if err := svc.Update(r.Context(), user, req.Password); err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}

// NewDeleteUserHandler returns an HTTP handler that deletes a user with their reservations and payments.
// @Summary Delete user
// @Tags users
// @Param id path int true "User ID"
// @Success 204
// @Failure 400 {object} handlers.ErrorResponse "Invalid id"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/{id} [delete]
func NewDeleteUserHandler(svc UserManager) http.HandlerFunc {
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

// NewActiveUsersHandler returns an HTTP handler listing the active users.
// @Summary Active users
// @Description Returns every user flagged active, ordered by id
// @Tags queries
// @Produce json
// @Success 200 {array} models.UserDB
// @Failure 400 {object} handlers.ErrorResponse "Query failed"
// @Router /active-users [get]
func NewActiveUsersHandler(svc ActiveUsersLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.ActiveUsers(r.Context())
		if err != nil {
			writeError(w, r, err)
			return
		}
		if users == nil {
			users = []models.UserDB{}
		}
		writeJSON(w, http.StatusOK, users)
	}
}
