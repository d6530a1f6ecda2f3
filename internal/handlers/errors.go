package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/room-booking/internal/logger"
	"github.com/sbilibin2017/room-booking/internal/repositories"
	"github.com/sbilibin2017/room-booking/internal/services"
	"github.com/sbilibin2017/room-booking/internal/validators"
)

// ErrorResponse is the body of every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: record not found
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

func writeErrorMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeError maps a service error to its HTTP status.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		validationErr *validators.ValidationError
		retrievalErr  *services.RetrievalError
	)

	switch {
	case errors.As(err, &validationErr):
		status := http.StatusBadRequest
		if errors.Is(err, validators.ErrConflict) {
			status = http.StatusConflict
		}
		writeErrorMessage(w, status, validationErr.Reason)
	case errors.As(err, &retrievalErr):
		writeErrorMessage(w, http.StatusBadRequest, retrievalErr.Error())
	case errors.Is(err, repositories.ErrNotFound):
		writeErrorMessage(w, http.StatusNotFound, "record not found")
	case errors.Is(err, repositories.ErrDuplicate):
		writeErrorMessage(w, http.StatusConflict, "record already exists")
	case errors.Is(err, repositories.ErrInvalidReference):
		writeErrorMessage(w, http.StatusBadRequest, "referenced record does not exist")
	case errors.Is(err, services.ErrInvalidCredentials):
		writeErrorMessage(w, http.StatusUnauthorized, "invalid username or password")
	case errors.Is(err, services.ErrInactiveUser):
		writeErrorMessage(w, http.StatusForbidden, "user is inactive")
	default:
		logger.FromContext(r.Context()).Errorw("internal server error", "method", r.Method, "uri", r.RequestURI, "err", err)
		writeErrorMessage(w, http.StatusInternalServerError, "internal server error")
	}
}

// pathID parses the named chi URL parameter as a positive id.
func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
