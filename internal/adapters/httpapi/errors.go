package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/oapi-codegen/nullable"

	"github.com/wanderplan/travel-planner-api/internal/app/authz"
	"github.com/wanderplan/travel-planner-api/internal/app/itineraries"
	"github.com/wanderplan/travel-planner-api/internal/app/reviews"
	"github.com/wanderplan/travel-planner-api/internal/app/users"
)

type errorBody struct {
	Code      string                            `json:"code"`
	Message   string                            `json:"message"`
	Details   nullable.Nullable[map[string]any] `json:"details,omitempty"`
	RequestID nullable.Nullable[string]         `json:"requestId,omitempty"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}

func writeError(w http.ResponseWriter, r *http.Request, status int, code string, message string, details map[string]any) {
	var er errorResponse
	er.Error.Code = code
	er.Error.Message = message
	if details != nil {
		er.Error.Details = nullable.NewNullableWithValue(details)
	}
	if rid := middleware.GetReqID(r.Context()); rid != "" {
		er.Error.RequestID = nullable.NewNullableWithValue(rid)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(er)
}

// writeServiceError maps application-layer errors onto the wire error shape.
// Unknown errors become an opaque 500.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var userErr *users.Error
	if errors.As(err, &userErr) {
		writeError(w, r, userErr.Status, userErr.Code, userErr.Message, userErr.Details)
		return
	}
	var itErr *itineraries.Error
	if errors.As(err, &itErr) {
		writeError(w, r, itErr.Status, itErr.Code, itErr.Message, itErr.Details)
		return
	}
	var rvErr *reviews.Error
	if errors.As(err, &rvErr) {
		writeError(w, r, rvErr.Status, rvErr.Code, rvErr.Message, rvErr.Details)
		return
	}
	switch {
	case errors.Is(err, authz.ErrForbidden):
		writeError(w, r, http.StatusForbidden, "FORBIDDEN", "caller does not own this resource", nil)
	case errors.Is(err, authz.ErrOwnerNotFound):
		writeError(w, r, http.StatusNotFound, "USER_NOT_FOUND", "user not found", nil)
	default:
		writeError(w, r, http.StatusInternalServerError, "INTERNAL", "internal error", nil)
	}
}
