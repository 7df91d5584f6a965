package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/wanderplan/travel-planner-api/internal/app/itineraries"
	"github.com/wanderplan/travel-planner-api/internal/domain"
)

type itineraryRequest struct {
	Destination   string  `json:"destination" validate:"required"`
	FullItinerary string  `json:"itinerary" validate:"required"`
	StartDate     *string `json:"startDate,omitempty"`
	EndDate       *string `json:"endDate,omitempty"`
	NumberOfDays  *int    `json:"numberOfDays,omitempty" validate:"omitempty,min=1"`
	BudgetRange   *string `json:"budgetRange,omitempty"`
	TravelStyle   *string `json:"travelStyle,omitempty"`
}

type itineraryResponse struct {
	ID            domain.ItineraryID `json:"id"`
	UserID        domain.UserID      `json:"userId"`
	Destination   string             `json:"destination"`
	FullItinerary string             `json:"itinerary"`
	StartDate     *string            `json:"startDate,omitempty"`
	EndDate       *string            `json:"endDate,omitempty"`
	NumberOfDays  *int               `json:"numberOfDays,omitempty"`
	BudgetRange   *string            `json:"budgetRange,omitempty"`
	TravelStyle   *string            `json:"travelStyle,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
}

// callerOwns authorizes the caller against the given owner id, writing the
// error response itself on failure.
func (s *Server) callerOwns(w http.ResponseWriter, r *http.Request, ownerID domain.UserID) bool {
	caller, _ := IdentityFromContext(r.Context())
	if err := s.guard.Authorize(r.Context(), caller, ownerID); err != nil {
		writeServiceError(w, r, err)
		return false
	}
	return true
}

// userIDParam extracts the required userId query parameter, writing the error
// response itself when it is missing.
func userIDParam(w http.ResponseWriter, r *http.Request) (domain.UserID, bool) {
	raw := r.URL.Query().Get("userId")
	if raw == "" {
		writeError(w, r, http.StatusBadRequest, "BAD_REQUEST", "missing userId query parameter", nil)
		return "", false
	}
	return domain.UserID(raw), true
}

func (s *Server) handleSaveItinerary(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}
	if !s.callerOwns(w, r, userID) {
		return
	}

	var req itineraryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "BAD_REQUEST", "malformed request body", nil)
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "invalid itinerary request", validationDetails(err))
		return
	}

	saved, err := s.itineraries.Save(r.Context(), userID, itineraries.SaveInput{
		Destination:   req.Destination,
		FullItinerary: req.FullItinerary,
		StartDate:     req.StartDate,
		EndDate:       req.EndDate,
		NumberOfDays:  req.NumberOfDays,
		BudgetRange:   req.BudgetRange,
		TravelStyle:   req.TravelStyle,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toItineraryResponse(saved))
}

func (s *Server) handleListItineraries(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}
	if !s.callerOwns(w, r, userID) {
		return
	}

	list, err := s.itineraries.ListByUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toItineraryResponses(list))
}

func (s *Server) handleSearchItineraries(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDParam(w, r)
	if !ok {
		return
	}
	if !s.callerOwns(w, r, userID) {
		return
	}

	list, err := s.itineraries.Search(r.Context(), userID, r.URL.Query().Get("query"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toItineraryResponses(list))
}

func (s *Server) handleGetItinerary(w http.ResponseWriter, r *http.Request) {
	id := domain.ItineraryID(chi.URLParam(r, "id"))

	it, err := s.itineraries.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	// Ownership comes from the stored record, never from the request.
	if !s.callerOwns(w, r, it.UserID) {
		return
	}
	writeJSON(w, http.StatusOK, toItineraryResponse(it))
}

func (s *Server) handleDeleteItinerary(w http.ResponseWriter, r *http.Request) {
	id := domain.ItineraryID(chi.URLParam(r, "id"))

	it, err := s.itineraries.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	if !s.callerOwns(w, r, it.UserID) {
		return
	}
	if err := s.itineraries.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func toItineraryResponse(it domain.Itinerary) itineraryResponse {
	return itineraryResponse{
		ID:            it.ID,
		UserID:        it.UserID,
		Destination:   it.Destination,
		FullItinerary: it.FullItinerary,
		StartDate:     it.StartDate,
		EndDate:       it.EndDate,
		NumberOfDays:  it.NumberOfDays,
		BudgetRange:   it.BudgetRange,
		TravelStyle:   it.TravelStyle,
		CreatedAt:     it.CreatedAt,
	}
}

func toItineraryResponses(list []domain.Itinerary) []itineraryResponse {
	out := make([]itineraryResponse, 0, len(list))
	for _, it := range list {
		out = append(out, toItineraryResponse(it))
	}
	return out
}
