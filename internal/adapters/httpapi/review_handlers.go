package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/wanderplan/travel-planner-api/internal/app/reviews"
	"github.com/wanderplan/travel-planner-api/internal/domain"
)

type reviewRequest struct {
	Rating      *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
	Title       *string `json:"title,omitempty"`
	Comment     *string `json:"comment" validate:"required"`
	Destination *string `json:"destination,omitempty"`
}

type reviewResponse struct {
	ID           domain.ReviewID `json:"id"`
	ReviewerName string          `json:"reviewerName"`
	Rating       *int            `json:"rating,omitempty"`
	Title        *string         `json:"title,omitempty"`
	Comment      *string         `json:"comment,omitempty"`
	Destination  *string         `json:"destination,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
}

func (s *Server) handleListReviews(w http.ResponseWriter, r *http.Request) {
	list, err := s.reviews.ListAll(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	out := make([]reviewResponse, 0, len(list))
	for _, rv := range list {
		out = append(out, toReviewResponse(rv))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleSubmitReview(w http.ResponseWriter, r *http.Request) {
	caller, ok := IdentityFromContext(r.Context())
	if !ok {
		writeError(w, r, http.StatusUnauthorized, "UNAUTHORIZED", "missing identity", nil)
		return
	}

	var req reviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "BAD_REQUEST", "malformed request body", nil)
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, r, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "invalid review request", validationDetails(err))
		return
	}

	rv, err := s.reviews.Submit(r.Context(), caller, reviews.SubmitInput{
		Rating:      req.Rating,
		Title:       req.Title,
		Comment:     req.Comment,
		Destination: req.Destination,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toReviewResponse(rv))
}

func toReviewResponse(rv domain.Review) reviewResponse {
	return reviewResponse{
		ID:           rv.ID,
		ReviewerName: rv.ReviewerName,
		Rating:       rv.Rating,
		Title:        rv.Title,
		Comment:      rv.Comment,
		Destination:  rv.Destination,
		CreatedAt:    rv.CreatedAt,
	}
}
