package itineraries

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/wanderplan/travel-planner-api/internal/domain"
	"github.com/wanderplan/travel-planner-api/internal/platform/textproc"
	clockport "github.com/wanderplan/travel-planner-api/internal/ports/out/clock"
	"github.com/wanderplan/travel-planner-api/internal/ports/out/itineraryrepo"
)

type Service struct {
	repo itineraryrepo.Repository
	clk  clockport.Clock

	newItineraryID func() domain.ItineraryID
}

func NewService(repo itineraryrepo.Repository, clk clockport.Clock) *Service {
	return &Service{
		repo: repo,
		clk:  clk,
		newItineraryID: func() domain.ItineraryID {
			return domain.ItineraryID(uuid.NewString())
		},
	}
}

// SetNewItineraryIDForTest overrides itinerary ID generation for deterministic
// tests. It should not be used in production code.
func (s *Service) SetNewItineraryIDForTest(fn func() domain.ItineraryID) {
	if fn != nil {
		s.newItineraryID = fn
	}
}

func (s *Service) Save(ctx context.Context, userID domain.UserID, in SaveInput) (domain.Itinerary, error) {
	destination := strings.TrimSpace(in.Destination)
	if destination == "" {
		return domain.Itinerary{}, &Error{Status: 422, Code: "VALIDATION_ERROR", Message: "invalid itinerary", Details: map[string]any{"destination": "must be non-empty"}}
	}
	if strings.TrimSpace(in.FullItinerary) == "" {
		return domain.Itinerary{}, &Error{Status: 422, Code: "VALIDATION_ERROR", Message: "invalid itinerary", Details: map[string]any{"itinerary": "must be non-empty"}}
	}

	now := s.clk.Now()
	rec := itineraryrepo.Itinerary{
		ID:            s.newItineraryID(),
		UserID:        userID,
		Destination:   destination,
		FullItinerary: in.FullItinerary,
		StartDate:     cloneStringPtr(in.StartDate),
		EndDate:       cloneStringPtr(in.EndDate),
		NumberOfDays:  cloneIntPtr(in.NumberOfDays),
		BudgetRange:   cloneStringPtr(in.BudgetRange),
		TravelStyle:   cloneStringPtr(in.TravelStyle),
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.repo.Create(ctx, rec); err != nil {
		return domain.Itinerary{}, err
	}
	return toDomain(rec), nil
}

func (s *Service) ListByUser(ctx context.Context, userID domain.UserID) ([]domain.Itinerary, error) {
	recs, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Itinerary, 0, len(recs))
	for _, rec := range recs {
		out = append(out, toDomain(rec))
	}
	return out, nil
}

func (s *Service) GetByID(ctx context.Context, id domain.ItineraryID) (domain.Itinerary, error) {
	rec, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, itineraryrepo.ErrNotFound) {
			return domain.Itinerary{}, &Error{Status: 404, Code: "ITINERARY_NOT_FOUND", Message: "itinerary not found"}
		}
		return domain.Itinerary{}, err
	}
	return toDomain(rec), nil
}

// Search returns the user's itineraries whose destination or body matches the
// query after both sides are stemmed. A blank query matches everything.
func (s *Service) Search(ctx context.Context, userID domain.UserID, query string) ([]domain.Itinerary, error) {
	all, err := s.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	q := textproc.Process(query)
	if q == "" {
		return all, nil
	}
	out := make([]domain.Itinerary, 0, len(all))
	for _, it := range all {
		if strings.Contains(textproc.Process(it.Destination), q) ||
			strings.Contains(textproc.Process(it.FullItinerary), q) {
			out = append(out, it)
		}
	}
	return out, nil
}

func (s *Service) Delete(ctx context.Context, id domain.ItineraryID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, itineraryrepo.ErrNotFound) {
			return &Error{Status: 404, Code: "ITINERARY_NOT_FOUND", Message: "itinerary not found"}
		}
		return err
	}
	return nil
}

func toDomain(rec itineraryrepo.Itinerary) domain.Itinerary {
	return domain.Itinerary{
		ID:            rec.ID,
		UserID:        rec.UserID,
		Destination:   rec.Destination,
		FullItinerary: rec.FullItinerary,
		StartDate:     cloneStringPtr(rec.StartDate),
		EndDate:       cloneStringPtr(rec.EndDate),
		NumberOfDays:  cloneIntPtr(rec.NumberOfDays),
		BudgetRange:   cloneStringPtr(rec.BudgetRange),
		TravelStyle:   cloneStringPtr(rec.TravelStyle),
		CreatedAt:     rec.CreatedAt,
		UpdatedAt:     rec.UpdatedAt,
	}
}

func cloneStringPtr(p *string) *string {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneIntPtr(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
