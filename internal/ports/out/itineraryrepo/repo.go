package itineraryrepo

import (
	"context"
	"time"

	"github.com/wanderplan/travel-planner-api/internal/domain"
)

// Itinerary is the persistence shape used by the itinerary repository.
// It is not an HTTP DTO.
type Itinerary struct {
	ID domain.ItineraryID

	// UserID is the owning user, fixed at creation and immutable thereafter.
	UserID domain.UserID

	Destination   string
	FullItinerary string

	StartDate *string
	EndDate   *string

	NumberOfDays *int
	BudgetRange  *string
	TravelStyle  *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Repository provides access to persisted itineraries.
//
// Result ordering expectations:
// - ListByUser returns itineraries ordered by CreatedAt descending.
type Repository interface {
	Create(ctx context.Context, it Itinerary) error

	GetByID(ctx context.Context, id domain.ItineraryID) (Itinerary, error)

	ListByUser(ctx context.Context, userID domain.UserID) ([]Itinerary, error)

	Delete(ctx context.Context, id domain.ItineraryID) error
}
