package domain

import "time"

// Itinerary is a saved travel plan. Every itinerary is owned by exactly one
// user, fixed at creation time.
type Itinerary struct {
	ID     ItineraryID
	UserID UserID

	Destination   string
	FullItinerary string

	// Start/end dates are free-form strings supplied by the itinerary
	// generator; they carry no date semantics here.
	StartDate *string
	EndDate   *string

	NumberOfDays *int
	BudgetRange  *string
	TravelStyle  *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
