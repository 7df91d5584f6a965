package itineraries

type SaveInput struct {
	Destination   string
	FullItinerary string

	StartDate *string
	EndDate   *string

	NumberOfDays *int
	BudgetRange  *string
	TravelStyle  *string
}
