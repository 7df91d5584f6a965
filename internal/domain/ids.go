package domain

// Identity is the authenticated caller's username, derived from a verified
// bearer token. It is a transient per-request value with no lifecycle of its own.
type Identity string

// UserID is an internal identifier for a user record.
type UserID string

// ItineraryID is an internal identifier for an itinerary record.
type ItineraryID string

// ReviewID is an internal identifier for a review record.
type ReviewID string
