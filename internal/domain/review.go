package domain

import "time"

// Review is a destination review submitted by an authenticated user.
type Review struct {
	ID     ReviewID
	UserID UserID

	// ReviewerName is the reviewer's display name recorded at submission
	// time; it falls back to the username when no name is on file.
	ReviewerName string

	Rating      *int
	Title       *string
	Comment     *string
	Destination *string

	CreatedAt time.Time
	UpdatedAt time.Time
}
