package reviewrepo

import (
	"context"
	"time"

	"github.com/wanderplan/travel-planner-api/internal/domain"
)

// Review is the persistence shape used by the review repository.
type Review struct {
	ID     domain.ReviewID
	UserID domain.UserID

	ReviewerName string

	Rating      *int
	Title       *string
	Comment     *string
	Destination *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Repository provides access to persisted reviews.
//
// Result ordering expectations:
// - ListAll returns reviews ordered by CreatedAt descending.
type Repository interface {
	Create(ctx context.Context, r Review) error
	ListAll(ctx context.Context) ([]Review, error)
}
