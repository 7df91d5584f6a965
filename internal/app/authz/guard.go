package authz

import (
	"context"
	"errors"

	"github.com/wanderplan/travel-planner-api/internal/domain"
	"github.com/wanderplan/travel-planner-api/internal/ports/out/userrepo"
)

var (
	// ErrForbidden indicates the caller is not the owner of the target resource.
	ErrForbidden = errors.New("caller does not own the resource")

	// ErrOwnerNotFound indicates the resource's declared owner record does not
	// exist. This is an error in its own right, never treated as allowed.
	ErrOwnerNotFound = errors.New("resource owner not found")
)

// Guard enforces ownership: a caller may only act on resources whose owner's
// username exactly matches the caller's authenticated identity.
type Guard struct {
	users userrepo.Repository
}

func NewGuard(users userrepo.Repository) *Guard {
	return &Guard{users: users}
}

// Authorize loads the declared owner and compares usernames with exact,
// case-sensitive equality. An empty caller identity is always Forbidden.
// This check runs before every itinerary read/mutation/delete and before a
// payment is attached to a user id, even when the data lookup itself would
// succeed, so one user can never act on another's resources.
func (g *Guard) Authorize(ctx context.Context, caller domain.Identity, ownerUserID domain.UserID) error {
	owner, err := g.users.GetByID(ctx, ownerUserID)
	if err != nil {
		if errors.Is(err, userrepo.ErrNotFound) {
			return ErrOwnerNotFound
		}
		return err
	}
	if caller == "" || string(caller) != owner.Username {
		return ErrForbidden
	}
	return nil
}
