package userrepo

import (
	"context"
	"time"

	"github.com/wanderplan/travel-planner-api/internal/domain"
)

// User is the persistence shape used by the user repository.
// It is an internal record, not an HTTP DTO.
type User struct {
	ID       domain.UserID
	Username string
	Email    string

	PasswordHash string

	FirstName   string
	LastName    string
	PhoneNumber *string
	Role        string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Repository provides access to persisted users.
type Repository interface {
	Create(ctx context.Context, u User) error

	GetByID(ctx context.Context, id domain.UserID) (User, error)
	GetByUsername(ctx context.Context, username string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)

	ExistsByUsername(ctx context.Context, username string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
