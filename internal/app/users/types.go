package users

import "github.com/wanderplan/travel-planner-api/internal/domain"

type SignUpInput struct {
	Username    string
	Email       string
	Password    string
	FirstName   string
	LastName    string
	PhoneNumber *string
}

// LoginInput identifies a user by username or email; at least one must be set.
type LoginInput struct {
	Username string
	Email    string
	Password string
}

// AuthResult is returned from signup and login: a freshly minted bearer token
// plus the profile fields safe to expose.
type AuthResult struct {
	Token     string
	TokenType string

	UserID    domain.UserID
	Username  string
	Email     string
	FirstName string
	LastName  string
	Role      string
}
