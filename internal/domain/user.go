package domain

import "time"

// User is the domain representation of an account.
type User struct {
	ID       UserID
	Username string
	Email    string

	// PasswordHash is the bcrypt hash of the user's password. It must never
	// leave the service layer.
	PasswordHash string

	FirstName   string
	LastName    string
	PhoneNumber *string
	Role        string

	CreatedAt time.Time
	UpdatedAt time.Time
}
