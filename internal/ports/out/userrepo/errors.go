package userrepo

import "errors"

var (
	// ErrNotFound indicates the requested user does not exist.
	ErrNotFound = errors.New("user not found")

	// ErrUsernameTaken indicates a user already exists with the provided username.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrEmailTaken indicates a user already exists with the provided email.
	ErrEmailTaken = errors.New("email already exists")

	// ErrAlreadyExists indicates a user already exists with the provided ID.
	ErrAlreadyExists = errors.New("user already exists")
)
