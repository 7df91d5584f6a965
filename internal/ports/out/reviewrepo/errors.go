package reviewrepo

import "errors"

var (
	ErrAlreadyExists = errors.New("review already exists")
)
