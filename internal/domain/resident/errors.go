package resident

import "errors"

var (
	// ErrResidentNotFound indicates the resident doesn't exist.
	ErrResidentNotFound = errors.New("resident not found")
	// ErrAlreadyExists indicates a resident with that id is already stored.
	ErrAlreadyExists = errors.New("resident already exists")
	// ErrInvalidInput indicates invalid resident input.
	ErrInvalidInput = errors.New("invalid resident input")
)
