package complaint

import "errors"

var (
	// ErrComplaintNotFound indicates the complaint doesn't exist.
	ErrComplaintNotFound = errors.New("complaint not found")
	// ErrResidentNotFound indicates the referenced resident doesn't exist.
	ErrResidentNotFound = errors.New("resident not found")
	// ErrInvalidInput indicates invalid input for complaint operations.
	ErrInvalidInput = errors.New("invalid complaint input")
)
