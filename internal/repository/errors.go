package repository

import "errors"

var (
	// ErrNotFound is returned when a requested entity doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when an insert collides with an existing row
	ErrConflict = errors.New("conflict: entity already exists")

	// ErrForeignKeyViolation is returned when a foreign key constraint fails
	ErrForeignKeyViolation = errors.New("foreign key violation")

	// ErrCorruptData is returned when stored data no longer satisfies the
	// domain's own invariants. This is a store-integrity fault, never a
	// caller-correctable one.
	ErrCorruptData = errors.New("corrupt stored data")
)
