package data

import "errors"

// Shared sentinel errors for data-layer repositories.
var (
	// ErrStudentNotFound is returned when no profile exists for a key.
	ErrStudentNotFound = errors.New("student profile not found")
	// ErrStudentExists is returned when a profile already exists for a key.
	// Profiles are written exactly once, at registration.
	ErrStudentExists = errors.New("student profile already exists")
)
