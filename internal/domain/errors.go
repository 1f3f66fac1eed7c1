package domain

import "errors"

var (
	// ErrCourseNotFound covers both a well-formed id with no matching row
	// and a malformed id, which the API treats as no-match rather than a
	// format error.
	ErrCourseNotFound = errors.New("course not found")

	// ErrValidation is reserved for stricter input checking; pagination
	// input is currently clamped instead of rejected.
	ErrValidation = errors.New("invalid input")
)
