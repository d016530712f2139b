package domain

import "errors"

// Failures the services hand back to the orchestration layer. Callers match
// them with errors.Is; wrapping is allowed.
var (
	ErrNotFound           = errors.New("not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidRange       = errors.New("end date must not be before start date")
	ErrConflict           = errors.New("conflict")
	ErrInvalidRating      = errors.New("rating must be between 0 and 10")
	ErrInvalidStatus      = errors.New("invalid reservation status")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid email or password")
)
