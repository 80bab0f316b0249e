package services

import (
	"errors"

	"pethome/internal/models"
)

// Service-level errors. Handlers translate these to HTTP statuses:
// not-found errors to 404, ErrAlreadyInterested and *ValidationError to 400,
// ErrEmailTaken to 409, everything else to 500 with a generic message.
var (
	ErrPetNotFound     = errors.New("pet not found")
	ErrLostPetNotFound = errors.New("lost pet not found")
	ErrUserNotFound    = errors.New("user not found")

	ErrAlreadyInterested = errors.New("interest already expressed")
	ErrEmailTaken        = errors.New("email already registered")
)

// ValidationError carries the structured field errors produced by an
// entity's Validate method.
type ValidationError struct {
	Fields []models.FieldError
}

func (e *ValidationError) Error() string {
	return "validation failed"
}
