package repositories

import (
	"errors"

	"pethome/internal/models"
)

// Sentinel errors shared by all repositories so callers can branch with
// errors.Is instead of matching message strings.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// PetRepository defines the interface for pet listing data access.
type PetRepository interface {
	// List returns available pets matching the filter, newest first,
	// with the owner projected to id/name/email/phone.
	List(filter models.PetFilter) ([]models.Pet, error)
	// GetByID returns one pet with the same owner projection as List,
	// or ErrNotFound.
	GetByID(id string) (*models.Pet, error)
	Create(pet *models.Pet) error
	// ListByOwner returns all of the owner's pets regardless of status,
	// newest first.
	ListByOwner(ownerID string) ([]models.Pet, error)
	// AddInterest appends one interest record atomically. A second record
	// for the same (pet, user) pair fails with ErrDuplicate.
	AddInterest(interest *models.PetInterest) error
}
