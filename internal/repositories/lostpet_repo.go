package repositories

import (
	"pethome/internal/models"
)

// LostPetRepository defines the interface for lost pet report data access.
type LostPetRepository interface {
	// List returns reports matching the filter, newest first, with the
	// reporter projected to id/name.
	List(filter models.LostPetFilter) ([]models.LostPet, error)
	// GetByID returns one report with the same reporter projection as
	// List, or ErrNotFound.
	GetByID(id string) (*models.LostPet, error)
	Create(lostPet *models.LostPet) error
	// ListByReporter returns all reports filed by the reporter, newest
	// first.
	ListByReporter(reporterID string) ([]models.LostPet, error)
}
