package repositories

import (
	"errors"
	"fmt"

	"pethome/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMLostPetRepository is a GORM implementation of LostPetRepository.
type GORMLostPetRepository struct {
	db *gorm.DB
}

// NewGORMLostPetRepository creates a new instance of GORMLostPetRepository.
func NewGORMLostPetRepository(db *gorm.DB) *GORMLostPetRepository {
	return &GORMLostPetRepository{
		db: db,
	}
}

// List retrieves lost pet reports matching the filter, newest first.
func (r *GORMLostPetRepository) List(filter models.LostPetFilter) ([]models.LostPet, error) {
	q := r.db.Model(&models.LostPet{})

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.Location != "" {
		q = q.Where("LOWER(location) LIKE ?", containsPattern(filter.Location))
	}
	if filter.Search != "" {
		p := containsPattern(filter.Search)
		q = q.Where("LOWER(name) LIKE ? OR LOWER(breed) LIKE ? OR LOWER(location) LIKE ?", p, p, p)
	}

	var reports []models.LostPet
	err := q.Preload("Reporter", reporterProjection).
		Order("created_at DESC").
		Find(&reports).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list lost pets: %w", err)
	}
	return reports, nil
}

// GetByID retrieves a single lost pet report by its ID.
func (r *GORMLostPetRepository) GetByID(id string) (*models.LostPet, error) {
	var report models.LostPet
	err := r.db.Preload("Reporter", reporterProjection).
		First(&report, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get lost pet by ID %s: %w", id, err)
	}
	return &report, nil
}

// Create inserts a new lost pet report.
func (r *GORMLostPetRepository) Create(lostPet *models.LostPet) error {
	if lostPet.ID == "" {
		lostPet.ID = uuid.New().String()
	}
	if err := r.db.Create(lostPet).Error; err != nil {
		return fmt.Errorf("failed to create lost pet report: %w", err)
	}
	return nil
}

// ListByReporter retrieves all reports filed by one reporter, newest first.
func (r *GORMLostPetRepository) ListByReporter(reporterID string) ([]models.LostPet, error) {
	var reports []models.LostPet
	err := r.db.Where("reporter_id = ?", reporterID).
		Order("created_at DESC").
		Find(&reports).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list lost pets for reporter %s: %w", reporterID, err)
	}
	return reports, nil
}

// reporterProjection limits preloaded reporters to id and name; a report's
// public contact details live in its own contactInfo block instead.
func reporterProjection(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name")
}
