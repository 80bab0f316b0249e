package repositories

import (
	"errors"
	"fmt"
	"strings"

	"pethome/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMPetRepository is a GORM implementation of PetRepository.
type GORMPetRepository struct {
	db *gorm.DB
}

// NewGORMPetRepository creates a new instance of GORMPetRepository.
func NewGORMPetRepository(db *gorm.DB) *GORMPetRepository {
	return &GORMPetRepository{
		db: db,
	}
}

// List retrieves available pets matching the filter, newest first.
func (r *GORMPetRepository) List(filter models.PetFilter) ([]models.Pet, error) {
	// Public listings only ever show available pets; an owner sees the
	// rest of their pets through ListByOwner.
	q := r.db.Where("status = ?", models.PetStatusAvailable)

	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.Breed != "" {
		q = q.Where("LOWER(breed) LIKE ?", containsPattern(filter.Breed))
	}
	if filter.Size != "" {
		q = q.Where("size = ?", filter.Size)
	}
	if filter.Location != "" {
		q = q.Where("LOWER(location) LIKE ?", containsPattern(filter.Location))
	}
	if filter.Age != nil {
		q = q.Where("age BETWEEN ? AND ?", filter.Age.Min, filter.Age.Max)
	}
	if filter.Search != "" {
		p := containsPattern(filter.Search)
		q = q.Where("LOWER(name) LIKE ? OR LOWER(breed) LIKE ? OR LOWER(type) LIKE ?", p, p, p)
	}

	var pets []models.Pet
	err := q.Preload("Owner", ownerProjection).
		Preload("InterestedUsers").
		Order("created_at DESC").
		Find(&pets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pets: %w", err)
	}
	return pets, nil
}

// GetByID retrieves a single pet by its ID.
func (r *GORMPetRepository) GetByID(id string) (*models.Pet, error) {
	var pet models.Pet
	err := r.db.Preload("Owner", ownerProjection).
		Preload("InterestedUsers").
		First(&pet, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get pet by ID %s: %w", id, err)
	}
	return &pet, nil
}

// Create inserts a new pet listing.
func (r *GORMPetRepository) Create(pet *models.Pet) error {
	if pet.ID == "" {
		pet.ID = uuid.New().String()
	}
	if err := r.db.Create(pet).Error; err != nil {
		return fmt.Errorf("failed to create pet: %w", err)
	}
	return nil
}

// ListByOwner retrieves all pets of one owner, any status, newest first.
func (r *GORMPetRepository) ListByOwner(ownerID string) ([]models.Pet, error) {
	var pets []models.Pet
	err := r.db.Where("owner_id = ?", ownerID).
		Preload("InterestedUsers").
		Order("created_at DESC").
		Find(&pets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list pets for owner %s: %w", ownerID, err)
	}
	return pets, nil
}

// AddInterest inserts one interest record. The (pet_id, user_id) composite
// primary key turns a repeated registration into a duplicate-key error at
// the store, so there is no read-then-write window between two callers.
func (r *GORMPetRepository) AddInterest(interest *models.PetInterest) error {
	if err := r.db.Create(interest).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to add interest for pet %s: %w", interest.PetID, err)
	}
	return nil
}

// ownerProjection limits preloaded owners to the fields exposed to clients.
func ownerProjection(db *gorm.DB) *gorm.DB {
	return db.Select("id", "name", "email", "phone")
}

// containsPattern builds a case-insensitive LIKE pattern for substring
// matching; works the same on SQLite and PostgreSQL.
func containsPattern(s string) string {
	return "%" + strings.ToLower(s) + "%"
}
