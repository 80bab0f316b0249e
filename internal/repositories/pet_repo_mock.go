package repositories

import (
	"sort"
	"strings"
	"sync"
	"time"

	"pethome/internal/models"

	"github.com/google/uuid"
)

// MockPetRepository is an in-memory implementation of PetRepository. It
// applies the same predicate semantics as the GORM implementation so that
// service and handler tests can run without a database.
type MockPetRepository struct {
	pets map[string]models.Pet
	seq  map[string]int // insertion order, tiebreak for equal timestamps
	next int
	mu   sync.RWMutex
}

// NewMockPetRepository creates a new instance of MockPetRepository.
func NewMockPetRepository() *MockPetRepository {
	return &MockPetRepository{
		pets: make(map[string]models.Pet),
		seq:  make(map[string]int),
	}
}

// List returns available pets matching the filter, newest first.
func (r *MockPetRepository) List(filter models.PetFilter) ([]models.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Pet, 0)
	for _, pet := range r.pets {
		if pet.Status != models.PetStatusAvailable {
			continue
		}
		if !petMatches(pet, filter) {
			continue
		}
		out = append(out, pet)
	}
	r.sortNewestFirst(out)
	return out, nil
}

// GetByID returns a pet by its ID.
func (r *MockPetRepository) GetByID(id string) (*models.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pet, ok := r.pets[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &pet, nil
}

// Create adds a new pet listing.
func (r *MockPetRepository) Create(pet *models.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if pet.ID == "" {
		pet.ID = uuid.New().String()
	}
	now := time.Now()
	if pet.CreatedAt.IsZero() {
		pet.CreatedAt = now
	}
	pet.UpdatedAt = now
	r.pets[pet.ID] = *pet
	r.seq[pet.ID] = r.next
	r.next++
	return nil
}

// ListByOwner returns all pets of one owner regardless of status.
func (r *MockPetRepository) ListByOwner(ownerID string) ([]models.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Pet, 0)
	for _, pet := range r.pets {
		if pet.OwnerID == ownerID {
			out = append(out, pet)
		}
	}
	r.sortNewestFirst(out)
	return out, nil
}

// AddInterest appends one interest record, rejecting duplicates per user.
func (r *MockPetRepository) AddInterest(interest *models.PetInterest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	pet, ok := r.pets[interest.PetID]
	if !ok {
		return ErrNotFound
	}
	for _, existing := range pet.InterestedUsers {
		if existing.UserID == interest.UserID {
			return ErrDuplicate
		}
	}
	if interest.CreatedAt.IsZero() {
		interest.CreatedAt = time.Now()
	}
	pet.InterestedUsers = append(pet.InterestedUsers, *interest)
	r.pets[interest.PetID] = pet
	return nil
}

func (r *MockPetRepository) sortNewestFirst(pets []models.Pet) {
	sort.SliceStable(pets, func(i, j int) bool {
		if pets[i].CreatedAt.Equal(pets[j].CreatedAt) {
			return r.seq[pets[i].ID] > r.seq[pets[j].ID]
		}
		return pets[i].CreatedAt.After(pets[j].CreatedAt)
	})
}

func petMatches(pet models.Pet, filter models.PetFilter) bool {
	if filter.Type != "" && pet.Type != filter.Type {
		return false
	}
	if filter.Breed != "" && !containsFold(pet.Breed, filter.Breed) {
		return false
	}
	if filter.Size != "" && pet.Size != filter.Size {
		return false
	}
	if filter.Location != "" && !containsFold(pet.Location, filter.Location) {
		return false
	}
	if filter.Age != nil && (pet.Age < filter.Age.Min || pet.Age > filter.Age.Max) {
		return false
	}
	if filter.Search != "" {
		if !containsFold(pet.Name, filter.Search) &&
			!containsFold(pet.Breed, filter.Search) &&
			!containsFold(pet.Type, filter.Search) {
			return false
		}
	}
	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
