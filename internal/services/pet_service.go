package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"pethome/internal/models"
	"pethome/internal/repositories"
)

// EventPublisher publishes domain events to the message broker. A nil
// publisher disables publishing without changing request behaviour.
type EventPublisher interface {
	Publish(routingKey string, body []byte) error
}

// PetService handles business logic for adoption listings.
type PetService struct {
	petRepo  repositories.PetRepository
	mqClient EventPublisher
}

// NewPetService creates a new PetService.
func NewPetService(petRepo repositories.PetRepository, mqClient EventPublisher) *PetService {
	return &PetService{
		petRepo:  petRepo,
		mqClient: mqClient,
	}
}

// ListPets retrieves available pets matching the filter.
func (s *PetService) ListPets(filter models.PetFilter) ([]models.Pet, error) {
	return s.petRepo.List(filter)
}

// GetPetByID retrieves a single pet listing.
func (s *PetService) GetPetByID(id string) (*models.Pet, error) {
	pet, err := s.petRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrPetNotFound
		}
		return nil, err
	}
	return pet, nil
}

// CreatePet validates and persists a new listing on behalf of ownerID. Any
// client-supplied owner is discarded. imageCount is the number of uploaded
// image parts; real asset storage is not wired up yet, so each part is
// replaced with a deterministic placeholder URL.
func (s *PetService) CreatePet(pet *models.Pet, ownerID string, imageCount int) (*models.Pet, error) {
	pet.OwnerID = ownerID
	pet.Owner = nil
	pet.InterestedUsers = nil
	pet.Images = placeholderImages(imageCount)
	if pet.Status == "" {
		pet.Status = models.PetStatusAvailable
	}

	if fieldErrs := pet.Validate(); len(fieldErrs) > 0 {
		return nil, &ValidationError{Fields: fieldErrs}
	}

	if err := s.petRepo.Create(pet); err != nil {
		return nil, fmt.Errorf("failed to create pet listing: %w", err)
	}

	s.publish("pet.created", map[string]interface{}{
		"petId":   pet.ID,
		"ownerId": pet.OwnerID,
		"type":    pet.Type,
		"name":    pet.Name,
	})

	// Re-read so the response carries the owner projection, same shape
	// as GetPetByID.
	created, err := s.petRepo.GetByID(pet.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load created pet %s: %w", pet.ID, err)
	}
	return created, nil
}

// ExpressInterest records the caller's adoption interest in a pet. The pet's
// status is left untouched; moving a pet to pending or adopted is a separate
// decision by the owner, not a side effect of interest volume.
func (s *PetService) ExpressInterest(petID, userID string) error {
	if _, err := s.petRepo.GetByID(petID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrPetNotFound
		}
		return err
	}

	interest := &models.PetInterest{
		PetID:     petID,
		UserID:    userID,
		CreatedAt: time.Now(),
	}
	if err := s.petRepo.AddInterest(interest); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return ErrAlreadyInterested
		}
		return fmt.Errorf("failed to record interest in pet %s: %w", petID, err)
	}

	s.publish("pet.interest", map[string]interface{}{
		"petId":  petID,
		"userId": userID,
	})

	return nil
}

// ListPetsByOwner retrieves all of the caller's own listings, any status.
func (s *PetService) ListPetsByOwner(ownerID string) ([]models.Pet, error) {
	return s.petRepo.ListByOwner(ownerID)
}

// publish marshals and sends one event. Publish failures are logged, never
// surfaced: the listing write already succeeded and must not be rolled back
// over a broker hiccup.
func (s *PetService) publish(routingKey string, payload map[string]interface{}) {
	if s.mqClient == nil {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Failed to marshal %s event: %v", routingKey, err)
		return
	}
	if err := s.mqClient.Publish(routingKey, body); err != nil {
		log.Printf("Warning: failed to publish %s event: %v", routingKey, err)
	}
}

// placeholderImages stands in for a real asset-storage integration: each
// uploaded part maps to a deterministic stock photo URL.
func placeholderImages(n int) []string {
	images := make([]string, 0, n)
	for i := 0; i < n; i++ {
		images = append(images, fmt.Sprintf(
			"https://images.pexels.com/photos/%d/pexels-photo-%d.jpeg", 1108099+i, 1108099+i))
	}
	return images
}
