package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"pethome/internal/models"
	"pethome/internal/repositories"
)

// LostPetService handles business logic for lost and found pet reports.
type LostPetService struct {
	lostPetRepo repositories.LostPetRepository
	mqClient    EventPublisher
}

// NewLostPetService creates a new LostPetService.
func NewLostPetService(lostPetRepo repositories.LostPetRepository, mqClient EventPublisher) *LostPetService {
	return &LostPetService{
		lostPetRepo: lostPetRepo,
		mqClient:    mqClient,
	}
}

// ListLostPets retrieves reports matching the filter.
func (s *LostPetService) ListLostPets(filter models.LostPetFilter) ([]models.LostPet, error) {
	return s.lostPetRepo.List(filter)
}

// GetLostPetByID retrieves a single report.
func (s *LostPetService) GetLostPetByID(id string) (*models.LostPet, error) {
	report, err := s.lostPetRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrLostPetNotFound
		}
		return nil, err
	}
	return report, nil
}

// CreateLostPet validates and persists a new report on behalf of
// reporterID, discarding any client-supplied reporter.
func (s *LostPetService) CreateLostPet(lostPet *models.LostPet, reporterID string, imageCount int) (*models.LostPet, error) {
	lostPet.ReporterID = reporterID
	lostPet.Reporter = nil
	lostPet.Resolved = false
	lostPet.Images = placeholderImages(imageCount)

	if fieldErrs := lostPet.Validate(); len(fieldErrs) > 0 {
		return nil, &ValidationError{Fields: fieldErrs}
	}

	if err := s.lostPetRepo.Create(lostPet); err != nil {
		return nil, fmt.Errorf("failed to create lost pet report: %w", err)
	}

	if s.mqClient != nil {
		body, err := json.Marshal(map[string]interface{}{
			"lostPetId":  lostPet.ID,
			"reporterId": lostPet.ReporterID,
			"status":     lostPet.Status,
			"location":   lostPet.Location,
		})
		if err != nil {
			log.Printf("Failed to marshal lostpet.created event: %v", err)
		} else if err := s.mqClient.Publish("lostpet.created", body); err != nil {
			log.Printf("Warning: failed to publish lostpet.created event: %v", err)
		}
	}

	created, err := s.lostPetRepo.GetByID(lostPet.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to load created lost pet %s: %w", lostPet.ID, err)
	}
	return created, nil
}

// ListLostPetsByReporter retrieves all of the caller's own reports.
func (s *LostPetService) ListLostPetsByReporter(reporterID string) ([]models.LostPet, error) {
	return s.lostPetRepo.ListByReporter(reporterID)
}
