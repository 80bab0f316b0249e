package repositories

import (
	"sort"
	"sync"
	"time"

	"pethome/internal/models"

	"github.com/google/uuid"
)

// MockLostPetRepository is an in-memory implementation of LostPetRepository.
type MockLostPetRepository struct {
	reports map[string]models.LostPet
	seq     map[string]int
	next    int
	mu      sync.RWMutex
}

// NewMockLostPetRepository creates a new instance of MockLostPetRepository.
func NewMockLostPetRepository() *MockLostPetRepository {
	return &MockLostPetRepository{
		reports: make(map[string]models.LostPet),
		seq:     make(map[string]int),
	}
}

// List returns reports matching the filter, newest first.
func (r *MockLostPetRepository) List(filter models.LostPetFilter) ([]models.LostPet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.LostPet, 0)
	for _, report := range r.reports {
		if !lostPetMatches(report, filter) {
			continue
		}
		out = append(out, report)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return r.seq[out[i].ID] > r.seq[out[j].ID]
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// GetByID returns a report by its ID.
func (r *MockLostPetRepository) GetByID(id string) (*models.LostPet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	report, ok := r.reports[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &report, nil
}

// Create adds a new lost pet report.
func (r *MockLostPetRepository) Create(lostPet *models.LostPet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if lostPet.ID == "" {
		lostPet.ID = uuid.New().String()
	}
	now := time.Now()
	if lostPet.CreatedAt.IsZero() {
		lostPet.CreatedAt = now
	}
	lostPet.UpdatedAt = now
	r.reports[lostPet.ID] = *lostPet
	r.seq[lostPet.ID] = r.next
	r.next++
	return nil
}

// ListByReporter returns all reports filed by one reporter, newest first.
func (r *MockLostPetRepository) ListByReporter(reporterID string) ([]models.LostPet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.LostPet, 0)
	for _, report := range r.reports {
		if report.ReporterID == reporterID {
			out = append(out, report)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return r.seq[out[i].ID] > r.seq[out[j].ID]
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func lostPetMatches(report models.LostPet, filter models.LostPetFilter) bool {
	if filter.Status != "" && report.Status != filter.Status {
		return false
	}
	if filter.Type != "" && report.Type != filter.Type {
		return false
	}
	if filter.Location != "" && !containsFold(report.Location, filter.Location) {
		return false
	}
	if filter.Search != "" {
		if !containsFold(report.Name, filter.Search) &&
			!containsFold(report.Breed, filter.Search) &&
			!containsFold(report.Location, filter.Search) {
			return false
		}
	}
	return true
}
