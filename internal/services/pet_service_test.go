package services_test

import (
	"testing"
	"time"

	"pethome/internal/models"
	"pethome/internal/repositories"
	"pethome/internal/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockEventPublisher is a mock implementation of services.EventPublisher.
type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) Publish(routingKey string, body []byte) error {
	args := m.Called(routingKey, body)
	return args.Error(0)
}

func validPetInput() models.Pet {
	return models.Pet{
		Name:        "Buddy",
		Type:        "dog",
		Breed:       "Labrador",
		Age:         3,
		Gender:      "male",
		Size:        "large",
		Location:    "Austin, TX",
		Description: "Friendly and house-trained.",
	}
}

func TestPetService_CreatePet(t *testing.T) {
	repo := repositories.NewMockPetRepository()
	mockMQ := new(MockEventPublisher)
	mockMQ.On("Publish", "pet.created", mock.Anything).Return(nil).Once()
	service := services.NewPetService(repo, mockMQ)

	pet := validPetInput()
	created, err := service.CreatePet(&pet, "owner-1", 2)

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "owner-1", created.OwnerID)
	assert.Equal(t, models.PetStatusAvailable, created.Status)
	// One placeholder URL per uploaded image part.
	assert.Len(t, created.Images, 2)
	assert.Contains(t, created.Images[0], "pexels.com")
	mockMQ.AssertExpectations(t)
}

func TestPetService_CreatePet_IgnoresClientSuppliedOwner(t *testing.T) {
	repo := repositories.NewMockPetRepository()
	service := services.NewPetService(repo, nil)

	pet := validPetInput()
	pet.OwnerID = "someone-else"
	created, err := service.CreatePet(&pet, "owner-1", 0)

	require.NoError(t, err)
	assert.Equal(t, "owner-1", created.OwnerID)
}

func TestPetService_CreatePet_ValidationFailure(t *testing.T) {
	repo := repositories.NewMockPetRepository()
	mockMQ := new(MockEventPublisher)
	service := services.NewPetService(repo, mockMQ)

	cases := []struct {
		name   string
		mutate func(*models.Pet)
	}{
		{"age above max", func(p *models.Pet) { p.Age = 31 }},
		{"missing name", func(p *models.Pet) { p.Name = "" }},
		{"unknown type", func(p *models.Pet) { p.Type = "dragon" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pet := validPetInput()
			tc.mutate(&pet)

			_, err := service.CreatePet(&pet, "owner-1", 0)

			var validationErr *services.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.NotEmpty(t, validationErr.Fields)

			// Nothing persisted, nothing published.
			pets, listErr := repo.List(models.PetFilter{})
			require.NoError(t, listErr)
			assert.Empty(t, pets)
			mockMQ.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
		})
	}
}

func TestPetService_ExpressInterest(t *testing.T) {
	repo := repositories.NewMockPetRepository()
	mockMQ := new(MockEventPublisher)
	mockMQ.On("Publish", "pet.created", mock.Anything).Return(nil)
	mockMQ.On("Publish", "pet.interest", mock.Anything).Return(nil)
	service := services.NewPetService(repo, mockMQ)

	pet := validPetInput()
	created, err := service.CreatePet(&pet, "owner-1", 0)
	require.NoError(t, err)

	// First registration succeeds and appends one record.
	require.NoError(t, service.ExpressInterest(created.ID, "user-1"))
	stored, err := service.GetPetByID(created.ID)
	require.NoError(t, err)
	require.Len(t, stored.InterestedUsers, 1)
	assert.Equal(t, "user-1", stored.InterestedUsers[0].UserID)

	// Second registration by the same user is rejected and the sequence
	// is unchanged.
	err = service.ExpressInterest(created.ID, "user-1")
	assert.ErrorIs(t, err, services.ErrAlreadyInterested)
	stored, err = service.GetPetByID(created.ID)
	require.NoError(t, err)
	assert.Len(t, stored.InterestedUsers, 1)

	// A different user can still register.
	require.NoError(t, service.ExpressInterest(created.ID, "user-2"))
	stored, err = service.GetPetByID(created.ID)
	require.NoError(t, err)
	assert.Len(t, stored.InterestedUsers, 2)

	// Interest never changes the pet's status.
	assert.Equal(t, models.PetStatusAvailable, stored.Status)
}

func TestPetService_ExpressInterest_UnknownPet(t *testing.T) {
	repo := repositories.NewMockPetRepository()
	service := services.NewPetService(repo, nil)

	err := service.ExpressInterest("no-such-pet", "user-1")
	assert.ErrorIs(t, err, services.ErrPetNotFound)
}

func TestPetService_ListPets_Filters(t *testing.T) {
	repo := repositories.NewMockPetRepository()
	service := services.NewPetService(repo, nil)

	seed := []models.Pet{
		{Name: "Buddy", Type: "dog", Breed: "Labrador", Age: 2, Gender: "male", Size: "large", Location: "Austin", Description: "d", OwnerID: "o1", Status: models.PetStatusAvailable},
		{Name: "Misty", Type: "cat", Breed: "Siamese", Age: 5, Gender: "female", Size: "small", Location: "Boston", Description: "d", OwnerID: "o1", Status: models.PetStatusAvailable},
		{Name: "Rex", Type: "dog", Breed: "Beagle", Age: 8, Gender: "male", Size: "medium", Location: "Austin", Description: "d", OwnerID: "o2", Status: models.PetStatusAdopted},
	}
	for i := range seed {
		require.NoError(t, repo.Create(&seed[i]))
	}

	// Adopted pets never show up in public listings.
	pets, err := service.ListPets(models.PetFilter{})
	require.NoError(t, err)
	assert.Len(t, pets, 2)

	// Exact type match.
	pets, err = service.ListPets(models.PetFilter{Type: "dog"})
	require.NoError(t, err)
	require.Len(t, pets, 1)
	assert.Equal(t, "Buddy", pets[0].Name)

	// Inclusive age range.
	pets, err = service.ListPets(models.PetFilter{Age: &models.AgeRange{Min: 2, Max: 5}})
	require.NoError(t, err)
	assert.Len(t, pets, 2)

	// Search matches breed substrings too, case-insensitively.
	pets, err = service.ListPets(models.PetFilter{Search: "siam"})
	require.NoError(t, err)
	require.Len(t, pets, 1)
	assert.Equal(t, "Misty", pets[0].Name)
}

func TestPetService_ListPetsByOwner(t *testing.T) {
	repo := repositories.NewMockPetRepository()
	service := services.NewPetService(repo, nil)

	older := validPetInput()
	older.OwnerID = "owner-1"
	older.Status = models.PetStatusAdopted
	older.CreatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(&older))

	newer := validPetInput()
	newer.Name = "Misty"
	newer.OwnerID = "owner-1"
	newer.Status = models.PetStatusAvailable
	newer.CreatedAt = time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Create(&newer))

	other := validPetInput()
	other.Name = "Rex"
	other.OwnerID = "owner-2"
	require.NoError(t, repo.Create(&other))

	// The owner view includes non-available pets, newest first.
	pets, err := service.ListPetsByOwner("owner-1")
	require.NoError(t, err)
	require.Len(t, pets, 2)
	assert.Equal(t, "Misty", pets[0].Name)
	assert.Equal(t, "Buddy", pets[1].Name)
}
