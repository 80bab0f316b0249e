package models_test

import (
	"testing"

	"pethome/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestParsePetFilter(t *testing.T) {
	filter := models.ParsePetFilter(map[string]string{
		"type":     "dog",
		"breed":    "lab",
		"size":     "large",
		"location": "austin",
		"age":      "1-3",
		"search":   "friendly",
	})

	assert.Equal(t, "dog", filter.Type)
	assert.Equal(t, "lab", filter.Breed)
	assert.Equal(t, "large", filter.Size)
	assert.Equal(t, "austin", filter.Location)
	assert.Equal(t, "friendly", filter.Search)
	if assert.NotNil(t, filter.Age) {
		assert.Equal(t, 1, filter.Age.Min)
		assert.Equal(t, 3, filter.Age.Max)
	}
}

func TestParsePetFilter_EmptyParams(t *testing.T) {
	filter := models.ParsePetFilter(map[string]string{})

	assert.Equal(t, models.PetFilter{}, filter)
	assert.Nil(t, filter.Age)
}

func TestParsePetFilter_AgeRangeLeniency(t *testing.T) {
	// Anything that does not split into exactly two integers is dropped,
	// not rejected.
	cases := []struct {
		name string
		age  string
		want *models.AgeRange
	}{
		{"valid range", "1-3", &models.AgeRange{Min: 1, Max: 3}},
		{"zero to max", "0-30", &models.AgeRange{Min: 0, Max: 30}},
		{"not a range", "abc", nil},
		{"single number", "5", nil},
		{"non-numeric part", "1-x", nil},
		{"too many parts", "1-2-3", nil},
		{"empty", "", nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			filter := models.ParsePetFilter(map[string]string{"age": tc.age})
			assert.Equal(t, tc.want, filter.Age)
		})
	}
}

func TestParseLostPetFilter(t *testing.T) {
	filter := models.ParseLostPetFilter(map[string]string{
		"status":   "found",
		"type":     "cat",
		"location": "brooklyn",
		"search":   "tabby",
	})

	assert.Equal(t, "found", filter.Status)
	assert.Equal(t, "cat", filter.Type)
	assert.Equal(t, "brooklyn", filter.Location)
	assert.Equal(t, "tabby", filter.Search)

	assert.Equal(t, models.LostPetFilter{}, models.ParseLostPetFilter(map[string]string{}))
}
