package models_test

import (
	"testing"
	"time"

	"pethome/internal/models"

	"github.com/stretchr/testify/assert"
)

func validPet() models.Pet {
	return models.Pet{
		Name:        "Buddy",
		Type:        "dog",
		Breed:       "Labrador",
		Age:         3,
		Gender:      "male",
		Size:        "large",
		Location:    "Austin, TX",
		Description: "Friendly and house-trained.",
		OwnerID:     "owner-1",
		Status:      models.PetStatusAvailable,
	}
}

func validLostPet() models.LostPet {
	return models.LostPet{
		Name:        "Whiskers",
		Type:        "cat",
		Breed:       "Tabby",
		Color:       "orange",
		Size:        "small",
		Location:    "Brooklyn, NY",
		LastSeen:    time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Description: "Last seen near the park.",
		Status:      models.LostPetStatusLost,
		ContactInfo: models.ContactInfo{
			Name:  "Jane",
			Phone: "555-0100",
			Email: "j@x.com",
		},
		ReporterID: "reporter-1",
	}
}

func TestPetValidate_Valid(t *testing.T) {
	pet := validPet()
	assert.Empty(t, pet.Validate())
}

func TestPetValidate_Invalid(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.Pet)
		field  string
	}{
		{"missing name", func(p *models.Pet) { p.Name = "" }, "Name"},
		{"unknown type", func(p *models.Pet) { p.Type = "dragon" }, "Type"},
		{"missing breed", func(p *models.Pet) { p.Breed = "" }, "Breed"},
		{"age above max", func(p *models.Pet) { p.Age = 31 }, "Age"},
		{"negative age", func(p *models.Pet) { p.Age = -1 }, "Age"},
		{"unknown gender", func(p *models.Pet) { p.Gender = "unknown" }, "Gender"},
		{"unknown size", func(p *models.Pet) { p.Size = "gigantic" }, "Size"},
		{"missing description", func(p *models.Pet) { p.Description = "" }, "Description"},
		{"missing owner", func(p *models.Pet) { p.OwnerID = "" }, "OwnerID"},
		{"unknown status", func(p *models.Pet) { p.Status = "reserved" }, "Status"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pet := validPet()
			tc.mutate(&pet)
			fieldErrs := pet.Validate()
			assert.NotEmpty(t, fieldErrs)
			fields := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				fields = append(fields, fe.Field)
			}
			assert.Contains(t, fields, tc.field)
		})
	}
}

func TestPetValidate_AgeBoundsInclusive(t *testing.T) {
	pet := validPet()
	pet.Age = 0
	assert.Empty(t, pet.Validate())

	pet.Age = 30
	assert.Empty(t, pet.Validate())
}

func TestLostPetValidate_Valid(t *testing.T) {
	report := validLostPet()
	assert.Empty(t, report.Validate())

	report.Status = models.LostPetStatusFound
	assert.Empty(t, report.Validate())
}

func TestLostPetValidate_Invalid(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*models.LostPet)
		field  string
	}{
		{"missing name", func(lp *models.LostPet) { lp.Name = "" }, "Name"},
		{"missing color", func(lp *models.LostPet) { lp.Color = "" }, "Color"},
		{"missing last seen", func(lp *models.LostPet) { lp.LastSeen = time.Time{} }, "LastSeen"},
		{"unknown status", func(lp *models.LostPet) { lp.Status = "missing" }, "Status"},
		{"missing contact name", func(lp *models.LostPet) { lp.ContactInfo.Name = "" }, "Name"},
		{"bad contact email", func(lp *models.LostPet) { lp.ContactInfo.Email = "not-an-email" }, "Email"},
		{"missing reporter", func(lp *models.LostPet) { lp.ReporterID = "" }, "ReporterID"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			report := validLostPet()
			tc.mutate(&report)
			fieldErrs := report.Validate()
			assert.NotEmpty(t, fieldErrs)
			fields := make([]string, 0, len(fieldErrs))
			for _, fe := range fieldErrs {
				fields = append(fields, fe.Field)
			}
			assert.Contains(t, fields, tc.field)
		})
	}
}

func TestUserValidate(t *testing.T) {
	user := models.User{
		Name:     "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "555-0100",
		Location: "Austin, TX",
		Password: "password123",
	}
	assert.Empty(t, user.Validate())

	user.Email = "not-an-email"
	assert.NotEmpty(t, user.Validate())

	user = models.User{}
	fieldErrs := user.Validate()
	assert.NotEmpty(t, fieldErrs)
}
