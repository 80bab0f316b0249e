package handlers

import (
	"strconv"
	"time"

	"pethome/internal/models"
)

// Multipart form values arrive as strings; these helpers normalize them
// into domain models before validation. They operate on plain value maps so
// they can be tested without an HTTP request.

// PetFromForm builds a Pet from multipart form values. Unparseable numeric
// fields are reported as field errors rather than silently zeroed.
func PetFromForm(values map[string][]string) (models.Pet, []models.FieldError) {
	var fieldErrs []models.FieldError

	pet := models.Pet{
		Name:        formValue(values, "name"),
		Type:        formValue(values, "type"),
		Breed:       formValue(values, "breed"),
		Gender:      formValue(values, "gender"),
		Size:        formValue(values, "size"),
		Location:    formValue(values, "location"),
		Description: formValue(values, "description"),
		Status:      formValue(values, "status"),

		Vaccinated:   formBool(values, "vaccinated"),
		Neutered:     formBool(values, "neutered"),
		GoodWithKids: formBool(values, "goodWithKids"),
		GoodWithPets: formBool(values, "goodWithPets"),
	}

	rawAge := formValue(values, "age")
	if rawAge == "" {
		fieldErrs = append(fieldErrs, models.FieldError{Field: "Age", Message: "Field 'Age' is required"})
	} else if age, err := strconv.Atoi(rawAge); err != nil {
		fieldErrs = append(fieldErrs, models.FieldError{Field: "Age", Message: "Field 'Age' must be an integer"})
	} else {
		pet.Age = age
	}

	return pet, fieldErrs
}

// LostPetFromForm builds a LostPet from multipart form values. The contact
// block is submitted as bracketed flat keys (contactInfo[name] etc.) and
// reassembled here into the embedded object.
func LostPetFromForm(values map[string][]string) (models.LostPet, []models.FieldError) {
	var fieldErrs []models.FieldError

	lostPet := models.LostPet{
		Name:        formValue(values, "name"),
		Type:        formValue(values, "type"),
		Breed:       formValue(values, "breed"),
		Color:       formValue(values, "color"),
		Size:        formValue(values, "size"),
		Location:    formValue(values, "location"),
		Description: formValue(values, "description"),
		Status:      formValue(values, "status"),
		ContactInfo: models.ContactInfo{
			Name:  formValue(values, "contactInfo[name]"),
			Phone: formValue(values, "contactInfo[phone]"),
			Email: formValue(values, "contactInfo[email]"),
		},
	}

	rawLastSeen := formValue(values, "lastSeen")
	if rawLastSeen == "" {
		fieldErrs = append(fieldErrs, models.FieldError{Field: "LastSeen", Message: "Field 'LastSeen' is required"})
	} else if lastSeen, err := parseDate(rawLastSeen); err != nil {
		fieldErrs = append(fieldErrs, models.FieldError{Field: "LastSeen", Message: "Field 'LastSeen' must be a date"})
	} else {
		lostPet.LastSeen = lastSeen
	}

	return lostPet, fieldErrs
}

func formValue(values map[string][]string, key string) string {
	if vs, ok := values[key]; ok && len(vs) > 0 {
		return vs[0]
	}
	return ""
}

// formBool converts the literal strings "true"/"false" that checkboxes
// submit. Anything else, including absence, is false.
func formBool(values map[string][]string, key string) bool {
	return formValue(values, key) == "true"
}

// parseDate accepts the HTML date-input format first, then full timestamps.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
