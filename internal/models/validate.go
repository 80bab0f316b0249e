package models

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Shared validator instance; validator.Validate caches struct metadata and
// is safe for concurrent use.
var validate = validator.New()

// FieldError describes a single invalid or missing field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Validate checks the user against its schema constraints.
func (u *User) Validate() []FieldError {
	return collectFieldErrors(validate.Struct(u))
}

// Validate checks the pet against its schema constraints (required fields,
// enum membership, age within [0, 30]).
func (p *Pet) Validate() []FieldError {
	return collectFieldErrors(validate.Struct(p))
}

// Validate checks the lost pet report against its schema constraints,
// including the embedded contact info block.
func (lp *LostPet) Validate() []FieldError {
	return collectFieldErrors(validate.Struct(lp))
}

func collectFieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []FieldError{{Field: "", Message: err.Error()}}
	}
	out := make([]FieldError, 0, len(validationErrors))
	for _, e := range validationErrors {
		out = append(out, FieldError{
			Field:   e.Field(),
			Message: fmt.Sprintf("Field '%s' failed on the '%s' tag", e.Field(), e.Tag()),
		})
	}
	return out
}
