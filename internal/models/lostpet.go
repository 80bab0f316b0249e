package models

import "time"

// LostPet statuses. A report is either lost or found, never both.
const (
	LostPetStatusLost  = "lost"
	LostPetStatusFound = "found"
)

// ContactInfo is the contact block embedded in a lost pet report. It is
// submitted independently of the reporter's own account fields, so someone
// can report a found pet with a neighbour's phone number.
type ContactInfo struct {
	Name  string `json:"name" validate:"required,min=2,max=100"`
	Phone string `json:"phone" validate:"required,min=5,max=30"`
	Email string `json:"email" validate:"required,email"`
}

// LostPet represents a lost or found pet report.
type LostPet struct {
	ID          string    `json:"_id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string    `json:"name" validate:"required,min=1,max=100"`
	Type        string    `json:"type" validate:"required,oneof=dog cat bird rabbit other"`
	Breed       string    `json:"breed" validate:"required,min=1,max=100"`
	Color       string    `json:"color" validate:"required,min=1,max=50"`
	Size        string    `json:"size" validate:"required,oneof=small medium large extra-large"`
	Location    string    `json:"location" validate:"required,min=1,max=100"`
	LastSeen    time.Time `json:"lastSeen" validate:"required"`
	Description string    `json:"description" validate:"required,min=1,max=2000"`
	Images      []string  `json:"images" gorm:"serializer:json"`

	Status      string      `json:"status" validate:"required,oneof=lost found"`
	ContactInfo ContactInfo `json:"contactInfo" gorm:"embedded;embeddedPrefix:contact_"`

	ReporterID string `json:"-" gorm:"type:varchar(36);index" validate:"required"`
	// Reporter is projected to id and name only in API responses.
	Reporter *User `json:"reporter,omitempty" gorm:"foreignKey:ReporterID"`

	// Resolved is stored but no endpoint flips it yet; reports currently
	// stay visible until removed out of band.
	Resolved bool `json:"resolved" gorm:"default:false"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
