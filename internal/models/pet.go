package models

import "time"

// Pet statuses. Status is only ever set at creation time; expressing
// interest does not move a pet to "pending" or "adopted".
const (
	PetStatusAvailable = "available"
	PetStatusPending   = "pending"
	PetStatusAdopted   = "adopted"
)

// Pet represents an adoption listing.
type Pet struct {
	ID          string   `json:"_id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string   `json:"name" validate:"required,min=1,max=100"`
	Type        string   `json:"type" validate:"required,oneof=dog cat bird rabbit other"`
	Breed       string   `json:"breed" validate:"required,min=1,max=100"`
	Age         int      `json:"age" validate:"gte=0,lte=30"`
	Gender      string   `json:"gender" validate:"required,oneof=male female"`
	Size        string   `json:"size" validate:"required,oneof=small medium large extra-large"`
	Location    string   `json:"location" validate:"required,min=1,max=100"`
	Description string   `json:"description" validate:"required,min=1,max=2000"`
	Images      []string `json:"images" gorm:"serializer:json"`

	Vaccinated   bool `json:"vaccinated"`
	Neutered     bool `json:"neutered"`
	GoodWithKids bool `json:"goodWithKids"`
	GoodWithPets bool `json:"goodWithPets"`

	OwnerID string `json:"-" gorm:"type:varchar(36);index" validate:"required"`
	// Owner carries only the projected columns (id, name, email, phone)
	// when loaded for API responses.
	Owner *User `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`

	Status          string        `json:"status" gorm:"default:available" validate:"omitempty,oneof=available pending adopted"`
	InterestedUsers []PetInterest `json:"interestedUsers" gorm:"foreignKey:PetID"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PetInterest records one user's adoption interest in one pet. The composite
// primary key makes the append an atomic single-row insert: two different
// users racing on the same pet are both recorded, and the same user twice
// hits a duplicate-key error instead of a lost update.
type PetInterest struct {
	PetID     string    `json:"-" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"user" gorm:"primaryKey;type:varchar(36)"`
	CreatedAt time.Time `json:"date"`
}
