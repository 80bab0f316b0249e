package models

import "time"

// User represents a registered account. Pets reference their owner and lost
// pet reports reference their reporter by User ID.
type User struct {
	ID       string `json:"_id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name     string `json:"name,omitempty" validate:"required,min=2,max=100"`
	Email    string `json:"email,omitempty" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	Phone    string `json:"phone,omitempty" validate:"required,min=5,max=30"`
	Location string `json:"location,omitempty" validate:"required,min=2,max=100"`
	// No json tag value for security: the hash must never leave the server.
	Password  string    `json:"-" gorm:"type:varchar(255)" validate:"required,min=6"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
