package models

import "time"

// Category groups books in the catalog.
type Category struct {
	ID          string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Name        string    `json:"name" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=2,max=100"`
	Description string    `json:"description" gorm:"type:text" validate:"omitempty,max=500"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Deleting a category removes its books (and, transitively,
	// their order items and reviews).
	Books []Book `json:"-" gorm:"foreignKey:CategoryID;constraint:OnDelete:CASCADE"`
}
