package models

import "time"

// Review is a customer rating for a book, 1 to 5 stars.
type Review struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID    string    `json:"user_id" gorm:"index;type:varchar(36)" validate:"required"`
	BookID    string    `json:"book_id" gorm:"index;type:varchar(36)" validate:"required"`
	Rating    int       `json:"rating" validate:"required,gte=1,lte=5"`
	Comment   string    `json:"comment" gorm:"type:text" validate:"omitempty,max=2000"`
	CreatedAt time.Time `json:"created_at"`
}
