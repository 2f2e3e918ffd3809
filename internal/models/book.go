package models

import "time"

// Book is a catalog item.
type Book struct {
	ID            string     `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Title         string     `json:"title" gorm:"index;type:varchar(200)" validate:"required,min=1,max=200"`
	Author        string     `json:"author" gorm:"index;type:varchar(100)" validate:"required,min=1,max=100"`
	ISBN          string     `json:"isbn" gorm:"uniqueIndex;type:varchar(20)" validate:"required,min=10,max=20"`
	Price         float64    `json:"price" gorm:"type:decimal(10,2)" validate:"required,gt=0"`
	StockQuantity int        `json:"stock_quantity" validate:"gte=0"`
	Description   string     `json:"description" gorm:"type:text" validate:"omitempty,max=2000"`
	Publisher     string     `json:"publisher" validate:"omitempty,max=100"`
	PublishedDate *time.Time `json:"published_date,omitempty"`
	Pages         int        `json:"pages,omitempty" validate:"omitempty,gt=0"`
	CoverImage    string     `json:"cover_image,omitempty" validate:"omitempty,max=255"`
	CategoryID    *string    `json:"category_id,omitempty" gorm:"type:varchar(36)" validate:"omitempty,uuid"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	// Deleting a book removes its order items and reviews.
	OrderItems []OrderItem `json:"-" gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE"`
	Reviews    []Review    `json:"-" gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE"`
}

// InStock reports whether the book has any units available.
func (b *Book) InStock() bool {
	return b.StockQuantity > 0
}
