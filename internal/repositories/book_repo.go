package repositories

import "bookstore/internal/models"

// Sort keys accepted by BookFilter. Anything else falls back to
// SortTitle (title ascending).
const (
	SortTitle     = "title"
	SortPriceLow  = "price_low"
	SortPriceHigh = "price_high"
	SortNewest    = "newest"
)

// BookFilter narrows a catalog search. Filters combine conjunctively.
type BookFilter struct {
	// Search is matched case-insensitively as a substring of title,
	// author or ISBN (logical OR across the three).
	Search string
	// CategoryID restricts results to one category when non-empty.
	CategoryID string
	// Sort is one of the Sort* constants.
	Sort string
	// InStockOnly limits results to books with stock_quantity > 0.
	// Public catalog listings always set this.
	InStockOnly bool
}

// BookRepository defines the interface for book data access.
type BookRepository interface {
	Search(filter BookFilter) ([]models.Book, error)
	GetByID(id string) (*models.Book, error)
	GetByISBN(isbn string) (*models.Book, error)
	Create(book *models.Book) error
	Update(book *models.Book) error
	Delete(id string) error
}
