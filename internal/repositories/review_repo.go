package repositories

import "bookstore/internal/models"

// ReviewRepository defines the interface for review data access.
type ReviewRepository interface {
	Create(review *models.Review) error
	GetByBookID(bookID string) ([]models.Review, error)
	// AverageRating returns the arithmetic mean of all ratings for a
	// book, or exactly 0 when the book has no reviews.
	AverageRating(bookID string) (float64, error)
}
