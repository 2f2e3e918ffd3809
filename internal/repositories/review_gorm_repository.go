package repositories

import (
	"fmt"

	"bookstore/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMReviewRepository is a GORM implementation of ReviewRepository.
type GORMReviewRepository struct {
	db *gorm.DB
}

// NewGORMReviewRepository creates a new instance of GORMReviewRepository.
func NewGORMReviewRepository(db *gorm.DB) *GORMReviewRepository {
	return &GORMReviewRepository{
		db: db,
	}
}

// Create creates a new review in the database.
func (r *GORMReviewRepository) Create(review *models.Review) error {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	if err := r.db.Create(review).Error; err != nil {
		return fmt.Errorf("failed to create review: %w", err)
	}
	return nil
}

// GetByBookID retrieves a book's reviews, newest first.
func (r *GORMReviewRepository) GetByBookID(bookID string) ([]models.Review, error) {
	var reviews []models.Review
	if err := r.db.Where("book_id = ?", bookID).
		Order("created_at DESC").Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("failed to get reviews for book %s: %w", bookID, err)
	}
	return reviews, nil
}

// AverageRating computes the mean rating for a book. COALESCE pins the
// no-reviews case to 0 rather than NULL.
func (r *GORMReviewRepository) AverageRating(bookID string) (float64, error) {
	var avg float64
	err := r.db.Model(&models.Review{}).
		Where("book_id = ?", bookID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg).Error
	if err != nil {
		return 0, fmt.Errorf("failed to compute average rating for book %s: %w", bookID, err)
	}
	return avg, nil
}
