package services

import (
	"fmt"

	"bookstore/internal/models"
	"bookstore/internal/repositories"
)

// ReviewService handles book reviews and rating aggregation.
type ReviewService struct {
	reviewRepo repositories.ReviewRepository
	bookRepo   repositories.BookRepository
}

// NewReviewService creates a new ReviewService.
func NewReviewService(reviewRepo repositories.ReviewRepository, bookRepo repositories.BookRepository) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		bookRepo:   bookRepo,
	}
}

// AddReview records a rating (1 to 5) and optional comment for a book.
func (s *ReviewService) AddReview(userID, bookID string, rating int, comment string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, fmt.Errorf("rating must be between 1 and 5, got %d", rating)
	}
	if _, err := s.bookRepo.GetByID(bookID); err != nil {
		return nil, err
	}

	review := &models.Review{
		UserID:  userID,
		BookID:  bookID,
		Rating:  rating,
		Comment: comment,
	}
	if err := s.reviewRepo.Create(review); err != nil {
		return nil, err
	}
	return review, nil
}

// ListReviews returns a book's reviews, newest first.
func (s *ReviewService) ListReviews(bookID string) ([]models.Review, error) {
	if _, err := s.bookRepo.GetByID(bookID); err != nil {
		return nil, err
	}
	return s.reviewRepo.GetByBookID(bookID)
}

// AverageRating returns the mean rating for a book, 0 when unrated.
func (s *ReviewService) AverageRating(bookID string) (float64, error) {
	return s.reviewRepo.AverageRating(bookID)
}
