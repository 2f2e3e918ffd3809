package handlers

import (
	"errors"
	"log"

	"bookstore/internal/middleware"
	"bookstore/internal/repositories"
	"bookstore/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ReviewHandler handles HTTP requests for book reviews.
type ReviewHandler struct {
	reviewService *services.ReviewService
	validate      *validator.Validate
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(reviewService *services.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
		validate:      validator.New(),
	}
}

// RegisterRoutes registers the public review routes.
func (h *ReviewHandler) RegisterRoutes(router fiber.Router) {
	router.Get("/books/:id/reviews", h.HandleListReviews)
}

// RegisterProtectedRoutes registers review submission, which requires
// a logged-in user.
func (h *ReviewHandler) RegisterProtectedRoutes(router fiber.Router) {
	router.Post("/books/:id/reviews", h.HandleAddReview)
}

// HandleListReviews lists a book's reviews.
func (h *ReviewHandler) HandleListReviews(c *fiber.Ctx) error {
	bookID := c.Params("id")
	reviews, err := h.reviewService.ListReviews(bookID)
	if err != nil {
		log.Printf("Error listing reviews for book %s: %v", bookID, err)
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Book not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve reviews",
			"error":   err.Error(),
		})
	}
	return c.JSON(reviews)
}

// AddReviewRequest represents the request body for a review.
type AddReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"omitempty,max=2000"`
}

// HandleAddReview records a review for a book.
func (h *ReviewHandler) HandleAddReview(c *fiber.Ctx) error {
	var req AddReviewRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing review body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	bookID := c.Params("id")
	review, err := h.reviewService.AddReview(middleware.UserID(c), bookID, req.Rating, req.Comment)
	if err != nil {
		log.Printf("Error adding review for book %s: %v", bookID, err)
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Book not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not add review",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Review added successfully",
		"review":  review,
	})
}
