package handlers

import (
	"errors"
	"log"

	"bookstore/internal/middleware"
	"bookstore/internal/models"
	"bookstore/internal/repositories"
	"bookstore/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// CartHandler handles HTTP requests for the session cart.
type CartHandler struct {
	cartService *services.CartService
	validate    *validator.Validate
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{
		cartService: cartService,
		validate:    validator.New(),
	}
}

// RegisterRoutes registers the cart routes. The cart works for
// anonymous sessions; only checkout requires login.
func (h *CartHandler) RegisterRoutes(router fiber.Router) {
	cartRoutes := router.Group("/cart")
	cartRoutes.Get("/", h.HandleViewCart)
	cartRoutes.Post("/items", h.HandleAddItem)
	cartRoutes.Put("/", h.HandleBulkUpdate)
	cartRoutes.Delete("/", h.HandleClearCart)
}

// HandleViewCart resolves the cart against current prices and returns
// line items plus the grand total.
func (h *CartHandler) HandleViewCart(c *fiber.Ctx) error {
	view, err := h.cartService.View(c.Context(), middleware.SessionID(c))
	if err != nil {
		log.Printf("Error viewing cart: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(view)
}

// AddItemRequest represents the request body for adding a cart line.
type AddItemRequest struct {
	BookID   string `json:"book_id" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gte=1"`
}

// HandleAddItem adds a book to the cart, accumulating quantity when
// the line already exists.
func (h *CartHandler) HandleAddItem(c *fiber.Ctx) error {
	var req AddItemRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing cart add body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return validationError(c, err)
	}

	cart, err := h.cartService.Add(c.Context(), middleware.SessionID(c), req.BookID, req.Quantity)
	if err != nil {
		log.Printf("Error adding to cart: %v", err)
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Book not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not add item to cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Item added to cart",
		"cart":    cart,
	})
}

// BulkUpdateRequest represents the request body for replacing the cart.
type BulkUpdateRequest struct {
	Items []models.CartItem `json:"items"`
}

// HandleBulkUpdate replaces the whole cart. Entries with quantity
// zero (or less) are dropped, which acts as removal.
func (h *CartHandler) HandleBulkUpdate(c *fiber.Ctx) error {
	var req BulkUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing cart update body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	cart, err := h.cartService.BulkUpdate(c.Context(), middleware.SessionID(c), req.Items)
	if err != nil {
		log.Printf("Error updating cart: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Cart updated",
		"cart":    cart,
	})
}

// HandleClearCart empties the cart.
func (h *CartHandler) HandleClearCart(c *fiber.Ctx) error {
	if err := h.cartService.Clear(c.Context(), middleware.SessionID(c)); err != nil {
		log.Printf("Error clearing cart: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not clear cart",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Cart cleared",
	})
}
