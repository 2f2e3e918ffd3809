package handlers

import (
	"errors"
	"log"

	"bookstore/internal/models"
	"bookstore/internal/repositories"
	"bookstore/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// BookHandler handles HTTP requests for the book catalog.
type BookHandler struct {
	catalogService *services.CatalogService
	validate       *validator.Validate
}

// NewBookHandler creates a new BookHandler.
func NewBookHandler(catalogService *services.CatalogService) *BookHandler {
	return &BookHandler{
		catalogService: catalogService,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the public catalog routes.
func (h *BookHandler) RegisterRoutes(router fiber.Router) {
	bookRoutes := router.Group("/books")
	bookRoutes.Get("/", h.HandleListBooks)
	bookRoutes.Get("/:id", h.HandleGetBook)
}

// RegisterAdminRoutes registers the catalog mutation routes. These
// are admin-only.
func (h *BookHandler) RegisterAdminRoutes(router fiber.Router) {
	bookRoutes := router.Group("/books")
	bookRoutes.Post("/", h.HandleCreateBook)
	bookRoutes.Put("/:id", h.HandleUpdateBook)
	bookRoutes.Delete("/:id", h.HandleDeleteBook)
}

// HandleListBooks lists in-stock books, filtered by the `search`,
// `category` and `sort` query parameters.
func (h *BookHandler) HandleListBooks(c *fiber.Ctx) error {
	filter := repositories.BookFilter{
		Search:     c.Query("search"),
		CategoryID: c.Query("category"),
		Sort:       c.Query("sort"),
	}

	books, err := h.catalogService.SearchBooks(filter)
	if err != nil {
		log.Printf("Error searching books: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve books",
			"error":   err.Error(),
		})
	}
	return c.JSON(books)
}

// HandleGetBook returns a book's detail page data: the book, its
// reviews, the average rating and related books.
func (h *BookHandler) HandleGetBook(c *fiber.Ctx) error {
	bookID := c.Params("id")
	detail, err := h.catalogService.GetBookDetail(bookID)
	if err != nil {
		log.Printf("Error getting book %s: %v", bookID, err)
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Book not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve book",
			"error":   err.Error(),
		})
	}
	return c.JSON(detail)
}

// HandleCreateBook adds a book to the catalog.
func (h *BookHandler) HandleCreateBook(c *fiber.Ctx) error {
	var book models.Book
	if err := c.BodyParser(&book); err != nil {
		log.Printf("Error parsing book body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(book); err != nil {
		return validationError(c, err)
	}

	if err := h.catalogService.CreateBook(&book); err != nil {
		log.Printf("Error creating book: %v", err)
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Unknown category",
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not create book",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(book)
}

// HandleUpdateBook updates an existing book.
func (h *BookHandler) HandleUpdateBook(c *fiber.Ctx) error {
	var book models.Book
	if err := c.BodyParser(&book); err != nil {
		log.Printf("Error parsing book body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	book.ID = c.Params("id")

	if err := h.validate.Struct(book); err != nil {
		return validationError(c, err)
	}

	if err := h.catalogService.UpdateBook(&book); err != nil {
		log.Printf("Error updating book %s: %v", book.ID, err)
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Book not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update book",
			"error":   err.Error(),
		})
	}
	return c.JSON(book)
}

// HandleDeleteBook removes a book from the catalog along with its
// order items and reviews.
func (h *BookHandler) HandleDeleteBook(c *fiber.Ctx) error {
	bookID := c.Params("id")
	if err := h.catalogService.DeleteBook(bookID); err != nil {
		log.Printf("Error deleting book %s: %v", bookID, err)
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Book not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete book",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Book deleted successfully",
	})
}
