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

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	catalogService *services.CatalogService
	validate       *validator.Validate
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(catalogService *services.CatalogService) *CategoryHandler {
	return &CategoryHandler{
		catalogService: catalogService,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the public category routes.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router) {
	categoryRoutes := router.Group("/categories")
	categoryRoutes.Get("/", h.HandleListCategories)
	categoryRoutes.Get("/:id/books", h.HandleBooksInCategory)
}

// RegisterAdminRoutes registers the category mutation routes.
func (h *CategoryHandler) RegisterAdminRoutes(router fiber.Router) {
	categoryRoutes := router.Group("/categories")
	categoryRoutes.Post("/", h.HandleCreateCategory)
	categoryRoutes.Put("/:id", h.HandleUpdateCategory)
	categoryRoutes.Delete("/:id", h.HandleDeleteCategory)
}

// HandleListCategories lists all categories with book counts.
func (h *CategoryHandler) HandleListCategories(c *fiber.Ctx) error {
	categories, err := h.catalogService.ListCategories()
	if err != nil {
		log.Printf("Error listing categories: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve categories",
			"error":   err.Error(),
		})
	}
	return c.JSON(categories)
}

// HandleBooksInCategory lists a category's in-stock books.
func (h *CategoryHandler) HandleBooksInCategory(c *fiber.Ctx) error {
	categoryID := c.Params("id")
	books, err := h.catalogService.BooksInCategory(categoryID)
	if err != nil {
		log.Printf("Error listing books for category %s: %v", categoryID, err)
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Category not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve books",
			"error":   err.Error(),
		})
	}
	return c.JSON(books)
}

// HandleCreateCategory adds a new category.
func (h *CategoryHandler) HandleCreateCategory(c *fiber.Ctx) error {
	var category models.Category
	if err := c.BodyParser(&category); err != nil {
		log.Printf("Error parsing category body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(category); err != nil {
		return validationError(c, err)
	}

	if err := h.catalogService.CreateCategory(&category); err != nil {
		log.Printf("Error creating category: %v", err)
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"message": "Could not create category",
			"error":   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// HandleUpdateCategory updates an existing category.
func (h *CategoryHandler) HandleUpdateCategory(c *fiber.Ctx) error {
	var category models.Category
	if err := c.BodyParser(&category); err != nil {
		log.Printf("Error parsing category body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}
	category.ID = c.Params("id")

	if err := h.validate.Struct(category); err != nil {
		return validationError(c, err)
	}

	if err := h.catalogService.UpdateCategory(&category); err != nil {
		log.Printf("Error updating category %s: %v", category.ID, err)
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Category not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update category",
			"error":   err.Error(),
		})
	}
	return c.JSON(category)
}

// HandleDeleteCategory removes a category; its books, their order
// items and their reviews cascade away with it.
func (h *CategoryHandler) HandleDeleteCategory(c *fiber.Ctx) error {
	categoryID := c.Params("id")
	if err := h.catalogService.DeleteCategory(categoryID); err != nil {
		log.Printf("Error deleting category %s: %v", categoryID, err)
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Category not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not delete category",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Category deleted successfully",
	})
}
