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

// ContactHandler handles HTTP requests for contact messages.
type ContactHandler struct {
	contactService *services.ContactService
	validate       *validator.Validate
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contactService *services.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		validate:       validator.New(),
	}
}

// RegisterRoutes registers the public contact form route.
func (h *ContactHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/contact", h.HandleSubmit)
}

// RegisterAdminRoutes registers the admin-only inbox routes.
func (h *ContactHandler) RegisterAdminRoutes(router fiber.Router) {
	contactRoutes := router.Group("/contact/messages")
	contactRoutes.Get("/", h.HandleListMessages)
	contactRoutes.Patch("/:id/read", h.HandleMarkRead)
}

// HandleSubmit stores a contact form submission.
func (h *ContactHandler) HandleSubmit(c *fiber.Ctx) error {
	var message models.ContactMessage
	if err := c.BodyParser(&message); err != nil {
		log.Printf("Error parsing contact message body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.validate.Struct(message); err != nil {
		return validationError(c, err)
	}

	if err := h.contactService.Submit(&message); err != nil {
		log.Printf("Error submitting contact message: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not send message",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Message sent successfully",
	})
}

// HandleListMessages lists all contact messages, newest first.
func (h *ContactHandler) HandleListMessages(c *fiber.Ctx) error {
	messages, err := h.contactService.ListMessages()
	if err != nil {
		log.Printf("Error listing contact messages: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve messages",
			"error":   err.Error(),
		})
	}
	return c.JSON(messages)
}

// HandleMarkRead flags a message as read.
func (h *ContactHandler) HandleMarkRead(c *fiber.Ctx) error {
	messageID := c.Params("id")
	if err := h.contactService.MarkRead(messageID); err != nil {
		log.Printf("Error marking contact message %s as read: %v", messageID, err)
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Message not found",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not update message",
			"error":   err.Error(),
		})
	}
	return c.JSON(fiber.Map{
		"message": "Message marked as read",
	})
}
