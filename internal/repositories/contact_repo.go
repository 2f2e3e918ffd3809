package repositories

import "bookstore/internal/models"

// ContactRepository defines the interface for contact message data
// access.
type ContactRepository interface {
	Create(message *models.ContactMessage) error
	GetAll() ([]models.ContactMessage, error)
	MarkRead(id string) error
}
