package services

import (
	"bookstore/internal/models"
	"bookstore/internal/repositories"
)

// ContactService handles contact form submissions.
type ContactService struct {
	contactRepo repositories.ContactRepository
}

// NewContactService creates a new ContactService.
func NewContactService(contactRepo repositories.ContactRepository) *ContactService {
	return &ContactService{
		contactRepo: contactRepo,
	}
}

// Submit stores a new contact message.
func (s *ContactService) Submit(message *models.ContactMessage) error {
	return s.contactRepo.Create(message)
}

// ListMessages returns all contact messages, newest first.
func (s *ContactService) ListMessages() ([]models.ContactMessage, error) {
	return s.contactRepo.GetAll()
}

// MarkRead flags a message as read.
func (s *ContactService) MarkRead(id string) error {
	return s.contactRepo.MarkRead(id)
}
