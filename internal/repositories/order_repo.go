package repositories

import "bookstore/internal/models"

// OrderRepository defines the interface for order data access.
//
// PlaceOrder is the commit point of a checkout: it decrements stock
// and persists the order with its items in one transaction, so either
// everything lands or nothing does.
type OrderRepository interface {
	PlaceOrder(order *models.Order) error
	GetByID(id string) (*models.Order, error)
	GetByUserID(userID string) ([]models.Order, error)
	UpdateStatus(id string, status string) error
}
