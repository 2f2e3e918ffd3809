package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"bookstore/internal/models"
	"bookstore/internal/repositories"
	"bookstore/pkg/rabbitmq"
)

// OrderService handles checkout and order management.
type OrderService struct {
	orderRepo repositories.OrderRepository
	bookRepo  repositories.BookRepository
	cartRepo  repositories.CartRepository
	mqClient  *rabbitmq.Client // RabbitMQ client, may be nil
}

// NewOrderService creates a new OrderService.
func NewOrderService(
	orderRepo repositories.OrderRepository,
	bookRepo repositories.BookRepository,
	cartRepo repositories.CartRepository,
	mqClient *rabbitmq.Client,
) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		bookRepo:  bookRepo,
		cartRepo:  cartRepo,
		mqClient:  mqClient,
	}
}

// Checkout converts the session cart into a persisted order.
//
// Every line is validated against current stock first, so the caller
// gets a stock-conflict naming the offending book before anything is
// written. The actual decrement inside PlaceOrder is conditional and
// transactional, so two carts racing for the last copy cannot both
// win; the loser's checkout fails whole and its cart is preserved.
// Unit prices are snapshotted from the books' current prices and are
// immune to later price edits. The cart is cleared only after the
// order has committed.
func (s *OrderService) Checkout(ctx context.Context, userID, sessionID, shippingAddress, notes string) (*models.Order, error) {
	cart, err := s.cartRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if cart.IsEmpty() {
		return nil, ErrEmptyCart
	}

	var totalAmount float64
	items := make([]models.OrderItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		book, err := s.bookRepo.GetByID(line.BookID)
		if err != nil {
			return nil, fmt.Errorf("cart references unknown book: %w", err)
		}
		if book.StockQuantity < line.Quantity {
			return nil, fmt.Errorf("book %q (requested: %d, available: %d): %w",
				book.Title, line.Quantity, book.StockQuantity, repositories.ErrInsufficientStock)
		}
		item := models.OrderItem{
			BookID:    book.ID,
			Quantity:  line.Quantity,
			UnitPrice: book.Price, // Price at the time of order
		}
		items = append(items, item)
		totalAmount += item.Subtotal()
	}

	order := &models.Order{
		UserID:          userID,
		OrderDate:       time.Now(),
		TotalAmount:     totalAmount,
		Status:          models.OrderStatusPending,
		ShippingAddress: shippingAddress,
		Notes:           notes,
		Items:           items,
	}

	if err := s.orderRepo.PlaceOrder(order); err != nil {
		return nil, err
	}

	// Only a committed order clears the cart. A failed clear leaves a
	// stale cart behind but the order itself is already safe.
	if err := s.cartRepo.Clear(ctx, sessionID); err != nil {
		log.Printf("Warning: failed to clear cart for session %s after checkout: %v", sessionID, err)
	}

	s.publishOrderCreated(order)

	return order, nil
}

// publishOrderCreated emits an order.created event. Publication is
// best effort; a broker outage never fails a checkout.
func (s *OrderService) publishOrderCreated(order *models.Order) {
	if s.mqClient == nil {
		log.Println("RabbitMQ client is not initialized. Skipping message publication.")
		return
	}

	event := map[string]interface{}{
		"orderID": order.ID,
		"userID":  order.UserID,
		"status":  order.Status,
		"total":   order.TotalAmount,
	}
	body, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal order event to JSON: %v", err)
		return
	}
	if err := s.mqClient.Publish("order", "order.created", body); err != nil {
		log.Printf("Warning: Failed to publish order created event for order %s: %v", order.ID, err)
	} else {
		log.Printf("Successfully published order created event for order %s", order.ID)
	}
}

// GetOrder retrieves an order for a user. Admins can read any order;
// everyone else only their own.
func (s *OrderService) GetOrder(orderID, userID string, isAdmin bool) (*models.Order, error) {
	order, err := s.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && order.UserID != userID {
		return nil, fmt.Errorf("order %s belongs to another user: %w", orderID, ErrForbidden)
	}
	return order, nil
}

// ListOrders returns a user's order history, newest first.
func (s *OrderService) ListOrders(userID string) ([]models.Order, error) {
	return s.orderRepo.GetByUserID(userID)
}

// UpdateOrderStatus updates the status of an existing order.
func (s *OrderService) UpdateOrderStatus(id string, status string) error {
	if !models.ValidOrderStatus(status) {
		return fmt.Errorf("%q: %w", status, ErrInvalidStatus)
	}
	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		return fmt.Errorf("failed to update order status for order %s: %w", id, err)
	}
	return nil
}

// MarkProcessing is the order-event consumer hook: a freshly created
// order moves from pending to processing once its event is handled.
func (s *OrderService) MarkProcessing(orderID string) error {
	return s.UpdateOrderStatus(orderID, models.OrderStatusProcessing)
}
