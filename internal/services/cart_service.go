package services

import (
	"context"
	"fmt"

	"bookstore/internal/models"
	"bookstore/internal/repositories"
)

// CartService handles the session-scoped shopping cart. The cart is a
// wish list: no stock is reserved or checked until checkout.
type CartService struct {
	cartRepo repositories.CartRepository
	bookRepo repositories.BookRepository
}

// NewCartService creates a new CartService.
func NewCartService(cartRepo repositories.CartRepository, bookRepo repositories.BookRepository) *CartService {
	return &CartService{
		cartRepo: cartRepo,
		bookRepo: bookRepo,
	}
}

// CartLine is one resolved cart entry for display.
type CartLine struct {
	Book     models.Book `json:"book"`
	Quantity int         `json:"quantity"`
	Subtotal float64     `json:"subtotal"`
	InStock  bool        `json:"in_stock"`
}

// CartView is the cart with current prices resolved.
type CartView struct {
	Items []CartLine `json:"items"`
	Total float64    `json:"total"`
}

// Add puts quantity units of a book into the session cart,
// accumulating onto an existing line. The book must exist at add time.
func (s *CartService) Add(ctx context.Context, sessionID, bookID string, quantity int) (*models.Cart, error) {
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1, got %d", quantity)
	}
	if _, err := s.bookRepo.GetByID(bookID); err != nil {
		return nil, err
	}

	cart, err := s.cartRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	cart.Add(bookID, quantity)
	if err := s.cartRepo.Save(ctx, sessionID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// BulkUpdate replaces the whole cart. Entries with quantity <= 0 are
// dropped, which doubles as removal.
func (s *CartService) BulkUpdate(ctx context.Context, sessionID string, items []models.CartItem) (*models.Cart, error) {
	cart := &models.Cart{}
	for _, item := range items {
		if item.Quantity <= 0 {
			continue
		}
		cart.Add(item.BookID, item.Quantity)
	}
	if err := s.cartRepo.Save(ctx, sessionID, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// Clear empties the session cart.
func (s *CartService) Clear(ctx context.Context, sessionID string) error {
	return s.cartRepo.Clear(ctx, sessionID)
}

// View resolves the cart against current book prices. Lines whose
// book has disappeared since it was added are silently omitted.
func (s *CartService) View(ctx context.Context, sessionID string) (*CartView, error) {
	cart, err := s.cartRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	view := &CartView{Items: []CartLine{}}
	for _, item := range cart.Items {
		book, err := s.bookRepo.GetByID(item.BookID)
		if err != nil {
			// Book deleted mid-session: skip the line.
			continue
		}
		subtotal := book.Price * float64(item.Quantity)
		view.Items = append(view.Items, CartLine{
			Book:     *book,
			Quantity: item.Quantity,
			Subtotal: subtotal,
			InStock:  book.InStock(),
		})
		view.Total += subtotal
	}
	return view, nil
}
