package repositories

import (
	"context"

	"bookstore/internal/models"
)

// CartRepository defines the interface for the session cart store.
// Carts are keyed by an anonymous session identifier and live outside
// the relational database; they expire on their own and carry no
// durability guarantee.
type CartRepository interface {
	// Get returns the cart for a session. A session with no cart
	// yields an empty cart, not an error.
	Get(ctx context.Context, sessionID string) (*models.Cart, error)
	Save(ctx context.Context, sessionID string, cart *models.Cart) error
	Clear(ctx context.Context, sessionID string) error
}
