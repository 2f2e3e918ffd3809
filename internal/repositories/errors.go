package repositories

import "errors"

// Sentinel errors shared by all repository implementations. Services
// and handlers match on these with errors.Is to map failures onto
// HTTP statuses.
var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrInsufficientStock is returned by PlaceOrder when a book's
	// remaining stock is below the requested quantity. The whole
	// order is rolled back when this happens.
	ErrInsufficientStock = errors.New("insufficient stock")
)
