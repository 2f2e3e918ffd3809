package models

// CartItem is a desired book and quantity, not yet committed to an
// order.
type CartItem struct {
	BookID   string `json:"book_id" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gte=1"`
}

// Cart is the per-session shopping cart. It lives in the session
// store, never in the relational database, and carries no stock
// guarantees; stock is only checked at checkout.
type Cart struct {
	Items []CartItem `json:"items"`
}

// Add accumulates quantity onto an existing line or appends a new one.
func (c *Cart) Add(bookID string, quantity int) {
	for i := range c.Items {
		if c.Items[i].BookID == bookID {
			c.Items[i].Quantity += quantity
			return
		}
	}
	c.Items = append(c.Items, CartItem{BookID: bookID, Quantity: quantity})
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
