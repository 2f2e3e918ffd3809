package models

import "time"

// Order lifecycle statuses. New orders always start as pending.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// ValidOrderStatus reports whether s is a known order status.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order represents a committed purchase.
type Order struct {
	ID              string      `json:"id" gorm:"primaryKey;type:varchar(36)"`
	UserID          string      `json:"user_id" gorm:"index;type:varchar(36)"`
	OrderDate       time.Time   `json:"order_date"`
	TotalAmount     float64     `json:"total_amount" gorm:"type:decimal(10,2)"`
	Status          string      `json:"status" gorm:"type:varchar(20);default:pending"`
	ShippingAddress string      `json:"shipping_address" gorm:"type:text"`
	Notes           string      `json:"notes" gorm:"type:text"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
	Items           []OrderItem `json:"items" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// OrderItem is a single line of an order. UnitPrice is the book's
// price at checkout time and never changes afterwards, regardless of
// later edits to the book.
type OrderItem struct {
	ID        string  `json:"id" gorm:"primaryKey;type:varchar(36)"`
	OrderID   string  `json:"order_id" gorm:"index;type:varchar(36)"`
	BookID    string  `json:"book_id" gorm:"index;type:varchar(36)"`
	Quantity  int     `json:"quantity" validate:"required,gte=1"`
	UnitPrice float64 `json:"unit_price" gorm:"type:decimal(10,2)"`
}

// Subtotal returns quantity times the snapshotted unit price.
func (i *OrderItem) Subtotal() float64 {
	return i.UnitPrice * float64(i.Quantity)
}
