package models

import "time"

// Roles a user can hold. Registration always assigns RoleCustomer;
// admins are provisioned out of band (seeding or manual update).
const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// User represents a customer or administrator of the store.
type User struct {
	ID           string    `json:"id" gorm:"primaryKey;type:varchar(36)" validate:"omitempty,uuid"`
	Username     string    `json:"username" gorm:"uniqueIndex;type:varchar(100)" validate:"required,min=3,max=100"`
	Email        string    `json:"email" gorm:"uniqueIndex;type:varchar(255)" validate:"required,email"`
	PasswordHash string    `json:"-" gorm:"type:varchar(255)"` // Never serialized
	Role         string    `json:"role" gorm:"type:varchar(20);default:customer"`
	FirstName    string    `json:"first_name" validate:"omitempty,max=50"`
	LastName     string    `json:"last_name" validate:"omitempty,max=50"`
	Address      string    `json:"address" gorm:"type:text"`
	Phone        string    `json:"phone" validate:"omitempty,max=20"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Deleting a user removes their orders and reviews.
	Orders  []Order  `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Reviews []Review `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
