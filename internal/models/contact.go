package models

import "time"

// ContactMessage is a contact form submission. It is not linked to a
// user account; anyone can submit one.
type ContactMessage struct {
	ID        string    `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name      string    `json:"name" gorm:"type:varchar(100)" validate:"required,min=1,max=100"`
	Email     string    `json:"email" gorm:"type:varchar(100)" validate:"required,email"`
	Subject   string    `json:"subject" gorm:"type:varchar(200)" validate:"required,min=1,max=200"`
	Message   string    `json:"message" gorm:"type:text" validate:"required,min=1"`
	IsRead    bool      `json:"is_read" gorm:"default:false"`
	CreatedAt time.Time `json:"created_at"`
}
