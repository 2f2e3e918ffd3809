package services

import "errors"

// Business-rule failures surfaced to users. Handlers map these onto
// HTTP statuses with errors.Is.
var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrEmailTaken         = errors.New("email already registered")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmptyCart          = errors.New("cart is empty")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidStatus      = errors.New("invalid order status")
)
