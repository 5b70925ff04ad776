package entity

import "errors"

var (
	ErrOrderNotFound        = errors.New("order not found")
	ErrCustomerIDRequired   = errors.New("customer_id is required")
	ErrOrderMustHaveItems   = errors.New("order must have at least one item")
	ErrProductIDRequired    = errors.New("product_id is required")
	ErrInvalidQuantity      = errors.New("quantity must be greater than 0")
	ErrItemNameRequired     = errors.New("item name is required")
	ErrInvalidUnitPrice     = errors.New("unit_price must be greater than or equal to 0")
	ErrMissingAddressField  = errors.New("shipping address field is required")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrInvalidTransition    = errors.New("invalid order status transition")

	// Colisión del código de orden: se recupera internamente con retry,
	// nunca llega al caller
	ErrDuplicateOrderCode = errors.New("duplicate order code")
)
