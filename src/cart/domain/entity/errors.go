package entity

import "errors"

var (
	ErrCartNotFound       = errors.New("cart not found")
	ErrCustomerIDRequired = errors.New("customer_id is required")
	ErrProductIDRequired  = errors.New("product_id is required")
	ErrInvalidQuantity    = errors.New("quantity must be greater than 0")
)
