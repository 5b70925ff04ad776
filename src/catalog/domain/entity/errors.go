package entity

import "errors"

var (
	ErrProductNotFound      = errors.New("product not found")
	ErrProductNameRequired  = errors.New("name is required")
	ErrInvalidPrice         = errors.New("price must be greater than or equal to 0")
	ErrInvalidStock         = errors.New("stock must be greater than or equal to 0")
	ErrInvalidProductStatus = errors.New("invalid product status")

	// Retornado por el descuento condicional de stock cuando el producto
	// no está activo o la cantidad solicitada supera el stock disponible
	ErrInsufficientStock = errors.New("insufficient stock")
)
