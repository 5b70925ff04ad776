package request

import "github.com/shopspring/decimal"

// CreateProductRequest representa la petición para crear un producto
type CreateProductRequest struct {
	Name     string          `json:"name" binding:"required"`
	Price    decimal.Decimal `json:"price" binding:"required"`
	Stock    int             `json:"stock" binding:"min=0"`
	ImageURL string          `json:"image_url,omitempty"`
}

// UpdateProductStatusRequest representa la petición para cambiar el estado de un producto
type UpdateProductStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
