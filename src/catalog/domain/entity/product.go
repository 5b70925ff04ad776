package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductStatus representa el estado de un producto en el catálogo
type ProductStatus string

const (
	ProductStatusActive     ProductStatus = "ACTIVE"
	ProductStatusInactive   ProductStatus = "INACTIVE"
	ProductStatusOutOfStock ProductStatus = "OUT_OF_STOCK"
)

// IsValid indica si el estado es uno de los reconocidos
func (s ProductStatus) IsValid() bool {
	switch s {
	case ProductStatusActive, ProductStatusInactive, ProductStatusOutOfStock:
		return true
	}
	return false
}

// Product representa un producto del catálogo (Aggregate Root)
// El stock nunca es negativo: solo lo modifican los primitivos atómicos del repositorio
type Product struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Stock     int             `json:"stock"`
	Status    ProductStatus   `json:"status"`
	ImageURL  string          `json:"image_url"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// NewProduct crea un nuevo producto
func NewProduct(name string, price decimal.Decimal, stock int, imageURL string) (*Product, error) {
	if name == "" {
		return nil, ErrProductNameRequired
	}
	if price.LessThan(decimal.Zero) {
		return nil, ErrInvalidPrice
	}
	if stock < 0 {
		return nil, ErrInvalidStock
	}

	status := ProductStatusActive
	if stock == 0 {
		status = ProductStatusOutOfStock
	}

	now := time.Now()

	return &Product{
		ProductID: uuid.New().String(),
		Name:      name,
		Price:     price,
		Stock:     stock,
		Status:    status,
		ImageURL:  imageURL,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// IsPurchasable indica si el producto puede venderse en la cantidad solicitada
func (p *Product) IsPurchasable(quantity int) bool {
	return p.Status == ProductStatusActive && quantity > 0 && p.Stock >= quantity
}
