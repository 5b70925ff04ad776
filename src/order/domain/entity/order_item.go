package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderItem representa un item dentro de una orden (Entity dentro del Aggregate).
// Nombre, imagen y precio unitario son snapshots deliberados tomados del
// catálogo al crear la orden: la orden es un registro histórico, no una
// vista viva del producto
type OrderItem struct {
	ItemID    string          `json:"item_id"`
	OrderID   string          `json:"order_id"`
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	ImageURL  string          `json:"image_url,omitempty"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// NewOrderItem crea un item de orden con sus snapshots
func NewOrderItem(orderID, productID, name, imageURL string, quantity int, unitPrice decimal.Decimal) (*OrderItem, error) {
	if productID == "" {
		return nil, ErrProductIDRequired
	}
	if name == "" {
		return nil, ErrItemNameRequired
	}
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	if unitPrice.LessThan(decimal.Zero) {
		return nil, ErrInvalidUnitPrice
	}

	return &OrderItem{
		ItemID:    uuid.New().String(),
		OrderID:   orderID,
		ProductID: productID,
		Name:      name,
		ImageURL:  imageURL,
		Quantity:  quantity,
		UnitPrice: unitPrice,
	}, nil
}

// Subtotal retorna cantidad × precio unitario snapshot
func (i OrderItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
