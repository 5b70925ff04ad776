package response

import "github.com/shopspring/decimal"

// CartItemView representa una línea del carrito con los campos de display
// del producto resueltos al momento de la lectura (join en caliente, no copia)
type CartItemView struct {
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	ImageURL  string          `json:"image_url,omitempty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// CartResponse representa el carrito completo con campos denormalizados
type CartResponse struct {
	CartID     string          `json:"cart_id,omitempty"`
	CustomerID string          `json:"customer_id"`
	Items      []CartItemView  `json:"items"`
	ItemCount  int             `json:"item_count"`
	Total      decimal.Decimal `json:"total"`
}

// CartSummaryResponse resumen liviano del carrito para previews
type CartSummaryResponse struct {
	ItemCount int             `json:"item_count"`
	Total     decimal.Decimal `json:"total"`
	IsEmpty   bool            `json:"is_empty"`
}
