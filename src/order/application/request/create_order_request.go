package request

// OrderLineRequest representa una línea solicitada. Solo producto y cantidad:
// nombre y precio se toman siempre del catálogo vigente, nunca del cliente
type OrderLineRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// ShippingAddressRequest representa la dirección de envío. Los cinco campos
// son obligatorios
type ShippingAddressRequest struct {
	Street     string `json:"street" binding:"required"`
	City       string `json:"city" binding:"required"`
	Region     string `json:"region" binding:"required"`
	PostalCode string `json:"postal_code" binding:"required"`
	Country    string `json:"country" binding:"required"`
}

// CreateOrderRequest representa el request para crear una orden con líneas
// explícitas
type CreateOrderRequest struct {
	Items           []OrderLineRequest     `json:"items" binding:"required,min=1,dive"`
	ShippingAddress ShippingAddressRequest `json:"shipping_address" binding:"required"`
	PaymentMethod   string                 `json:"payment_method" binding:"required"`
	VendorID        string                 `json:"vendor_id"`
}
