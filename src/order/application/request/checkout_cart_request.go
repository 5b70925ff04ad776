package request

// CheckoutCartRequest representa el request de checkout: las líneas salen del
// carrito del cliente, aquí solo viajan dirección y método de pago
type CheckoutCartRequest struct {
	ShippingAddress ShippingAddressRequest `json:"shipping_address" binding:"required"`
	PaymentMethod   string                 `json:"payment_method" binding:"required"`
	VendorID        string                 `json:"vendor_id"`
}
