package response

import (
	"time"

	"github.com/shopspring/decimal"

	"tienda/src/order/domain/entity"
)

// OrderItemResponse representa un item de orden en la respuesta
type OrderItemResponse struct {
	ItemID    string          `json:"item_id"`
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	ImageURL  string          `json:"image_url,omitempty"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// ShippingAddressResponse representa la dirección de envío en la respuesta
type ShippingAddressResponse struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	Region     string `json:"region"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// OrderResponse representa una orden completa en la respuesta
type OrderResponse struct {
	OrderID           string                  `json:"order_id"`
	OrderCode         string                  `json:"order_code"`
	CustomerID        string                  `json:"customer_id"`
	CustomerName      string                  `json:"customer_name,omitempty"`
	VendorID          string                  `json:"vendor_id,omitempty"`
	Items             []OrderItemResponse     `json:"items"`
	ShippingAddress   ShippingAddressResponse `json:"shipping_address"`
	PaymentMethod     string                  `json:"payment_method"`
	PaymentReference  string                  `json:"payment_reference,omitempty"`
	Total             decimal.Decimal         `json:"total"`
	Status            string                  `json:"status"`
	PaymentConfirmed  bool                    `json:"payment_confirmed"`
	PaidAt            *time.Time              `json:"paid_at,omitempty"`
	ShipmentConfirmed bool                    `json:"shipment_confirmed"`
	ShippedAt         *time.Time              `json:"shipped_at,omitempty"`
	CreatedAt         time.Time               `json:"created_at"`
}

// NewOrderResponse construye la respuesta desde el aggregate
func NewOrderResponse(order *entity.Order) *OrderResponse {
	items := make([]OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItemResponse{
			ItemID:    item.ItemID,
			ProductID: item.ProductID,
			Name:      item.Name,
			ImageURL:  item.ImageURL,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal(),
		})
	}

	return &OrderResponse{
		OrderID:      order.OrderID,
		OrderCode:    order.OrderCode,
		CustomerID:   order.CustomerID,
		CustomerName: order.CustomerName,
		VendorID:     order.VendorID,
		Items:        items,
		ShippingAddress: ShippingAddressResponse{
			Street:     order.ShippingAddress.Street,
			City:       order.ShippingAddress.City,
			Region:     order.ShippingAddress.Region,
			PostalCode: order.ShippingAddress.PostalCode,
			Country:    order.ShippingAddress.Country,
		},
		PaymentMethod:     string(order.PaymentMethod),
		PaymentReference:  order.PaymentReference,
		Total:             order.Total,
		Status:            string(order.Status),
		PaymentConfirmed:  order.PaymentConfirmed,
		PaidAt:            order.PaidAt,
		ShipmentConfirmed: order.ShipmentConfirmed,
		ShippedAt:         order.ShippedAt,
		CreatedAt:         order.CreatedAt,
	}
}
