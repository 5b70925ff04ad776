package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderStatus representa el estado de una orden
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusPaid       OrderStatus = "PAID"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCanceled   OrderStatus = "CANCELED"
)

// IsValid indica si el estado es uno de los reconocidos
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusPending, OrderStatusPaid, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCanceled:
		return true
	}
	return false
}

// IsTerminal indica si el estado no admite más transiciones
func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCanceled
}

// Grafo de transiciones del ciclo de vida. Cancelación permitida desde
// cualquier estado no terminal
var allowedTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusPaid, OrderStatusCanceled},
	OrderStatusPaid:       {OrderStatusProcessing, OrderStatusCanceled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCanceled},
	OrderStatusShipped:    {OrderStatusDelivered, OrderStatusCanceled},
	OrderStatusDelivered:  {},
	OrderStatusCanceled:   {},
}

// CanTransitionTo indica si el cambio de estado es válido según el grafo
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	for _, next := range allowedTransitions[s] {
		if next == target {
			return true
		}
	}
	return false
}

// Order representa una orden (Aggregate Root). Inmutable después de su
// creación salvo los campos de estado: los snapshots de las líneas nunca
// cambian aunque el producto subyacente cambie o desaparezca
type Order struct {
	OrderID           string          `json:"order_id"`
	OrderCode         string          `json:"order_code"`
	CustomerID        string          `json:"customer_id"`
	CustomerName      string          `json:"customer_name,omitempty"`
	VendorID          string          `json:"vendor_id,omitempty"`
	Items             []OrderItem     `json:"items"`
	ShippingAddress   ShippingAddress `json:"shipping_address"`
	PaymentMethod     PaymentMethod   `json:"payment_method"`
	PaymentReference  string          `json:"payment_reference,omitempty"`
	Total             decimal.Decimal `json:"total"`
	Status            OrderStatus     `json:"status"`
	PaymentConfirmed  bool            `json:"payment_confirmed"`
	PaidAt            *time.Time      `json:"paid_at,omitempty"`
	ShipmentConfirmed bool            `json:"shipment_confirmed"`
	ShippedAt         *time.Time      `json:"shipped_at,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}

// NewOrder crea una nueva orden con sus items (DDD Aggregate Root).
// Toda la validación ocurre antes de cualquier mutación: o la orden se
// construye completa o no se construye
func NewOrder(customerID, customerName, vendorID string, items []OrderItem, address ShippingAddress, paymentMethod PaymentMethod) (*Order, error) {
	if customerID == "" {
		return nil, ErrCustomerIDRequired
	}
	if len(items) == 0 {
		return nil, ErrOrderMustHaveItems
	}
	if err := address.Validate(); err != nil {
		return nil, err
	}
	if !paymentMethod.IsValid() {
		return nil, ErrInvalidPaymentMethod
	}

	orderID := uuid.New().String()

	// Asignar order_id a todos los items y calcular el total
	total := decimal.Zero
	for i := range items {
		items[i].OrderID = orderID
		total = total.Add(items[i].Subtotal())
	}

	return &Order{
		OrderID:         orderID,
		OrderCode:       NewOrderCode(),
		CustomerID:      customerID,
		CustomerName:    customerName,
		VendorID:        vendorID,
		Items:           items,
		ShippingAddress: address,
		PaymentMethod:   paymentMethod,
		Total:           total,
		Status:          OrderStatusPending,
		CreatedAt:       time.Now(),
	}, nil
}

// RegenerateCode asigna un nuevo código ante una colisión detectada al persistir
func (o *Order) RegenerateCode() {
	o.OrderCode = NewOrderCode()
}

// ConfirmPayment marca el pago como confirmado y mueve la orden a PAID.
// Idempotente: confirmar una orden ya pagada es un no-op, no un error
func (o *Order) ConfirmPayment(reference string) error {
	if o.PaymentConfirmed {
		return nil
	}
	if !o.Status.CanTransitionTo(OrderStatusPaid) {
		return ErrInvalidTransition
	}

	now := time.Now()
	o.Status = OrderStatusPaid
	o.PaymentConfirmed = true
	o.PaidAt = &now
	o.PaymentReference = reference
	return nil
}

// ConfirmShipment marca el envío como confirmado y mueve la orden a SHIPPED.
// Idempotente si el envío ya fue confirmado
func (o *Order) ConfirmShipment() error {
	if o.ShipmentConfirmed {
		return nil
	}
	if !o.Status.CanTransitionTo(OrderStatusShipped) {
		return ErrInvalidTransition
	}

	now := time.Now()
	o.Status = OrderStatusShipped
	o.ShipmentConfirmed = true
	o.ShippedAt = &now
	return nil
}

// SetStatus aplica una transición genérica validada contra el grafo
func (o *Order) SetStatus(target OrderStatus) error {
	if !target.IsValid() {
		return ErrInvalidTransition
	}
	if !o.Status.CanTransitionTo(target) {
		return ErrInvalidTransition
	}
	o.Status = target
	return nil
}

// Cancel cancela la orden desde cualquier estado no terminal
func (o *Order) Cancel() error {
	if o.Status.IsTerminal() {
		return ErrInvalidTransition
	}
	o.Status = OrderStatusCanceled
	return nil
}

// TotalItems retorna el número de líneas de la orden
func (o *Order) TotalItems() int {
	return len(o.Items)
}
