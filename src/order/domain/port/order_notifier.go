package port

import "tienda/src/order/domain/entity"

// OrderNotifier define el contrato de notificaciones de ciclo de vida de órdenes.
// Todas las llamadas son fire-and-forget: nunca bloquean ni fallan el flujo
// principal
type OrderNotifier interface {
	OrderCreated(order *entity.Order)
	PaymentConfirmed(order *entity.Order)
	ShipmentConfirmed(order *entity.Order)
	OrderCanceled(order *entity.Order)
}
