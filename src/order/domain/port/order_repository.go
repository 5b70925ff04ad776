package port

import (
	"context"

	"tienda/src/order/domain/entity"
	"tienda/src/shared/domain/criteria"
)

// OrderRepository define el contrato de persistencia de órdenes (DDD Port)
type OrderRepository interface {
	// Save persiste la orden con sus items en una transacción.
	// Retorna ErrDuplicateOrderCode si el código corto colisiona
	Save(ctx context.Context, order *entity.Order) error

	// FindByID carga el aggregate completo. Retorna ErrOrderNotFound si no existe
	FindByID(ctx context.Context, orderID string) (*entity.Order, error)

	// List retorna órdenes según el criteria (filtros + paginación) y el total
	// sin paginar
	List(ctx context.Context, crit criteria.Criteria) ([]*entity.Order, int, error)

	// ConfirmPayment persiste los campos de pago con UPDATE condicional
	// (WHERE status = 'PENDING'). Retorna ErrInvalidTransition si otra
	// petición ya movió la orden
	ConfirmPayment(ctx context.Context, order *entity.Order) error

	// ConfirmShipment persiste los campos de envío con UPDATE condicional
	// (WHERE status = 'PROCESSING')
	ConfirmShipment(ctx context.Context, order *entity.Order) error

	// UpdateStatus aplica una transición condicional WHERE status = from
	UpdateStatus(ctx context.Context, orderID string, from, to entity.OrderStatus) error

	// Cancel marca la orden CANCELED solo si aún no está en estado terminal.
	// La condición en SQL garantiza que dos cancelaciones concurrentes
	// restauren stock una sola vez
	Cancel(ctx context.Context, orderID string) error

	// Delete elimina la orden y sus items (purga administrativa)
	Delete(ctx context.Context, orderID string) error
}
