package usecase

import (
	"context"
	"fmt"

	"tienda/src/order/application/response"
	"tienda/src/order/domain/entity"
	"tienda/src/order/domain/port"
)

// UpdateOrderStatusUseCase caso de uso para transiciones genéricas de estado.
// Las transiciones con efectos secundarios delegan en sus casos de uso
// dedicados para no duplicar invariantes: PAID fija los campos de pago,
// SHIPPED los de envío y CANCELED devuelve stock
type UpdateOrderStatusUseCase struct {
	orderRepo         port.OrderRepository
	confirmPaymentUC  *ConfirmPaymentUseCase
	confirmShipmentUC *ConfirmShipmentUseCase
	cancelOrderUC     *CancelOrderUseCase
}

// NewUpdateOrderStatusUseCase crea una nueva instancia del caso de uso
func NewUpdateOrderStatusUseCase(
	orderRepo port.OrderRepository,
	confirmPaymentUC *ConfirmPaymentUseCase,
	confirmShipmentUC *ConfirmShipmentUseCase,
	cancelOrderUC *CancelOrderUseCase,
) *UpdateOrderStatusUseCase {
	return &UpdateOrderStatusUseCase{
		orderRepo:         orderRepo,
		confirmPaymentUC:  confirmPaymentUC,
		confirmShipmentUC: confirmShipmentUC,
		cancelOrderUC:     cancelOrderUC,
	}
}

// Execute aplica la transición solicitada validando alcanzabilidad en el grafo
func (uc *UpdateOrderStatusUseCase) Execute(ctx context.Context, orderID, status string) (*response.OrderResponse, error) {
	target := entity.OrderStatus(status)
	if !target.IsValid() {
		return nil, entity.ErrInvalidTransition
	}

	switch target {
	case entity.OrderStatusPaid:
		return uc.confirmPaymentUC.Execute(ctx, orderID, "")
	case entity.OrderStatusShipped:
		return uc.confirmShipmentUC.Execute(ctx, orderID)
	case entity.OrderStatusCanceled:
		return uc.cancelOrderUC.Execute(ctx, orderID)
	}

	order, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	from := order.Status
	if err := order.SetStatus(target); err != nil {
		return nil, err
	}

	if err := uc.orderRepo.UpdateStatus(ctx, orderID, from, target); err != nil {
		return nil, fmt.Errorf("error updating order %s status: %w", orderID, err)
	}

	return response.NewOrderResponse(order), nil
}
