package usecase

import (
	"context"
	"fmt"

	"tienda/src/order/application/response"
	"tienda/src/order/domain/port"
)

// ConfirmShipmentUseCase caso de uso para confirmar el despacho de una orden
type ConfirmShipmentUseCase struct {
	orderRepo port.OrderRepository
	notifier  port.OrderNotifier
}

// NewConfirmShipmentUseCase crea una nueva instancia del caso de uso
func NewConfirmShipmentUseCase(orderRepo port.OrderRepository, notifier port.OrderNotifier) *ConfirmShipmentUseCase {
	return &ConfirmShipmentUseCase{
		orderRepo: orderRepo,
		notifier:  notifier,
	}
}

// Execute confirma el envío. Idempotente si ya fue despachada
func (uc *ConfirmShipmentUseCase) Execute(ctx context.Context, orderID string) (*response.OrderResponse, error) {
	order, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.ShipmentConfirmed {
		return response.NewOrderResponse(order), nil
	}

	if err := order.ConfirmShipment(); err != nil {
		return nil, err
	}

	if err := uc.orderRepo.ConfirmShipment(ctx, order); err != nil {
		return nil, fmt.Errorf("error confirming shipment for order %s: %w", orderID, err)
	}

	if uc.notifier != nil {
		uc.notifier.ShipmentConfirmed(order)
	}

	return response.NewOrderResponse(order), nil
}
