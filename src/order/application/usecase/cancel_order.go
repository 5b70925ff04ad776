package usecase

import (
	"context"
	"fmt"
	"log"

	catalogPort "tienda/src/catalog/domain/port"
	"tienda/src/order/application/response"
	"tienda/src/order/domain/entity"
	"tienda/src/order/domain/port"
)

// CancelOrderUseCase caso de uso para cancelar una orden y devolver su stock
type CancelOrderUseCase struct {
	orderRepo   port.OrderRepository
	productRepo catalogPort.ProductRepository
	notifier    port.OrderNotifier
}

// NewCancelOrderUseCase crea una nueva instancia del caso de uso
func NewCancelOrderUseCase(orderRepo port.OrderRepository, productRepo catalogPort.ProductRepository, notifier port.OrderNotifier) *CancelOrderUseCase {
	return &CancelOrderUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		notifier:    notifier,
	}
}

// Execute cancela la orden desde cualquier estado no terminal.
// El UPDATE condicional va PRIMERO: solo la petición que efectivamente
// cambió el estado restaura stock, así dos cancelaciones concurrentes
// devuelven el stock una sola vez
func (uc *CancelOrderUseCase) Execute(ctx context.Context, orderID string) (*response.OrderResponse, error) {
	order, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.Status.IsTerminal() {
		return nil, entity.ErrInvalidTransition
	}

	if err := uc.orderRepo.Cancel(ctx, orderID); err != nil {
		return nil, fmt.Errorf("error canceling order %s: %w", orderID, err)
	}

	order.Status = entity.OrderStatusCanceled

	// Devolver el stock de cada línea. Un fallo aquí no revierte la
	// cancelación: la orden ya quedó cancelada, se registra para auditoría
	for _, item := range order.Items {
		if err := uc.productRepo.RestoreStock(ctx, item.ProductID, item.Quantity); err != nil {
			log.Printf("CRITICAL ERROR: Failed to restore stock for product %s (qty %d) after canceling order %s: %v",
				item.ProductID, item.Quantity, orderID, err)
		}
	}

	if uc.notifier != nil {
		uc.notifier.OrderCanceled(order)
	}

	return response.NewOrderResponse(order), nil
}
