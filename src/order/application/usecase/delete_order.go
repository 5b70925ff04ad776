package usecase

import (
	"context"
	"fmt"

	"tienda/src/order/domain/port"
)

// DeleteOrderUseCase caso de uso para purga administrativa de una orden
type DeleteOrderUseCase struct {
	orderRepo port.OrderRepository
}

// NewDeleteOrderUseCase crea una nueva instancia del caso de uso
func NewDeleteOrderUseCase(orderRepo port.OrderRepository) *DeleteOrderUseCase {
	return &DeleteOrderUseCase{
		orderRepo: orderRepo,
	}
}

// Execute elimina la orden y sus items. No devuelve stock: la purga es
// un borrado de registro, no una cancelación
func (uc *DeleteOrderUseCase) Execute(ctx context.Context, orderID string) error {
	// Verificar existencia primero para responder 404 consistente
	if _, err := uc.orderRepo.FindByID(ctx, orderID); err != nil {
		return err
	}

	if err := uc.orderRepo.Delete(ctx, orderID); err != nil {
		return fmt.Errorf("error deleting order %s: %w", orderID, err)
	}

	return nil
}
