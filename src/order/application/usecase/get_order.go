package usecase

import (
	"context"

	"tienda/src/order/application/response"
	"tienda/src/order/domain/port"
)

// GetOrderUseCase caso de uso para obtener una orden por ID
type GetOrderUseCase struct {
	orderRepo port.OrderRepository
}

// NewGetOrderUseCase crea una nueva instancia del caso de uso
func NewGetOrderUseCase(orderRepo port.OrderRepository) *GetOrderUseCase {
	return &GetOrderUseCase{
		orderRepo: orderRepo,
	}
}

// Execute carga el aggregate completo
func (uc *GetOrderUseCase) Execute(ctx context.Context, orderID string) (*response.OrderResponse, error) {
	order, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return response.NewOrderResponse(order), nil
}
