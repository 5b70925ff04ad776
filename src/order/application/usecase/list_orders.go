package usecase

import (
	"context"
	"fmt"

	"tienda/src/order/application/response"
	"tienda/src/order/domain/port"
	"tienda/src/shared/domain/criteria"
)

// ListOrdersUseCase caso de uso para listar órdenes con criteria
// (filtros por status/customer_id + paginación)
type ListOrdersUseCase struct {
	orderRepo port.OrderRepository
}

// NewListOrdersUseCase crea una nueva instancia del caso de uso
func NewListOrdersUseCase(orderRepo port.OrderRepository) *ListOrdersUseCase {
	return &ListOrdersUseCase{
		orderRepo: orderRepo,
	}
}

// Execute lista órdenes según el criteria recibido
func (uc *ListOrdersUseCase) Execute(ctx context.Context, crit criteria.Criteria) (*response.ListOrdersResponse, error) {
	orders, totalCount, err := uc.orderRepo.List(ctx, crit)
	if err != nil {
		return nil, fmt.Errorf("error listing orders: %w", err)
	}

	items := make([]*response.OrderResponse, 0, len(orders))
	for _, order := range orders {
		items = append(items, response.NewOrderResponse(order))
	}

	// Derivar page/page_size desde limit/offset para la respuesta
	page := 1
	pageSize := len(items)
	if crit.Limit != nil && *crit.Limit > 0 {
		pageSize = *crit.Limit
		if crit.Offset != nil {
			page = (*crit.Offset / *crit.Limit) + 1
		}
	}

	return &response.ListOrdersResponse{
		Orders:     items,
		TotalCount: totalCount,
		Page:       page,
		PageSize:   pageSize,
	}, nil
}
