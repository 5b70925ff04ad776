package usecase

import (
	"context"

	"tienda/src/order/application/response"
	"tienda/src/shared/domain/criteria"
)

// SearchOrdersUseCase caso de uso para buscar órdenes por nombre de cliente.
// La búsqueda es substring case-insensitive contra el snapshot customer_name
// guardado en la orden, no contra el proveedor de identidad
type SearchOrdersUseCase struct {
	listOrdersUC *ListOrdersUseCase
}

// NewSearchOrdersUseCase crea una nueva instancia del caso de uso
func NewSearchOrdersUseCase(listOrdersUC *ListOrdersUseCase) *SearchOrdersUseCase {
	return &SearchOrdersUseCase{
		listOrdersUC: listOrdersUC,
	}
}

// Execute busca órdenes cuyo customer_name contenga el patrón
func (uc *SearchOrdersUseCase) Execute(ctx context.Context, customerName string, page, pageSize int) (*response.ListOrdersResponse, error) {
	crit := criteria.NewCriteriaBuilder().
		WithFilter("customer_name", criteria.OpILike, customerName).
		WithOrder("created_at", criteria.DESC).
		WithPagination(page, pageSize).
		Build()

	return uc.listOrdersUC.Execute(ctx, crit)
}
