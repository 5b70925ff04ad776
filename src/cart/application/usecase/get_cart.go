package usecase

import (
	"context"
	"errors"

	"tienda/src/cart/application/response"
	cartEntity "tienda/src/cart/domain/entity"
	cartPort "tienda/src/cart/domain/port"
	catalogPort "tienda/src/catalog/domain/port"

	"github.com/shopspring/decimal"
)

// GetCartUseCase caso de uso para obtener el carrito con campos de display
type GetCartUseCase struct {
	cartRepo    cartPort.CartRepository
	productRepo catalogPort.ProductRepository
}

// NewGetCartUseCase crea una nueva instancia del caso de uso
func NewGetCartUseCase(cartRepo cartPort.CartRepository, productRepo catalogPort.ProductRepository) *GetCartUseCase {
	return &GetCartUseCase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// Execute retorna el carrito del cliente. Nunca falla por carrito ausente:
// un cliente sin carrito recibe uno vacío
func (uc *GetCartUseCase) Execute(ctx context.Context, customerID string) (*response.CartResponse, error) {
	cart, err := uc.cartRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, cartEntity.ErrCartNotFound) {
			return &response.CartResponse{
				CustomerID: customerID,
				Items:      []response.CartItemView{},
				Total:      decimal.Zero,
			}, nil
		}
		return nil, err
	}

	return buildCartResponse(ctx, cart, uc.productRepo)
}
