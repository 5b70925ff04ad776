package usecase

import (
	"context"
	"fmt"

	"tienda/src/cart/application/response"
	cartPort "tienda/src/cart/domain/port"
	catalogPort "tienda/src/catalog/domain/port"
)

// RemoveItemUseCase caso de uso para quitar un producto del carrito
type RemoveItemUseCase struct {
	cartRepo    cartPort.CartRepository
	productRepo catalogPort.ProductRepository
}

// NewRemoveItemUseCase crea una nueva instancia del caso de uso
func NewRemoveItemUseCase(cartRepo cartPort.CartRepository, productRepo catalogPort.ProductRepository) *RemoveItemUseCase {
	return &RemoveItemUseCase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// Execute quita la línea del producto. Remover un producto que no está en el
// carrito es un no-op: se retorna el carrito sin cambios, no un error
func (uc *RemoveItemUseCase) Execute(ctx context.Context, customerID, productID string) (*response.CartResponse, error) {
	cart, err := uc.cartRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	before := len(cart.Items)
	cart.RemoveItem(productID)

	if len(cart.Items) != before {
		if err := uc.cartRepo.Save(ctx, cart); err != nil {
			return nil, fmt.Errorf("error saving cart: %w", err)
		}
	}

	return buildCartResponse(ctx, cart, uc.productRepo)
}
