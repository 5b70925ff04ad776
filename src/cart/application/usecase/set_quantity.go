package usecase

import (
	"context"
	"fmt"

	"tienda/src/cart/application/response"
	cartPort "tienda/src/cart/domain/port"
	catalogEntity "tienda/src/catalog/domain/entity"
	catalogPort "tienda/src/catalog/domain/port"
)

// SetQuantityUseCase caso de uso para fijar la cantidad de una línea del
// carrito. A diferencia del add, REEMPLAZA la cantidad anterior
type SetQuantityUseCase struct {
	cartRepo    cartPort.CartRepository
	productRepo catalogPort.ProductRepository
}

// NewSetQuantityUseCase crea una nueva instancia del caso de uso
func NewSetQuantityUseCase(cartRepo cartPort.CartRepository, productRepo catalogPort.ProductRepository) *SetQuantityUseCase {
	return &SetQuantityUseCase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// Execute valida contra el stock vigente y persiste el carrito actualizado
func (uc *SetQuantityUseCase) Execute(ctx context.Context, customerID, productID string, quantity int) (*response.CartResponse, error) {
	product, err := uc.productRepo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	cart, err := loadOrCreateCart(ctx, uc.cartRepo, customerID)
	if err != nil {
		return nil, err
	}

	if !product.IsPurchasable(quantity) {
		return nil, fmt.Errorf("%w for product %s", catalogEntity.ErrInsufficientStock, product.ProductID)
	}

	if err := cart.SetQuantity(productID, quantity); err != nil {
		return nil, err
	}

	if err := uc.cartRepo.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("error saving cart: %w", err)
	}

	return buildCartResponse(ctx, cart, uc.productRepo)
}
