package usecase

import (
	"context"
	"log"

	"tienda/src/catalog/domain/entity"
	"tienda/src/catalog/domain/port"
)

// UpdateProductStatusUseCase caso de uso para activar/desactivar un producto.
// Al desactivar, purga las referencias del producto en todos los carritos
type UpdateProductStatusUseCase struct {
	productRepo port.ProductRepository
	cartPurger  port.CartItemPurger
}

// NewUpdateProductStatusUseCase crea una nueva instancia del caso de uso
func NewUpdateProductStatusUseCase(productRepo port.ProductRepository, cartPurger port.CartItemPurger) *UpdateProductStatusUseCase {
	return &UpdateProductStatusUseCase{
		productRepo: productRepo,
		cartPurger:  cartPurger,
	}
}

// Execute actualiza el estado del producto y dispara la limpieza de carritos
func (uc *UpdateProductStatusUseCase) Execute(ctx context.Context, productID string, status entity.ProductStatus) (*entity.Product, error) {
	if !status.IsValid() {
		return nil, entity.ErrInvalidProductStatus
	}

	if err := uc.productRepo.UpdateStatus(ctx, productID, status); err != nil {
		return nil, err
	}

	// Limpieza best-effort: si falla, los reads del carrito toleran la
	// referencia colgante como respaldo
	if status == entity.ProductStatusInactive && uc.cartPurger != nil {
		if err := uc.cartPurger.RemoveProductFromAllCarts(ctx, productID); err != nil {
			log.Printf("WARNING: Failed to purge product %s from carts: %v", productID, err)
		}
	}

	return uc.productRepo.FindByID(ctx, productID)
}
