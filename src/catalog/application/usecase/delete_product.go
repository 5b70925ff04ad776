package usecase

import (
	"context"
	"log"

	"tienda/src/catalog/domain/port"
)

// DeleteProductUseCase caso de uso para eliminar un producto del catálogo.
// La eliminación dispara la purga del producto en todos los carritos
type DeleteProductUseCase struct {
	productRepo port.ProductRepository
	cartPurger  port.CartItemPurger
}

// NewDeleteProductUseCase crea una nueva instancia del caso de uso
func NewDeleteProductUseCase(productRepo port.ProductRepository, cartPurger port.CartItemPurger) *DeleteProductUseCase {
	return &DeleteProductUseCase{
		productRepo: productRepo,
		cartPurger:  cartPurger,
	}
}

// Execute elimina el producto y purga sus referencias en carritos
func (uc *DeleteProductUseCase) Execute(ctx context.Context, productID string) error {
	if err := uc.productRepo.Delete(ctx, productID); err != nil {
		return err
	}

	// Limpieza best-effort: si falla, los reads del carrito toleran la
	// referencia colgante como respaldo
	if uc.cartPurger != nil {
		if err := uc.cartPurger.RemoveProductFromAllCarts(ctx, productID); err != nil {
			log.Printf("WARNING: Failed to purge product %s from carts: %v", productID, err)
		}
	}

	return nil
}
