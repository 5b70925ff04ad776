package usecase

import (
	"context"
	"errors"
	"fmt"

	cartEntity "tienda/src/cart/domain/entity"
	cartPort "tienda/src/cart/domain/port"
)

// ClearCartUseCase caso de uso para vaciar el carrito de un cliente.
// El documento del carrito se conserva vacío, no se elimina
type ClearCartUseCase struct {
	cartRepo cartPort.CartRepository
}

// NewClearCartUseCase crea una nueva instancia del caso de uso
func NewClearCartUseCase(cartRepo cartPort.CartRepository) *ClearCartUseCase {
	return &ClearCartUseCase{
		cartRepo: cartRepo,
	}
}

// Execute vacía las líneas. Un cliente sin carrito ya tiene un carrito
// lógicamente vacío, así que no es un error
func (uc *ClearCartUseCase) Execute(ctx context.Context, customerID string) error {
	cart, err := uc.cartRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, cartEntity.ErrCartNotFound) {
			return nil
		}
		return err
	}

	cart.Clear()

	if err := uc.cartRepo.Save(ctx, cart); err != nil {
		return fmt.Errorf("error saving cart: %w", err)
	}

	return nil
}
