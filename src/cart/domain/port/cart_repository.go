package port

import (
	"context"

	"tienda/src/cart/domain/entity"
)

// CartRepository define los métodos para persistir Carts
type CartRepository interface {
	// FindByCustomer retorna el carrito del cliente o ErrCartNotFound
	FindByCustomer(ctx context.Context, customerID string) (*entity.Cart, error)

	// Save persiste el aggregate completo (upsert del carrito + reemplazo de líneas)
	Save(ctx context.Context, cart *entity.Cart) error

	// RemoveProductFromAllCarts purga las líneas de un producto en todos
	// los carritos (limpieza reactiva ante borrado/desactivación en catálogo)
	RemoveProductFromAllCarts(ctx context.Context, productID string) error
}
