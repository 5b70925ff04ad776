package port

import "context"

// CartItemPurger elimina las referencias a un producto de todos los carritos.
// Lo implementa el módulo Cart; el catálogo lo invoca al borrar o desactivar
// un producto (limpieza best-effort)
type CartItemPurger interface {
	RemoveProductFromAllCarts(ctx context.Context, productID string) error
}
