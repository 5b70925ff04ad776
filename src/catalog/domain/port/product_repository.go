package port

import (
	"context"

	"tienda/src/catalog/domain/entity"
)

// ProductRepository define los métodos para persistir y consultar productos.
// DecrementStock y RestoreStock son los únicos caminos de escritura sobre el stock:
// nunca se expone un read-then-write a los callers.
type ProductRepository interface {
	Save(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, productID string) (*entity.Product, error)
	UpdateStatus(ctx context.Context, productID string, status entity.ProductStatus) error
	Delete(ctx context.Context, productID string) error

	// DecrementStock descuenta stock de forma condicional y atómica.
	// Falla con ErrInsufficientStock si el producto no está activo
	// o no alcanza el stock; nunca deja stock negativo.
	DecrementStock(ctx context.Context, productID string, quantity int) error

	// RestoreStock devuelve stock descontado (reversa de cancelación)
	RestoreStock(ctx context.Context, productID string, quantity int) error
}
