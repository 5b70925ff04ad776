package usecase

import (
	"context"

	"tienda/src/catalog/domain/entity"
	"tienda/src/catalog/domain/port"
)

// GetProductUseCase caso de uso para obtener un producto por ID
type GetProductUseCase struct {
	productRepo port.ProductRepository
}

// NewGetProductUseCase crea una nueva instancia del caso de uso
func NewGetProductUseCase(productRepo port.ProductRepository) *GetProductUseCase {
	return &GetProductUseCase{
		productRepo: productRepo,
	}
}

// Execute busca el producto
func (uc *GetProductUseCase) Execute(ctx context.Context, productID string) (*entity.Product, error) {
	return uc.productRepo.FindByID(ctx, productID)
}
