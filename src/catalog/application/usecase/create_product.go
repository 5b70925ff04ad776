package usecase

import (
	"context"
	"fmt"

	"tienda/src/catalog/application/request"
	"tienda/src/catalog/domain/entity"
	"tienda/src/catalog/domain/port"
)

// CreateProductUseCase caso de uso para crear un producto
type CreateProductUseCase struct {
	productRepo port.ProductRepository
}

// NewCreateProductUseCase crea una nueva instancia del caso de uso
func NewCreateProductUseCase(productRepo port.ProductRepository) *CreateProductUseCase {
	return &CreateProductUseCase{
		productRepo: productRepo,
	}
}

// Execute crea y persiste el producto
func (uc *CreateProductUseCase) Execute(ctx context.Context, req *request.CreateProductRequest) (*entity.Product, error) {
	product, err := entity.NewProduct(req.Name, req.Price, req.Stock, req.ImageURL)
	if err != nil {
		return nil, err
	}

	if err := uc.productRepo.Save(ctx, product); err != nil {
		return nil, fmt.Errorf("error saving product: %w", err)
	}

	return product, nil
}
