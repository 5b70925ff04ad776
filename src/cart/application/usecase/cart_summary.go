package usecase

import (
	"context"
	"errors"

	"tienda/src/cart/application/response"
	cartEntity "tienda/src/cart/domain/entity"
	cartPort "tienda/src/cart/domain/port"
	catalogPort "tienda/src/catalog/domain/port"

	"github.com/shopspring/decimal"
)

// CartSummaryUseCase caso de uso para el resumen liviano del carrito
// (previews de asistentes/chat, distinto del retrieve completo)
type CartSummaryUseCase struct {
	cartRepo    cartPort.CartRepository
	productRepo catalogPort.ProductRepository
}

// NewCartSummaryUseCase crea una nueva instancia del caso de uso
func NewCartSummaryUseCase(cartRepo cartPort.CartRepository, productRepo catalogPort.ProductRepository) *CartSummaryUseCase {
	return &CartSummaryUseCase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// Execute calcula el resumen con precios vigentes del catálogo (join al leer,
// nunca precios cacheados). Referencias colgantes contribuyen cero
func (uc *CartSummaryUseCase) Execute(ctx context.Context, customerID string) (*response.CartSummaryResponse, error) {
	cart, err := uc.cartRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		if errors.Is(err, cartEntity.ErrCartNotFound) {
			return &response.CartSummaryResponse{
				ItemCount: 0,
				Total:     decimal.Zero,
				IsEmpty:   true,
			}, nil
		}
		return nil, err
	}

	view, err := buildCartResponse(ctx, cart, uc.productRepo)
	if err != nil {
		return nil, err
	}

	return &response.CartSummaryResponse{
		ItemCount: view.ItemCount,
		Total:     view.Total,
		IsEmpty:   view.ItemCount == 0,
	}, nil
}
