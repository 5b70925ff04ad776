package usecase

import (
	"context"
	"errors"
	"fmt"

	"tienda/src/cart/application/request"
	"tienda/src/cart/application/response"
	cartEntity "tienda/src/cart/domain/entity"
	cartPort "tienda/src/cart/domain/port"
	catalogEntity "tienda/src/catalog/domain/entity"
	catalogPort "tienda/src/catalog/domain/port"
)

// AddItemUseCase caso de uso para agregar un producto al carrito.
// Política de merge: "add" SUMA cantidades sobre la línea existente;
// el reemplazo explícito es responsabilidad de SetQuantityUseCase
type AddItemUseCase struct {
	cartRepo    cartPort.CartRepository
	productRepo catalogPort.ProductRepository
}

// NewAddItemUseCase crea una nueva instancia del caso de uso
func NewAddItemUseCase(cartRepo cartPort.CartRepository, productRepo catalogPort.ProductRepository) *AddItemUseCase {
	return &AddItemUseCase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

// Execute valida contra el stock vigente y persiste el carrito actualizado.
// La validación de stock aquí es un soft-check: se repite al crear la orden
// porque el stock puede cambiar entre el add y el checkout
func (uc *AddItemUseCase) Execute(ctx context.Context, customerID string, req *request.AddCartItemRequest) (*response.CartResponse, error) {
	product, err := uc.productRepo.FindByID(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}

	cart, err := loadOrCreateCart(ctx, uc.cartRepo, customerID)
	if err != nil {
		return nil, err
	}

	// Validar la cantidad RESULTANTE de la línea, no solo la agregada
	mergedQty := cart.QuantityOf(req.ProductID) + req.Quantity
	if !product.IsPurchasable(mergedQty) {
		return nil, fmt.Errorf("%w for product %s", catalogEntity.ErrInsufficientStock, product.ProductID)
	}

	if err := cart.AddItem(req.ProductID, req.Quantity); err != nil {
		return nil, err
	}

	if err := uc.cartRepo.Save(ctx, cart); err != nil {
		return nil, fmt.Errorf("error saving cart: %w", err)
	}

	return buildCartResponse(ctx, cart, uc.productRepo)
}

// loadOrCreateCart retorna el carrito existente del cliente o uno vacío
// todavía no persistido (se persiste recién con la primera escritura)
func loadOrCreateCart(ctx context.Context, cartRepo cartPort.CartRepository, customerID string) (*cartEntity.Cart, error) {
	cart, err := cartRepo.FindByCustomer(ctx, customerID)
	if err == nil {
		return cart, nil
	}
	if errors.Is(err, cartEntity.ErrCartNotFound) {
		return cartEntity.NewCart(customerID)
	}
	return nil, err
}
