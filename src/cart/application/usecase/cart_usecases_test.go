package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tienda/src/cart/application/request"
	cartEntity "tienda/src/cart/domain/entity"
	catalogEntity "tienda/src/catalog/domain/entity"
)

func TestAddItemCreatesCartOnFirstWrite(t *testing.T) {
	shirt := mustProduct("Camiseta algodón", 12.50, 10)
	cartRepo := newFakeCartRepo()
	uc := NewAddItemUseCase(cartRepo, newFakeProductRepo(shirt))

	resp, err := uc.Execute(context.Background(), "cust-1", &request.AddCartItemRequest{
		ProductID: shirt.ProductID,
		Quantity:  2,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.ItemCount)
	assert.True(t, decimal.NewFromFloat(25.00).Equal(resp.Total))
	assert.Equal(t, 1, cartRepo.saveCalls)
	assert.Contains(t, cartRepo.carts, "cust-1")
}

func TestAddItemSumsIntoExistingLine(t *testing.T) {
	shirt := mustProduct("Camiseta algodón", 12.50, 10)
	cartRepo := newFakeCartRepo()
	uc := NewAddItemUseCase(cartRepo, newFakeProductRepo(shirt))

	_, err := uc.Execute(context.Background(), "cust-1", &request.AddCartItemRequest{ProductID: shirt.ProductID, Quantity: 2})
	require.NoError(t, err)

	resp, err := uc.Execute(context.Background(), "cust-1", &request.AddCartItemRequest{ProductID: shirt.ProductID, Quantity: 3})
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.Equal(t, 5, resp.Items[0].Quantity)
}

func TestAddItemValidatesMergedQuantityAgainstStock(t *testing.T) {
	shirt := mustProduct("Camiseta algodón", 12.50, 5)
	cartRepo := newFakeCartRepo()
	uc := NewAddItemUseCase(cartRepo, newFakeProductRepo(shirt))

	_, err := uc.Execute(context.Background(), "cust-1", &request.AddCartItemRequest{ProductID: shirt.ProductID, Quantity: 4})
	require.NoError(t, err)

	// 4 ya en carrito + 2 nuevos > 5 de stock
	_, err = uc.Execute(context.Background(), "cust-1", &request.AddCartItemRequest{ProductID: shirt.ProductID, Quantity: 2})
	assert.ErrorIs(t, err, catalogEntity.ErrInsufficientStock)
}

func TestAddItemRejectsInactiveProduct(t *testing.T) {
	shirt := mustProduct("Camiseta algodón", 12.50, 10)
	shirt.Status = catalogEntity.ProductStatusInactive
	uc := NewAddItemUseCase(newFakeCartRepo(), newFakeProductRepo(shirt))

	_, err := uc.Execute(context.Background(), "cust-1", &request.AddCartItemRequest{ProductID: shirt.ProductID, Quantity: 1})
	assert.ErrorIs(t, err, catalogEntity.ErrInsufficientStock)
}

func TestSetQuantityReplacesLine(t *testing.T) {
	shirt := mustProduct("Camiseta algodón", 12.50, 10)
	cartRepo := newFakeCartRepo()

	addUC := NewAddItemUseCase(cartRepo, newFakeProductRepo(shirt))
	_, err := addUC.Execute(context.Background(), "cust-1", &request.AddCartItemRequest{ProductID: shirt.ProductID, Quantity: 4})
	require.NoError(t, err)

	setUC := NewSetQuantityUseCase(cartRepo, newFakeProductRepo(shirt))
	resp, err := setUC.Execute(context.Background(), "cust-1", shirt.ProductID, 2)
	require.NoError(t, err)

	require.Len(t, resp.Items, 1)
	assert.Equal(t, 2, resp.Items[0].Quantity)
}

func TestRemoveItemMissingLineIsNoOp(t *testing.T) {
	shirt := mustProduct("Camiseta algodón", 12.50, 10)
	cart, err := cartEntity.NewCart("cust-1")
	require.NoError(t, err)
	require.NoError(t, cart.AddItem(shirt.ProductID, 2))
	cartRepo := newFakeCartRepo(cart)

	uc := NewRemoveItemUseCase(cartRepo, newFakeProductRepo(shirt))

	resp, err := uc.Execute(context.Background(), "cust-1", "never-added")
	require.NoError(t, err)
	assert.Equal(t, 2, resp.ItemCount)
	// Sin cambios, sin escritura
	assert.Equal(t, 0, cartRepo.saveCalls)
}

func TestRemoveItemMissingCart(t *testing.T) {
	uc := NewRemoveItemUseCase(newFakeCartRepo(), newFakeProductRepo())

	_, err := uc.Execute(context.Background(), "cust-1", "prod-1")
	assert.ErrorIs(t, err, cartEntity.ErrCartNotFound)
}

func TestGetCartMissingCartReturnsEmpty(t *testing.T) {
	uc := NewGetCartUseCase(newFakeCartRepo(), newFakeProductRepo())

	resp, err := uc.Execute(context.Background(), "cust-1")
	require.NoError(t, err)
	assert.Empty(t, resp.Items)
	assert.Equal(t, 0, resp.ItemCount)
	assert.True(t, decimal.Zero.Equal(resp.Total))
}

func TestGetCartDropsDanglingReferences(t *testing.T) {
	shirt := mustProduct("Camiseta algodón", 12.50, 10)
	cart, err := cartEntity.NewCart("cust-1")
	require.NoError(t, err)
	require.NoError(t, cart.AddItem(shirt.ProductID, 2))
	require.NoError(t, cart.AddItem("deleted-product", 3))
	cartRepo := newFakeCartRepo(cart)

	uc := NewGetCartUseCase(cartRepo, newFakeProductRepo(shirt))

	resp, err := uc.Execute(context.Background(), "cust-1")
	require.NoError(t, err)

	// La referencia colgante se descarta del display, la línea válida queda
	require.Len(t, resp.Items, 1)
	assert.Equal(t, shirt.ProductID, resp.Items[0].ProductID)
	assert.Equal(t, 2, resp.ItemCount)
	assert.True(t, decimal.NewFromFloat(25.00).Equal(resp.Total))
}

func TestCartSummaryWithDanglingReference(t *testing.T) {
	shirt := mustProduct("Camiseta algodón", 12.50, 10)
	cart, err := cartEntity.NewCart("cust-1")
	require.NoError(t, err)
	require.NoError(t, cart.AddItem(shirt.ProductID, 1))
	require.NoError(t, cart.AddItem("deleted-product", 5))
	cartRepo := newFakeCartRepo(cart)

	uc := NewCartSummaryUseCase(cartRepo, newFakeProductRepo(shirt))

	resp, err := uc.Execute(context.Background(), "cust-1")
	require.NoError(t, err)

	assert.Equal(t, 1, resp.ItemCount)
	assert.True(t, decimal.NewFromFloat(12.50).Equal(resp.Total))
	assert.False(t, resp.IsEmpty)
}

func TestCartSummaryMissingCart(t *testing.T) {
	uc := NewCartSummaryUseCase(newFakeCartRepo(), newFakeProductRepo())

	resp, err := uc.Execute(context.Background(), "cust-1")
	require.NoError(t, err)
	assert.True(t, resp.IsEmpty)
	assert.Equal(t, 0, resp.ItemCount)
}

func TestClearCartMissingCartIsNoOp(t *testing.T) {
	uc := NewClearCartUseCase(newFakeCartRepo())
	assert.NoError(t, uc.Execute(context.Background(), "cust-1"))
}

func TestClearCartEmptiesLines(t *testing.T) {
	shirt := mustProduct("Camiseta algodón", 12.50, 10)
	cart, err := cartEntity.NewCart("cust-1")
	require.NoError(t, err)
	require.NoError(t, cart.AddItem(shirt.ProductID, 2))
	cartRepo := newFakeCartRepo(cart)

	uc := NewClearCartUseCase(cartRepo)
	require.NoError(t, uc.Execute(context.Background(), "cust-1"))

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, 1, cartRepo.saveCalls)
}
