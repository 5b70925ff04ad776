package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cartEntity "tienda/src/cart/domain/entity"
	"tienda/src/order/application/request"
	"tienda/src/order/domain/entity"
)

func validCheckoutRequest() *request.CheckoutCartRequest {
	return &request.CheckoutCartRequest{
		ShippingAddress: request.ShippingAddressRequest{
			Street:     "Av. Amazonas N24-03",
			City:       "Quito",
			Region:     "Pichincha",
			PostalCode: "170135",
			Country:    "EC",
		},
		PaymentMethod: "BANK_TRANSFER",
	}
}

func TestCheckoutCartBuildsOrderFromCartLines(t *testing.T) {
	shirt := mustProduct("Camiseta algodón", 12.50, 10)
	jeans := mustProduct("Pantalón jean", 30.00, 5)
	productRepo := newFakeProductRepo(shirt, jeans)
	orderRepo := newFakeOrderRepo()

	cart, err := cartEntity.NewCart("cust-1")
	require.NoError(t, err)
	require.NoError(t, cart.AddItem(shirt.ProductID, 2))
	require.NoError(t, cart.AddItem(jeans.ProductID, 1))
	cartRepo := newFakeCartRepo(cart)

	createUC := NewCreateOrderUseCase(orderRepo, productRepo, &fakeNotifier{})
	uc := NewCheckoutCartUseCase(cartRepo, createUC)

	resp, err := uc.Execute(context.Background(), "cust-1", "María Pérez", validCheckoutRequest())
	require.NoError(t, err)

	assert.Len(t, resp.Items, 2)
	assert.True(t, decimal.NewFromFloat(55.00).Equal(resp.Total))
	assert.Equal(t, "BANK_TRANSFER", resp.PaymentMethod)

	// El carrito NO se vacía en el checkout: limpiar es acción del cliente
	assert.Len(t, cart.Items, 2)
	assert.Equal(t, 8, shirt.Stock)
}

func TestCheckoutCartMissingCart(t *testing.T) {
	uc := NewCheckoutCartUseCase(newFakeCartRepo(), NewCreateOrderUseCase(newFakeOrderRepo(), newFakeProductRepo(), &fakeNotifier{}))

	_, err := uc.Execute(context.Background(), "cust-1", "", validCheckoutRequest())
	assert.ErrorIs(t, err, cartEntity.ErrCartNotFound)
}

func TestCheckoutCartEmptyCart(t *testing.T) {
	cart, err := cartEntity.NewCart("cust-1")
	require.NoError(t, err)
	cartRepo := newFakeCartRepo(cart)

	uc := NewCheckoutCartUseCase(cartRepo, NewCreateOrderUseCase(newFakeOrderRepo(), newFakeProductRepo(), &fakeNotifier{}))

	_, err = uc.Execute(context.Background(), "cust-1", "", validCheckoutRequest())
	assert.ErrorIs(t, err, entity.ErrOrderMustHaveItems)
}
