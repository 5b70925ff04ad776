package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tienda/src/order/application/request"
	"tienda/src/order/domain/entity"
)

func TestConfirmPaymentPersistsAndNotifies(t *testing.T) {
	shirt := mustProduct("Camiseta algodón", 12.50, 10)
	productRepo := newFakeProductRepo(shirt)
	orderRepo := newFakeOrderRepo()

	order := createTestOrder(t, orderRepo, productRepo,
		request.OrderLineRequest{ProductID: shirt.ProductID, Quantity: 1},
	)

	notifier := &fakeNotifier{}
	uc := NewConfirmPaymentUseCase(orderRepo, notifier)

	resp, err := uc.Execute(context.Background(), order.OrderID, "ref-001")
	require.NoError(t, err)

	assert.Equal(t, "PAID", resp.Status)
	assert.True(t, resp.PaymentConfirmed)
	assert.Equal(t, "ref-001", resp.PaymentReference)
	require.NotNil(t, resp.PaidAt)
	assert.Equal(t, 1, orderRepo.paymentSaves)
	assert.Equal(t, []string{"paid"}, notifier.events)
}

func TestConfirmPaymentIdempotentSkipsPersistence(t *testing.T) {
	shirt := mustProduct("Camiseta algodón", 12.50, 10)
	productRepo := newFakeProductRepo(shirt)
	orderRepo := newFakeOrderRepo()

	order := createTestOrder(t, orderRepo, productRepo,
		request.OrderLineRequest{ProductID: shirt.ProductID, Quantity: 1},
	)

	notifier := &fakeNotifier{}
	uc := NewConfirmPaymentUseCase(orderRepo, notifier)

	_, err := uc.Execute(context.Background(), order.OrderID, "ref-001")
	require.NoError(t, err)

	// Segunda confirmación: responde OK sin escribir ni notificar de nuevo
	resp, err := uc.Execute(context.Background(), order.OrderID, "ref-999")
	require.NoError(t, err)
	assert.Equal(t, "ref-001", resp.PaymentReference)
	assert.Equal(t, 1, orderRepo.paymentSaves)
	assert.Equal(t, []string{"paid"}, notifier.events)
}

func TestConfirmPaymentRejectedOnCanceledOrder(t *testing.T) {
	shirt := mustProduct("Camiseta algodón", 12.50, 10)
	productRepo := newFakeProductRepo(shirt)
	orderRepo := newFakeOrderRepo()

	order := createTestOrder(t, orderRepo, productRepo,
		request.OrderLineRequest{ProductID: shirt.ProductID, Quantity: 1},
	)
	order.Status = entity.OrderStatusCanceled

	uc := NewConfirmPaymentUseCase(orderRepo, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), order.OrderID, "ref-001")
	assert.ErrorIs(t, err, entity.ErrInvalidTransition)
}

func TestConfirmShipmentFlow(t *testing.T) {
	shirt := mustProduct("Camiseta algodón", 12.50, 10)
	productRepo := newFakeProductRepo(shirt)
	orderRepo := newFakeOrderRepo()

	order := createTestOrder(t, orderRepo, productRepo,
		request.OrderLineRequest{ProductID: shirt.ProductID, Quantity: 1},
	)
	order.Status = entity.OrderStatusProcessing

	notifier := &fakeNotifier{}
	uc := NewConfirmShipmentUseCase(orderRepo, notifier)

	resp, err := uc.Execute(context.Background(), order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, "SHIPPED", resp.Status)
	assert.True(t, resp.ShipmentConfirmed)
	assert.Equal(t, 1, orderRepo.shipmentSaves)

	// Idempotente
	_, err = uc.Execute(context.Background(), order.OrderID)
	require.NoError(t, err)
	assert.Equal(t, 1, orderRepo.shipmentSaves)
	assert.Equal(t, []string{"shipped"}, notifier.events)
}
