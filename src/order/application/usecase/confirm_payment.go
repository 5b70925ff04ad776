package usecase

import (
	"context"
	"fmt"

	"tienda/src/order/application/response"
	"tienda/src/order/domain/port"
)

// ConfirmPaymentUseCase caso de uso para confirmar el pago de una orden
type ConfirmPaymentUseCase struct {
	orderRepo port.OrderRepository
	notifier  port.OrderNotifier
}

// NewConfirmPaymentUseCase crea una nueva instancia del caso de uso
func NewConfirmPaymentUseCase(orderRepo port.OrderRepository, notifier port.OrderNotifier) *ConfirmPaymentUseCase {
	return &ConfirmPaymentUseCase{
		orderRepo: orderRepo,
		notifier:  notifier,
	}
}

// Execute confirma el pago. Idempotente: una orden ya pagada responde OK
// sin tocar la base
func (uc *ConfirmPaymentUseCase) Execute(ctx context.Context, orderID, reference string) (*response.OrderResponse, error) {
	order, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	// Ya pagada → no-op
	if order.PaymentConfirmed {
		return response.NewOrderResponse(order), nil
	}

	if err := order.ConfirmPayment(reference); err != nil {
		return nil, err
	}

	// UPDATE condicional WHERE status = 'PENDING': si otra petición ganó la
	// carrera el repo retorna ErrInvalidTransition
	if err := uc.orderRepo.ConfirmPayment(ctx, order); err != nil {
		return nil, fmt.Errorf("error confirming payment for order %s: %w", orderID, err)
	}

	if uc.notifier != nil {
		uc.notifier.PaymentConfirmed(order)
	}

	return response.NewOrderResponse(order), nil
}
