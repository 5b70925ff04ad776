package usecase

import (
	"context"
	"fmt"

	cartPort "tienda/src/cart/domain/port"
	"tienda/src/order/application/request"
	"tienda/src/order/application/response"
	"tienda/src/order/domain/entity"
)

// CheckoutCartUseCase caso de uso de checkout: convierte el carrito del
// cliente en una orden. El carrito NO se vacía: limpiar es una acción
// separada del cliente
type CheckoutCartUseCase struct {
	cartRepo      cartPort.CartRepository
	createOrderUC *CreateOrderUseCase
}

// NewCheckoutCartUseCase crea una nueva instancia del caso de uso
func NewCheckoutCartUseCase(cartRepo cartPort.CartRepository, createOrderUC *CreateOrderUseCase) *CheckoutCartUseCase {
	return &CheckoutCartUseCase{
		cartRepo:      cartRepo,
		createOrderUC: createOrderUC,
	}
}

// Execute arma las líneas desde el carrito y delega al flujo de creación
func (uc *CheckoutCartUseCase) Execute(ctx context.Context, customerID, customerName string, req *request.CheckoutCartRequest) (*response.OrderResponse, error) {
	cart, err := uc.cartRepo.FindByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("error loading cart for checkout: %w", err)
	}

	if cart.IsEmpty() {
		return nil, entity.ErrOrderMustHaveItems
	}

	lines := make([]request.OrderLineRequest, 0, len(cart.Items))
	for _, item := range cart.Items {
		lines = append(lines, request.OrderLineRequest{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	createReq := &request.CreateOrderRequest{
		Items:           lines,
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		VendorID:        req.VendorID,
	}

	return uc.createOrderUC.Execute(ctx, customerID, customerName, createReq)
}
