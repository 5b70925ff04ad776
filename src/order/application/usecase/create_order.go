package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"

	catalogPort "tienda/src/catalog/domain/port"
	"tienda/src/order/application/request"
	"tienda/src/order/application/response"
	"tienda/src/order/domain/entity"
	"tienda/src/order/domain/port"
)

// Reintentos ante colisión del código corto. Con 32^8 códigos posibles,
// agotar los intentos indica un problema real en la base, no mala suerte
const maxOrderCodeAttempts = 5

// CreateOrderUseCase caso de uso para crear una orden con descuento
// atómico de stock y compensación
type CreateOrderUseCase struct {
	orderRepo   port.OrderRepository
	productRepo catalogPort.ProductRepository
	notifier    port.OrderNotifier
}

// NewCreateOrderUseCase crea una nueva instancia del caso de uso
func NewCreateOrderUseCase(orderRepo port.OrderRepository, productRepo catalogPort.ProductRepository, notifier port.OrderNotifier) *CreateOrderUseCase {
	return &CreateOrderUseCase{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		notifier:    notifier,
	}
}

// Execute ejecuta la creación de la orden. Flujo todo-o-nada:
// 1. Obtener snapshots del catálogo vigente para todas las líneas
// 2. Crear aggregate Order (en memoria)
// 3. Descontar stock atómicamente por línea; si falla una → compensar las anteriores
// 4. Persistir orden; colisión de código → regenerar y reintentar
// 5. Si falla persistencia → compensar todo el stock descontado
// 6. Notificar (fire-and-forget)
func (uc *CreateOrderUseCase) Execute(ctx context.Context, customerID, customerName string, req *request.CreateOrderRequest) (*response.OrderResponse, error) {
	if len(req.Items) == 0 {
		return nil, entity.ErrOrderMustHaveItems
	}

	// ========================================================================
	// PASO 1: Snapshots inmutables del catálogo al momento de crear la orden.
	// El precio autoritativo es el de la fila actual del catálogo, nunca el
	// que traiga el cliente
	// ========================================================================
	var items []entity.OrderItem
	for _, line := range req.Items {
		product, err := uc.productRepo.FindByID(ctx, line.ProductID)
		if err != nil {
			return nil, fmt.Errorf("error fetching product %s: %w", line.ProductID, err)
		}

		item, err := entity.NewOrderItem("", product.ProductID, product.Name, product.ImageURL, line.Quantity, product.Price)
		if err != nil {
			return nil, fmt.Errorf("error creating order item for product %s: %w", line.ProductID, err)
		}
		items = append(items, *item)
	}

	// ========================================================================
	// PASO 2: Crear entidad Order (aggregate root) EN MEMORIA - AÚN NO persiste
	// ========================================================================
	address := entity.ShippingAddress{
		Street:     req.ShippingAddress.Street,
		City:       req.ShippingAddress.City,
		Region:     req.ShippingAddress.Region,
		PostalCode: req.ShippingAddress.PostalCode,
		Country:    req.ShippingAddress.Country,
	}

	method, err := entity.ParsePaymentMethod(req.PaymentMethod)
	if err != nil {
		return nil, err
	}

	order, err := entity.NewOrder(customerID, customerName, req.VendorID, items, address, method)
	if err != nil {
		return nil, fmt.Errorf("error creating order entity: %w", err)
	}

	// ========================================================================
	// PASO 3: Descontar stock por línea con UPDATE condicional atómico.
	// Si una línea falla se revierte todo lo ya descontado
	// ========================================================================
	decremented := make([]entity.OrderItem, 0, len(order.Items))

	for _, item := range order.Items {
		if err := uc.productRepo.DecrementStock(ctx, item.ProductID, item.Quantity); err != nil {
			uc.compensateDecrementedStock(ctx, decremented, "order_creation_failed")
			return nil, fmt.Errorf("stock rejected for product %s: %w", item.ProductID, err)
		}
		decremented = append(decremented, item)
	}

	// ========================================================================
	// PASO 4: Persistir orden SOLO si todo el stock salió correctamente.
	// Colisión del código corto → regenerar y reintentar internamente
	// ========================================================================
	for attempt := 1; ; attempt++ {
		err = uc.orderRepo.Save(ctx, order)
		if err == nil {
			break
		}

		if errors.Is(err, entity.ErrDuplicateOrderCode) && attempt < maxOrderCodeAttempts {
			order.RegenerateCode()
			continue
		}

		// CRÍTICO: Stock ya fue descontado, debemos revertirlo
		uc.compensateDecrementedStock(ctx, decremented, "order_persistence_failed")
		return nil, fmt.Errorf("error saving order (stock compensated): %w", err)
	}

	// ========================================================================
	// PASO 5: Notificar y construir respuesta
	// ========================================================================
	if uc.notifier != nil {
		uc.notifier.OrderCreated(order)
	}

	return response.NewOrderResponse(order), nil
}

// compensateDecrementedStock devuelve el stock de todas las líneas ya descontadas
func (uc *CreateOrderUseCase) compensateDecrementedStock(ctx context.Context, items []entity.OrderItem, reason string) {
	for _, item := range items {
		if err := uc.productRepo.RestoreStock(ctx, item.ProductID, item.Quantity); err != nil {
			// CRÍTICO: Si falla compensación, log para auditoría manual.
			// No hacer panic ni detener el flujo
			log.Printf("CRITICAL ERROR: Failed to restore stock for product %s (qty %d, reason %s): %v",
				item.ProductID, item.Quantity, reason, err)
		}
	}
}
