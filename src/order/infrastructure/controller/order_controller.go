package controller

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	cartEntity "tienda/src/cart/domain/entity"
	catalogEntity "tienda/src/catalog/domain/entity"
	"tienda/src/order/application/request"
	"tienda/src/order/application/usecase"
	"tienda/src/order/domain/entity"
	sharedcriteria "tienda/src/shared/infrastructure/criteria"
)

// Campos consultables vía query params en el listado
var orderListAllowedFields = []string{"status", "customer_id", "vendor_id", "payment_method", "created_at"}

// OrderController maneja las peticiones HTTP para órdenes
type OrderController struct {
	createOrderUC     *usecase.CreateOrderUseCase
	checkoutCartUC    *usecase.CheckoutCartUseCase
	getOrderUC        *usecase.GetOrderUseCase
	listOrdersUC      *usecase.ListOrdersUseCase
	searchOrdersUC    *usecase.SearchOrdersUseCase
	confirmPaymentUC  *usecase.ConfirmPaymentUseCase
	confirmShipmentUC *usecase.ConfirmShipmentUseCase
	updateStatusUC    *usecase.UpdateOrderStatusUseCase
	cancelOrderUC     *usecase.CancelOrderUseCase
	deleteOrderUC     *usecase.DeleteOrderUseCase
	criteriaHelper    *sharedcriteria.ControllerHelper
}

// NewOrderController crea una nueva instancia del controlador
func NewOrderController(
	createOrderUC *usecase.CreateOrderUseCase,
	checkoutCartUC *usecase.CheckoutCartUseCase,
	getOrderUC *usecase.GetOrderUseCase,
	listOrdersUC *usecase.ListOrdersUseCase,
	searchOrdersUC *usecase.SearchOrdersUseCase,
	confirmPaymentUC *usecase.ConfirmPaymentUseCase,
	confirmShipmentUC *usecase.ConfirmShipmentUseCase,
	updateStatusUC *usecase.UpdateOrderStatusUseCase,
	cancelOrderUC *usecase.CancelOrderUseCase,
	deleteOrderUC *usecase.DeleteOrderUseCase,
) *OrderController {
	return &OrderController{
		createOrderUC:     createOrderUC,
		checkoutCartUC:    checkoutCartUC,
		getOrderUC:        getOrderUC,
		listOrdersUC:      listOrdersUC,
		searchOrdersUC:    searchOrdersUC,
		confirmPaymentUC:  confirmPaymentUC,
		confirmShipmentUC: confirmShipmentUC,
		updateStatusUC:    updateStatusUC,
		cancelOrderUC:     cancelOrderUC,
		deleteOrderUC:     deleteOrderUC,
		criteriaHelper:    sharedcriteria.NewControllerHelper(),
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *OrderController) RegisterRoutes(router *gin.RouterGroup) {
	orders := router.Group("/orders")
	{
		orders.POST("", c.CreateOrder)
		orders.POST("/checkout", c.CheckoutCart)
		orders.GET("", c.ListOrders)
		orders.GET("/search", c.SearchOrders)
		orders.GET("/:order_id", c.GetOrder)
		orders.POST("/:order_id/confirm-payment", c.ConfirmPayment)
		orders.POST("/:order_id/confirm-shipment", c.ConfirmShipment)
		orders.PATCH("/:order_id/status", c.UpdateStatus)
		orders.POST("/:order_id/cancel", c.CancelOrder)
		orders.DELETE("/:order_id", c.DeleteOrder)
	}

	log.Println("Rutas Order disponibles:")
	log.Println("  POST   /api/v1/orders")
	log.Println("  POST   /api/v1/orders/checkout")
	log.Println("  GET    /api/v1/orders")
	log.Println("  GET    /api/v1/orders/search")
	log.Println("  GET    /api/v1/orders/:order_id")
	log.Println("  POST   /api/v1/orders/:order_id/confirm-payment")
	log.Println("  POST   /api/v1/orders/:order_id/confirm-shipment")
	log.Println("  PATCH  /api/v1/orders/:order_id/status")
	log.Println("  POST   /api/v1/orders/:order_id/cancel")
	log.Println("  DELETE /api/v1/orders/:order_id")
}

// customerIdentity extrae la identidad del cliente de los headers emitidos
// por el identity provider externo. El nombre es opcional y se guarda como
// snapshot en la orden
func customerIdentity(ctx *gin.Context) (string, string, bool) {
	id := ctx.GetHeader("X-Customer-ID")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "X-Customer-ID header is required"})
		return "", "", false
	}
	return id, ctx.GetHeader("X-Customer-Name"), true
}

// CreateOrder maneja la creación de una orden con líneas explícitas
func (c *OrderController) CreateOrder(ctx *gin.Context) {
	if c.createOrderUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Order creation not available (database not configured)",
		})
		return
	}

	custID, custName, ok := customerIdentity(ctx)
	if !ok {
		return
	}

	var req request.CreateOrderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := c.createOrderUC.Execute(ctx.Request.Context(), custID, custName, &req)
	if err != nil {
		c.respondOrderError(ctx, "Error creating order", err)
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}

// CheckoutCart maneja la creación de una orden desde el carrito del cliente
func (c *OrderController) CheckoutCart(ctx *gin.Context) {
	if c.checkoutCartUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Checkout not available (database not configured)",
		})
		return
	}

	custID, custName, ok := customerIdentity(ctx)
	if !ok {
		return
	}

	var req request.CheckoutCartRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := c.checkoutCartUC.Execute(ctx.Request.Context(), custID, custName, &req)
	if err != nil {
		c.respondOrderError(ctx, "Error checking out cart", err)
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}

// ListOrders maneja el listado con filtros (status, customer_id) y paginación
func (c *OrderController) ListOrders(ctx *gin.Context) {
	if c.listOrdersUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Order listing not available (database not configured)",
		})
		return
	}

	crit := c.criteriaHelper.BuildCriteriaFromQuery(ctx).Build()
	crit = c.criteriaHelper.ValidateAndSanitizeCriteria(crit, orderListAllowedFields)

	resp, err := c.listOrdersUC.Execute(ctx.Request.Context(), crit)
	if err != nil {
		log.Printf("Error listing orders: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Error listing orders",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// SearchOrders maneja la búsqueda por nombre de cliente (substring,
// case-insensitive, contra el snapshot guardado en la orden)
func (c *OrderController) SearchOrders(ctx *gin.Context) {
	if c.searchOrdersUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Order search not available (database not configured)",
		})
		return
	}

	customerName := ctx.Query("customer_name")
	if customerName == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "customer_name query parameter is required"})
		return
	}

	page := parsePositiveParam(ctx.Query("page"), 1)
	pageSize := parsePositiveParam(ctx.Query("page_size"), 10)

	resp, err := c.searchOrdersUC.Execute(ctx.Request.Context(), customerName, page, pageSize)
	if err != nil {
		log.Printf("Error searching orders: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Error searching orders",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// GetOrder maneja la obtención de una orden por ID
func (c *OrderController) GetOrder(ctx *gin.Context) {
	if c.getOrderUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Order retrieval not available (database not configured)",
		})
		return
	}

	resp, err := c.getOrderUC.Execute(ctx.Request.Context(), ctx.Param("order_id"))
	if err != nil {
		c.respondOrderError(ctx, "Error getting order", err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// ConfirmPayment maneja la confirmación de pago (idempotente)
func (c *OrderController) ConfirmPayment(ctx *gin.Context) {
	if c.confirmPaymentUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Payment confirmation not available (database not configured)",
		})
		return
	}

	// El body es opcional: sin body se confirma con referencia vacía
	var req request.ConfirmPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := c.confirmPaymentUC.Execute(ctx.Request.Context(), ctx.Param("order_id"), req.Reference)
	if err != nil {
		c.respondOrderError(ctx, "Error confirming payment", err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// ConfirmShipment maneja la confirmación de envío (idempotente)
func (c *OrderController) ConfirmShipment(ctx *gin.Context) {
	if c.confirmShipmentUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Shipment confirmation not available (database not configured)",
		})
		return
	}

	resp, err := c.confirmShipmentUC.Execute(ctx.Request.Context(), ctx.Param("order_id"))
	if err != nil {
		c.respondOrderError(ctx, "Error confirming shipment", err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// UpdateStatus maneja transiciones genéricas validadas contra el grafo
func (c *OrderController) UpdateStatus(ctx *gin.Context) {
	if c.updateStatusUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Status update not available (database not configured)",
		})
		return
	}

	var req request.UpdateOrderStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := c.updateStatusUC.Execute(ctx.Request.Context(), ctx.Param("order_id"), req.Status)
	if err != nil {
		c.respondOrderError(ctx, "Error updating order status", err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// CancelOrder maneja la cancelación y devolución de stock
func (c *OrderController) CancelOrder(ctx *gin.Context) {
	if c.cancelOrderUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Order cancellation not available (database not configured)",
		})
		return
	}

	resp, err := c.cancelOrderUC.Execute(ctx.Request.Context(), ctx.Param("order_id"))
	if err != nil {
		c.respondOrderError(ctx, "Error canceling order", err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// DeleteOrder maneja la purga administrativa de una orden
func (c *OrderController) DeleteOrder(ctx *gin.Context) {
	if c.deleteOrderUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Order deletion not available (database not configured)",
		})
		return
	}

	orderID := ctx.Param("order_id")
	if err := c.deleteOrderUC.Execute(ctx.Request.Context(), orderID); err != nil {
		c.respondOrderError(ctx, "Error deleting order", err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"order_id": orderID,
		"deleted":  true,
	})
}

// respondOrderError mapea errores de dominio a códigos HTTP
func (c *OrderController) respondOrderError(ctx *gin.Context, msg string, err error) {
	log.Printf("%s: %v", msg, err)

	switch {
	case errors.Is(err, entity.ErrOrderNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
	case errors.Is(err, catalogEntity.ErrProductNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	case errors.Is(err, cartEntity.ErrCartNotFound):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty or does not exist"})
	case errors.Is(err, catalogEntity.ErrInsufficientStock):
		ctx.JSON(http.StatusConflict, gin.H{"error": "Insufficient stock available", "details": err.Error()})
	case errors.Is(err, entity.ErrInvalidTransition):
		ctx.JSON(http.StatusConflict, gin.H{"error": "Invalid order status transition"})
	case errors.Is(err, entity.ErrOrderMustHaveItems),
		errors.Is(err, entity.ErrInvalidQuantity),
		errors.Is(err, entity.ErrMissingAddressField),
		errors.Is(err, entity.ErrInvalidPaymentMethod):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   msg,
			"details": err.Error(),
		})
	}
}

// parsePositiveParam parsea parámetros numéricos de paginación
func parsePositiveParam(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	var n int
	if _, err := fmt.Sscanf(s, "%d", &n); err != nil || n < 1 {
		return fallback
	}
	return n
}
