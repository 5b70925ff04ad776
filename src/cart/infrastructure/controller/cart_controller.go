package controller

import (
	"errors"
	"log"
	"net/http"

	"tienda/src/cart/application/request"
	"tienda/src/cart/application/usecase"
	cartEntity "tienda/src/cart/domain/entity"
	catalogEntity "tienda/src/catalog/domain/entity"

	"github.com/gin-gonic/gin"
)

// CartController maneja las peticiones HTTP para el carrito
type CartController struct {
	getCartUC     *usecase.GetCartUseCase
	addItemUC     *usecase.AddItemUseCase
	setQuantityUC *usecase.SetQuantityUseCase
	removeItemUC  *usecase.RemoveItemUseCase
	clearCartUC   *usecase.ClearCartUseCase
	summaryUC     *usecase.CartSummaryUseCase
}

// NewCartController crea una nueva instancia del controlador
func NewCartController(
	getCartUC *usecase.GetCartUseCase,
	addItemUC *usecase.AddItemUseCase,
	setQuantityUC *usecase.SetQuantityUseCase,
	removeItemUC *usecase.RemoveItemUseCase,
	clearCartUC *usecase.ClearCartUseCase,
	summaryUC *usecase.CartSummaryUseCase,
) *CartController {
	return &CartController{
		getCartUC:     getCartUC,
		addItemUC:     addItemUC,
		setQuantityUC: setQuantityUC,
		removeItemUC:  removeItemUC,
		clearCartUC:   clearCartUC,
		summaryUC:     summaryUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *CartController) RegisterRoutes(router *gin.RouterGroup) {
	cart := router.Group("/cart")
	{
		cart.GET("", c.GetCart)
		cart.GET("/summary", c.CartSummary)
		cart.POST("/items", c.AddItem)
		cart.PUT("/items/:product_id", c.SetQuantity)
		cart.DELETE("/items/:product_id", c.RemoveItem)
		cart.DELETE("", c.ClearCart)
	}

	log.Println("Rutas Cart disponibles:")
	log.Println("  GET    /api/v1/cart")
	log.Println("  GET    /api/v1/cart/summary")
	log.Println("  POST   /api/v1/cart/items")
	log.Println("  PUT    /api/v1/cart/items/:product_id")
	log.Println("  DELETE /api/v1/cart/items/:product_id")
	log.Println("  DELETE /api/v1/cart")
}

// customerID extrae la identidad del cliente provista por el identity provider.
// El header se acepta tal cual: la emisión y validación de credenciales es
// responsabilidad del colaborador externo
func customerID(ctx *gin.Context) (string, bool) {
	id := ctx.GetHeader("X-Customer-ID")
	if id == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "X-Customer-ID header is required"})
		return "", false
	}
	return id, true
}

// GetCart maneja la obtención del carrito con campos de display
func (c *CartController) GetCart(ctx *gin.Context) {
	if c.getCartUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Cart not available (database not configured)",
		})
		return
	}

	custID, ok := customerID(ctx)
	if !ok {
		return
	}

	resp, err := c.getCartUC.Execute(ctx.Request.Context(), custID)
	if err != nil {
		log.Printf("Error getting cart: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Error getting cart",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// CartSummary maneja el resumen liviano del carrito
func (c *CartController) CartSummary(ctx *gin.Context) {
	if c.summaryUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Cart not available (database not configured)",
		})
		return
	}

	custID, ok := customerID(ctx)
	if !ok {
		return
	}

	resp, err := c.summaryUC.Execute(ctx.Request.Context(), custID)
	if err != nil {
		log.Printf("Error getting cart summary: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Error getting cart summary",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// AddItem maneja el agregado de un producto al carrito (cantidades se suman)
func (c *CartController) AddItem(ctx *gin.Context) {
	if c.addItemUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Cart not available (database not configured)",
		})
		return
	}

	custID, ok := customerID(ctx)
	if !ok {
		return
	}

	var req request.AddCartItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := c.addItemUC.Execute(ctx.Request.Context(), custID, &req)
	if err != nil {
		c.respondCartError(ctx, "Error adding cart item", err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// SetQuantity maneja el reemplazo de la cantidad de una línea
func (c *CartController) SetQuantity(ctx *gin.Context) {
	if c.setQuantityUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Cart not available (database not configured)",
		})
		return
	}

	custID, ok := customerID(ctx)
	if !ok {
		return
	}

	productID := ctx.Param("product_id")

	var req request.SetCartItemQuantityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := c.setQuantityUC.Execute(ctx.Request.Context(), custID, productID, req.Quantity)
	if err != nil {
		c.respondCartError(ctx, "Error setting cart item quantity", err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// RemoveItem maneja la eliminación de una línea (idempotente)
func (c *CartController) RemoveItem(ctx *gin.Context) {
	if c.removeItemUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Cart not available (database not configured)",
		})
		return
	}

	custID, ok := customerID(ctx)
	if !ok {
		return
	}

	productID := ctx.Param("product_id")

	resp, err := c.removeItemUC.Execute(ctx.Request.Context(), custID, productID)
	if err != nil {
		c.respondCartError(ctx, "Error removing cart item", err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// ClearCart maneja el vaciado del carrito
func (c *CartController) ClearCart(ctx *gin.Context) {
	if c.clearCartUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Cart not available (database not configured)",
		})
		return
	}

	custID, ok := customerID(ctx)
	if !ok {
		return
	}

	if err := c.clearCartUC.Execute(ctx.Request.Context(), custID); err != nil {
		log.Printf("Error clearing cart: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Error clearing cart",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"customer_id": custID,
		"cleared":     true,
	})
}

// respondCartError mapea errores de dominio a códigos HTTP
func (c *CartController) respondCartError(ctx *gin.Context, msg string, err error) {
	log.Printf("%s: %v", msg, err)

	switch {
	case errors.Is(err, catalogEntity.ErrProductNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	case errors.Is(err, cartEntity.ErrCartNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Cart not found"})
	case errors.Is(err, catalogEntity.ErrInsufficientStock):
		ctx.JSON(http.StatusConflict, gin.H{"error": "Insufficient stock available"})
	case errors.Is(err, cartEntity.ErrInvalidQuantity), errors.Is(err, cartEntity.ErrProductIDRequired):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   msg,
			"details": err.Error(),
		})
	}
}
