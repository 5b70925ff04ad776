package controller

import (
	"errors"
	"log"
	"net/http"

	"tienda/src/catalog/application/request"
	"tienda/src/catalog/application/usecase"
	"tienda/src/catalog/domain/entity"

	"github.com/gin-gonic/gin"
)

// ProductController maneja las peticiones HTTP para el catálogo de productos
type ProductController struct {
	createProductUC *usecase.CreateProductUseCase
	getProductUC    *usecase.GetProductUseCase
	updateStatusUC  *usecase.UpdateProductStatusUseCase
	deleteProductUC *usecase.DeleteProductUseCase
}

// NewProductController crea una nueva instancia del controlador
func NewProductController(
	createProductUC *usecase.CreateProductUseCase,
	getProductUC *usecase.GetProductUseCase,
	updateStatusUC *usecase.UpdateProductStatusUseCase,
	deleteProductUC *usecase.DeleteProductUseCase,
) *ProductController {
	return &ProductController{
		createProductUC: createProductUC,
		getProductUC:    getProductUC,
		updateStatusUC:  updateStatusUC,
		deleteProductUC: deleteProductUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *ProductController) RegisterRoutes(router *gin.RouterGroup) {
	products := router.Group("/products")
	{
		products.POST("", c.CreateProduct)
		products.GET("/:product_id", c.GetProduct)
		products.PATCH("/:product_id/status", c.UpdateProductStatus)
		products.DELETE("/:product_id", c.DeleteProduct)
	}

	log.Println("Rutas Catalog disponibles:")
	log.Println("  POST   /api/v1/products")
	log.Println("  GET    /api/v1/products/:product_id")
	log.Println("  PATCH  /api/v1/products/:product_id/status")
	log.Println("  DELETE /api/v1/products/:product_id")
}

// CreateProduct maneja la creación de un producto
func (c *ProductController) CreateProduct(ctx *gin.Context) {
	if c.createProductUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Catalog not available (database not configured)",
		})
		return
	}

	var req request.CreateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	product, err := c.createProductUC.Execute(ctx.Request.Context(), &req)
	if err != nil {
		log.Printf("Error creating product: %v", err)

		if errors.Is(err, entity.ErrProductNameRequired) ||
			errors.Is(err, entity.ErrInvalidPrice) ||
			errors.Is(err, entity.ErrInvalidStock) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Error creating product",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusCreated, product)
}

// GetProduct maneja la obtención de un producto por ID
func (c *ProductController) GetProduct(ctx *gin.Context) {
	if c.getProductUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Catalog not available (database not configured)",
		})
		return
	}

	productID := ctx.Param("product_id")
	if productID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "product_id is required"})
		return
	}

	product, err := c.getProductUC.Execute(ctx.Request.Context(), productID)
	if err != nil {
		if errors.Is(err, entity.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		log.Printf("Error getting product: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Error getting product",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, product)
}

// UpdateProductStatus maneja la activación/desactivación de un producto
func (c *ProductController) UpdateProductStatus(ctx *gin.Context) {
	if c.updateStatusUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Catalog not available (database not configured)",
		})
		return
	}

	productID := ctx.Param("product_id")
	if productID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "product_id is required"})
		return
	}

	var req request.UpdateProductStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	product, err := c.updateStatusUC.Execute(ctx.Request.Context(), productID, entity.ProductStatus(req.Status))
	if err != nil {
		log.Printf("Error updating product status: %v", err)

		if errors.Is(err, entity.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		if errors.Is(err, entity.ErrInvalidProductStatus) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product status"})
			return
		}

		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Error updating product status",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, product)
}

// DeleteProduct maneja la eliminación de un producto
func (c *ProductController) DeleteProduct(ctx *gin.Context) {
	if c.deleteProductUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Catalog not available (database not configured)",
		})
		return
	}

	productID := ctx.Param("product_id")
	if productID == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "product_id is required"})
		return
	}

	if err := c.deleteProductUC.Execute(ctx.Request.Context(), productID); err != nil {
		log.Printf("Error deleting product: %v", err)

		if errors.Is(err, entity.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Error deleting product",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"product_id": productID,
		"deleted":    true,
	})
}
