package request

// AddCartItemRequest representa la petición para agregar un producto al carrito
type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// SetCartItemQuantityRequest representa la petición para fijar la cantidad de una línea
type SetCartItemQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}
