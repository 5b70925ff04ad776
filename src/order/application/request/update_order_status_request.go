package request

// UpdateOrderStatusRequest representa el cambio genérico de estado
type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
