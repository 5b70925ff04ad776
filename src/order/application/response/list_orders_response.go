package response

// ListOrdersResponse representa el listado paginado de órdenes
type ListOrdersResponse struct {
	Orders     []*OrderResponse `json:"orders"`
	TotalCount int              `json:"total_count"`
	Page       int              `json:"page"`
	PageSize   int              `json:"page_size"`
}
