package criteria

import (
	"net/url"
	"strconv"
	"strings"
)

// FilterOperator representa un operador de comparación soportado
type FilterOperator string

const (
	OpEqual              FilterOperator = "="
	OpNotEqual           FilterOperator = "!="
	OpGreaterThan        FilterOperator = ">"
	OpGreaterThanOrEqual FilterOperator = ">="
	OpLessThan           FilterOperator = "<"
	OpLessThanOrEqual    FilterOperator = "<="
	OpLike               FilterOperator = "LIKE"
	OpILike              FilterOperator = "ILIKE"
	OpIn                 FilterOperator = "IN"
	OpIsNull             FilterOperator = "NULL"
	OpIsNotNull          FilterOperator = "NOT NULL"
	OpArrayContains      FilterOperator = "ARRAY_CONTAINS"
)

// OrderType representa la dirección de ordenamiento
type OrderType string

const (
	ASC  OrderType = "ASC"
	DESC OrderType = "DESC"
)

// Filter representa una condición individual de filtrado
type Filter struct {
	Field    string
	Operator FilterOperator
	Value    interface{}
}

// NewFilter crea un nuevo filtro
func NewFilter(field string, operator FilterOperator, value interface{}) Filter {
	return Filter{
		Field:    field,
		Operator: operator,
		Value:    value,
	}
}

// Filters representa una colección de filtros combinados con AND
type Filters struct {
	Items []Filter
}

// NewFilters crea una colección de filtros
func NewFilters(filters ...Filter) Filters {
	return Filters{Items: filters}
}

// Add agrega un filtro a la colección
func (f *Filters) Add(filter Filter) {
	f.Items = append(f.Items, filter)
}

// IsEmpty indica si no hay filtros definidos
func (f Filters) IsEmpty() bool {
	return len(f.Items) == 0
}

// Order representa el ordenamiento de los resultados
type Order struct {
	Field     string
	OrderType OrderType
}

// NewOrder crea un nuevo ordenamiento
func NewOrder(field string, orderType OrderType) Order {
	return Order{
		Field:     field,
		OrderType: orderType,
	}
}

// IsEmpty indica si no hay ordenamiento definido
func (o Order) IsEmpty() bool {
	return o.Field == ""
}

// Criteria combina filtros, ordenamiento y paginación
type Criteria struct {
	Filters Filters
	Order   Order
	Limit   *int
	Offset  *int
}

// NewCriteria crea un criteria completo
func NewCriteria(filters Filters, order Order, limit, offset *int) Criteria {
	return Criteria{
		Filters: filters,
		Order:   order,
		Limit:   limit,
		Offset:  offset,
	}
}

// CriteriaBuilder construye criterios de forma fluida
type CriteriaBuilder struct {
	filters Filters
	order   Order
	limit   *int
	offset  *int
}

// NewCriteriaBuilder crea un nuevo builder
func NewCriteriaBuilder() *CriteriaBuilder {
	return &CriteriaBuilder{}
}

// WithFilter agrega un filtro
func (b *CriteriaBuilder) WithFilter(field string, operator FilterOperator, value interface{}) *CriteriaBuilder {
	b.filters.Add(NewFilter(field, operator, value))
	return b
}

// WithOrder define el ordenamiento
func (b *CriteriaBuilder) WithOrder(field string, orderType OrderType) *CriteriaBuilder {
	b.order = NewOrder(field, orderType)
	return b
}

// WithPagination define limit y offset a partir de page y pageSize
func (b *CriteriaBuilder) WithPagination(page, pageSize int) *CriteriaBuilder {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 10
	}
	limit := pageSize
	offset := (page - 1) * pageSize
	b.limit = &limit
	b.offset = &offset
	return b
}

// Parámetros reservados que no se interpretan como filtros de igualdad
var reservedParams = map[string]bool{
	"page":      true,
	"page_size": true,
	"order_by":  true,
	"order_dir": true,
}

// FromURLValues interpreta query parameters estándar:
// filtros de igualdad (campo=valor), order_by/order_dir y page/page_size
func (b *CriteriaBuilder) FromURLValues(values url.Values) *CriteriaBuilder {
	for key, vals := range values {
		if reservedParams[key] || len(vals) == 0 || vals[0] == "" {
			continue
		}
		b.filters.Add(NewFilter(key, OpEqual, vals[0]))
	}

	if orderBy := values.Get("order_by"); orderBy != "" {
		dir := ASC
		if strings.EqualFold(values.Get("order_dir"), "desc") {
			dir = DESC
		}
		b.order = NewOrder(orderBy, dir)
	}

	page := 1
	pageSize := 10
	if p, err := strconv.Atoi(values.Get("page")); err == nil {
		page = p
	}
	if ps, err := strconv.Atoi(values.Get("page_size")); err == nil {
		pageSize = ps
	}
	b.WithPagination(page, pageSize)

	return b
}

// Build construye el criteria final
func (b *CriteriaBuilder) Build() Criteria {
	return NewCriteria(b.filters, b.order, b.limit, b.offset)
}
