package criteria

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainCriteria "tienda/src/shared/domain/criteria"
)

func TestToSelectSQLWithFiltersOrderAndPagination(t *testing.T) {
	crit := domainCriteria.NewCriteriaBuilder().
		WithFilter("status", domainCriteria.OpEqual, "PENDING").
		WithFilter("customer_id", domainCriteria.OpEqual, "cust-1").
		WithOrder("created_at", domainCriteria.DESC).
		WithPagination(2, 10).
		Build()

	converter := NewSQLCriteriaConverter()
	query, params := converter.ToSelectSQL("SELECT * FROM orders", crit)

	assert.Equal(t,
		"SELECT * FROM orders WHERE status = $1 AND customer_id = $2 ORDER BY created_at DESC LIMIT 10 OFFSET 10",
		query)
	assert.Equal(t, []interface{}{"PENDING", "cust-1"}, params)
}

func TestToSelectSQLILikeWrapsPattern(t *testing.T) {
	crit := domainCriteria.NewCriteriaBuilder().
		WithFilter("customer_name", domainCriteria.OpILike, "maría").
		Build()

	converter := NewSQLCriteriaConverter()
	query, params := converter.ToSelectSQL("SELECT * FROM orders", crit)

	assert.Equal(t, "SELECT * FROM orders WHERE customer_name ILIKE $1", query)
	require.Len(t, params, 1)
	assert.Equal(t, "%maría%", params[0])
}

func TestToCountSQLSkipsOrderAndLimit(t *testing.T) {
	crit := domainCriteria.NewCriteriaBuilder().
		WithFilter("status", domainCriteria.OpEqual, "PAID").
		WithOrder("created_at", domainCriteria.ASC).
		WithPagination(1, 10).
		Build()

	converter := NewSQLCriteriaConverter()
	query, params := converter.ToCountSQL("SELECT COUNT(*) FROM orders", crit)

	assert.Equal(t, "SELECT COUNT(*) FROM orders WHERE status = $1", query)
	assert.Equal(t, []interface{}{"PAID"}, params)
}

func TestValidateAndSanitizeCriteriaDropsUnknownFields(t *testing.T) {
	crit := domainCriteria.NewCriteriaBuilder().
		WithFilter("status", domainCriteria.OpEqual, "PENDING").
		WithFilter("drop_table", domainCriteria.OpEqual, "x").
		WithOrder("evil_field", domainCriteria.ASC).
		WithPagination(1, 10).
		Build()

	helper := NewControllerHelper()
	sanitized := helper.ValidateAndSanitizeCriteria(crit, []string{"status", "created_at"})

	require.Len(t, sanitized.Filters.Items, 1)
	assert.Equal(t, "status", sanitized.Filters.Items[0].Field)

	// Ordenamiento no permitido cae al default
	assert.Equal(t, "created_at", sanitized.Order.Field)
	assert.Equal(t, domainCriteria.DESC, sanitized.Order.OrderType)
}
