package criteria

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderPaginationClamping(t *testing.T) {
	crit := NewCriteriaBuilder().WithPagination(0, 0).Build()
	require.NotNil(t, crit.Limit)
	require.NotNil(t, crit.Offset)
	assert.Equal(t, 10, *crit.Limit)
	assert.Equal(t, 0, *crit.Offset)

	crit = NewCriteriaBuilder().WithPagination(3, 25).Build()
	assert.Equal(t, 25, *crit.Limit)
	assert.Equal(t, 50, *crit.Offset)

	// page_size fuera de rango vuelve al default
	crit = NewCriteriaBuilder().WithPagination(1, 500).Build()
	assert.Equal(t, 10, *crit.Limit)
}

func TestFromURLValues(t *testing.T) {
	values := url.Values{}
	values.Set("status", "PENDING")
	values.Set("customer_id", "cust-1")
	values.Set("order_by", "created_at")
	values.Set("order_dir", "desc")
	values.Set("page", "2")
	values.Set("page_size", "20")

	crit := NewCriteriaBuilder().FromURLValues(values).Build()

	require.Len(t, crit.Filters.Items, 2)
	for _, f := range crit.Filters.Items {
		assert.Equal(t, OpEqual, f.Operator)
	}

	assert.Equal(t, "created_at", crit.Order.Field)
	assert.Equal(t, DESC, crit.Order.OrderType)
	assert.Equal(t, 20, *crit.Limit)
	assert.Equal(t, 20, *crit.Offset)
}

func TestFromURLValuesIgnoresReservedAndEmpty(t *testing.T) {
	values := url.Values{}
	values.Set("page", "1")
	values.Set("page_size", "10")
	values.Set("order_by", "")
	values.Set("status", "")

	crit := NewCriteriaBuilder().FromURLValues(values).Build()
	assert.True(t, crit.Filters.IsEmpty())
	assert.True(t, crit.Order.IsEmpty())
}
