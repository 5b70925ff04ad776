package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tienda/src/order/application/response"
	"tienda/src/order/application/usecase"
	"tienda/src/order/domain/entity"
	"tienda/src/shared/domain/criteria"
)

// fakeOrderRepo implementa port.OrderRepository en memoria para probar el
// controller de punta a punta con gin
type fakeOrderRepo struct {
	orders map[string]*entity.Order
}

func newFakeOrderRepo(orders ...*entity.Order) *fakeOrderRepo {
	repo := &fakeOrderRepo{orders: make(map[string]*entity.Order)}
	for _, order := range orders {
		repo.orders[order.OrderID] = order
	}
	return repo
}

func (r *fakeOrderRepo) Save(ctx context.Context, order *entity.Order) error {
	r.orders[order.OrderID] = order
	return nil
}

func (r *fakeOrderRepo) FindByID(ctx context.Context, orderID string) (*entity.Order, error) {
	order, ok := r.orders[orderID]
	if !ok {
		return nil, entity.ErrOrderNotFound
	}
	return order, nil
}

func (r *fakeOrderRepo) List(ctx context.Context, crit criteria.Criteria) ([]*entity.Order, int, error) {
	return nil, 0, nil
}

func (r *fakeOrderRepo) ConfirmPayment(ctx context.Context, order *entity.Order) error {
	return nil
}

func (r *fakeOrderRepo) ConfirmShipment(ctx context.Context, order *entity.Order) error {
	return nil
}

func (r *fakeOrderRepo) UpdateStatus(ctx context.Context, orderID string, from, to entity.OrderStatus) error {
	return nil
}

func (r *fakeOrderRepo) Cancel(ctx context.Context, orderID string) error {
	return nil
}

func (r *fakeOrderRepo) Delete(ctx context.Context, orderID string) error {
	return nil
}

func pendingOrder(t *testing.T) *entity.Order {
	t.Helper()

	item, err := entity.NewOrderItem("", "prod-1", "Camiseta algodón", "", 2, decimal.NewFromFloat(12.50))
	require.NoError(t, err)

	address := entity.ShippingAddress{
		Street:     "Av. Amazonas N24-03",
		City:       "Quito",
		Region:     "Pichincha",
		PostalCode: "170135",
		Country:    "EC",
	}

	order, err := entity.NewOrder("cust-1", "María Pérez", "", []entity.OrderItem{*item}, address, entity.PaymentMethodCash)
	require.NoError(t, err)
	return order
}

func newPaymentRouter(repo *fakeOrderRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)

	confirmPaymentUC := usecase.NewConfirmPaymentUseCase(repo, nil)
	ctrl := NewOrderController(nil, nil, nil, nil, nil, confirmPaymentUC, nil, nil, nil, nil)

	router := gin.New()
	ctrl.RegisterRoutes(router.Group("/api/v1"))
	return router
}

func TestConfirmPaymentWithoutBody(t *testing.T) {
	order := pendingOrder(t)
	router := newPaymentRouter(newFakeOrderRepo(order))

	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders/"+order.OrderID+"/confirm-payment", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp response.OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "PAID", resp.Status)
	assert.True(t, resp.PaymentConfirmed)
	assert.Empty(t, resp.PaymentReference)
}

func TestConfirmPaymentWithReference(t *testing.T) {
	order := pendingOrder(t)
	router := newPaymentRouter(newFakeOrderRepo(order))

	body := strings.NewReader(`{"reference": "ref-001"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders/"+order.OrderID+"/confirm-payment", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp response.OrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "PAID", resp.Status)
	assert.Equal(t, "ref-001", resp.PaymentReference)
}

func TestConfirmPaymentMalformedBody(t *testing.T) {
	order := pendingOrder(t)
	router := newPaymentRouter(newFakeOrderRepo(order))

	body := strings.NewReader(`{"reference": `)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders/"+order.OrderID+"/confirm-payment", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConfirmPaymentOrderNotFound(t *testing.T) {
	router := newPaymentRouter(newFakeOrderRepo())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders/missing/confirm-payment", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
