package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	cartEntity "tienda/src/cart/domain/entity"
	catalogEntity "tienda/src/catalog/domain/entity"
	"tienda/src/order/domain/entity"
	"tienda/src/shared/domain/criteria"
)

// fakeProductRepo implementa catalog port.ProductRepository en memoria
type fakeProductRepo struct {
	products      map[string]*catalogEntity.Product
	failDecrement map[string]error
	decremented   []string
	restored      map[string]int
	restoreErr    error
}

func newFakeProductRepo(products ...*catalogEntity.Product) *fakeProductRepo {
	repo := &fakeProductRepo{
		products:      make(map[string]*catalogEntity.Product),
		failDecrement: make(map[string]error),
		restored:      make(map[string]int),
	}
	for _, p := range products {
		repo.products[p.ProductID] = p
	}
	return repo
}

func (r *fakeProductRepo) Save(ctx context.Context, product *catalogEntity.Product) error {
	r.products[product.ProductID] = product
	return nil
}

func (r *fakeProductRepo) FindByID(ctx context.Context, productID string) (*catalogEntity.Product, error) {
	product, ok := r.products[productID]
	if !ok {
		return nil, catalogEntity.ErrProductNotFound
	}
	return product, nil
}

func (r *fakeProductRepo) UpdateStatus(ctx context.Context, productID string, status catalogEntity.ProductStatus) error {
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, productID string) error {
	delete(r.products, productID)
	return nil
}

func (r *fakeProductRepo) DecrementStock(ctx context.Context, productID string, quantity int) error {
	if err, ok := r.failDecrement[productID]; ok {
		return err
	}
	product, ok := r.products[productID]
	if !ok {
		return catalogEntity.ErrProductNotFound
	}
	if product.Stock < quantity {
		return catalogEntity.ErrInsufficientStock
	}
	product.Stock -= quantity
	r.decremented = append(r.decremented, productID)
	return nil
}

func (r *fakeProductRepo) RestoreStock(ctx context.Context, productID string, quantity int) error {
	if r.restoreErr != nil {
		return r.restoreErr
	}
	r.restored[productID] += quantity
	if product, ok := r.products[productID]; ok {
		product.Stock += quantity
	}
	return nil
}

// fakeOrderRepo implementa port.OrderRepository en memoria
type fakeOrderRepo struct {
	orders         map[string]*entity.Order
	saveCalls      int
	duplicateUntil int
	saveErr        error
	savedCodes     []string
	paymentSaves   int
	shipmentSaves  int
	lastCriteria   criteria.Criteria
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[string]*entity.Order)}
}

func (r *fakeOrderRepo) Save(ctx context.Context, order *entity.Order) error {
	r.saveCalls++
	if r.saveErr != nil {
		return r.saveErr
	}
	if r.saveCalls <= r.duplicateUntil {
		return entity.ErrDuplicateOrderCode
	}
	r.savedCodes = append(r.savedCodes, order.OrderCode)
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
	r.lastCriteria = crit
	var orders []*entity.Order
	for _, order := range r.orders {
		orders = append(orders, order)
	}
	return orders, len(orders), nil
}

func (r *fakeOrderRepo) ConfirmPayment(ctx context.Context, order *entity.Order) error {
	r.paymentSaves++
	r.orders[order.OrderID] = order
	return nil
}

func (r *fakeOrderRepo) ConfirmShipment(ctx context.Context, order *entity.Order) error {
	r.shipmentSaves++
	r.orders[order.OrderID] = order
	return nil
}

func (r *fakeOrderRepo) UpdateStatus(ctx context.Context, orderID string, from, to entity.OrderStatus) error {
	order, ok := r.orders[orderID]
	if !ok {
		return entity.ErrOrderNotFound
	}
	// El fake comparte punteros con el caller, que ya aplicó la transición
	// en memoria: aceptar tanto el estado previo como el nuevo
	if order.Status != from && order.Status != to {
		return entity.ErrInvalidTransition
	}
	order.Status = to
	return nil
}

func (r *fakeOrderRepo) Cancel(ctx context.Context, orderID string) error {
	order, ok := r.orders[orderID]
	if !ok {
		return entity.ErrOrderNotFound
	}
	if order.Status.IsTerminal() {
		return entity.ErrInvalidTransition
	}
	order.Status = entity.OrderStatusCanceled
	return nil
}

func (r *fakeOrderRepo) Delete(ctx context.Context, orderID string) error {
	if _, ok := r.orders[orderID]; !ok {
		return entity.ErrOrderNotFound
	}
	delete(r.orders, orderID)
	return nil
}

// fakeNotifier registra los eventos emitidos
type fakeNotifier struct {
	events []string
}

func (n *fakeNotifier) OrderCreated(order *entity.Order)      { n.events = append(n.events, "created") }
func (n *fakeNotifier) PaymentConfirmed(order *entity.Order)  { n.events = append(n.events, "paid") }
func (n *fakeNotifier) ShipmentConfirmed(order *entity.Order) { n.events = append(n.events, "shipped") }
func (n *fakeNotifier) OrderCanceled(order *entity.Order)     { n.events = append(n.events, "canceled") }

// fakeCartRepo implementa cart port.CartRepository en memoria
type fakeCartRepo struct {
	carts map[string]*cartEntity.Cart
}

func newFakeCartRepo(carts ...*cartEntity.Cart) *fakeCartRepo {
	repo := &fakeCartRepo{carts: make(map[string]*cartEntity.Cart)}
	for _, cart := range carts {
		repo.carts[cart.CustomerID] = cart
	}
	return repo
}

func (r *fakeCartRepo) FindByCustomer(ctx context.Context, customerID string) (*cartEntity.Cart, error) {
	cart, ok := r.carts[customerID]
	if !ok {
		return nil, cartEntity.ErrCartNotFound
	}
	return cart, nil
}

func (r *fakeCartRepo) Save(ctx context.Context, cart *cartEntity.Cart) error {
	r.carts[cart.CustomerID] = cart
	return nil
}

func (r *fakeCartRepo) RemoveProductFromAllCarts(ctx context.Context, productID string) error {
	for _, cart := range r.carts {
		cart.RemoveItem(productID)
	}
	return nil
}

// mustProduct crea un producto de prueba con stock y precio dados
func mustProduct(name string, price float64, stock int) *catalogEntity.Product {
	product, err := catalogEntity.NewProduct(name, decimal.NewFromFloat(price), stock, "")
	if err != nil {
		panic(fmt.Sprintf("invalid test product %s: %v", name, err))
	}
	return product
}
