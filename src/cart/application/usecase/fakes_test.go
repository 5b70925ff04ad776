package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	cartEntity "tienda/src/cart/domain/entity"
	catalogEntity "tienda/src/catalog/domain/entity"
)

// fakeCartRepo implementa cart port.CartRepository en memoria
type fakeCartRepo struct {
	carts     map[string]*cartEntity.Cart
	saveCalls int
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
	r.saveCalls++
	r.carts[cart.CustomerID] = cart
	return nil
}

func (r *fakeCartRepo) RemoveProductFromAllCarts(ctx context.Context, productID string) error {
	for _, cart := range r.carts {
		cart.RemoveItem(productID)
	}
	return nil
}

// fakeProductRepo implementa catalog port.ProductRepository en memoria
type fakeProductRepo struct {
	products map[string]*catalogEntity.Product
}

func newFakeProductRepo(products ...*catalogEntity.Product) *fakeProductRepo {
	repo := &fakeProductRepo{products: make(map[string]*catalogEntity.Product)}
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
	product, ok := r.products[productID]
	if !ok {
		return catalogEntity.ErrProductNotFound
	}
	product.Status = status
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, productID string) error {
	delete(r.products, productID)
	return nil
}

func (r *fakeProductRepo) DecrementStock(ctx context.Context, productID string, quantity int) error {
	product, ok := r.products[productID]
	if !ok {
		return catalogEntity.ErrProductNotFound
	}
	if product.Status != catalogEntity.ProductStatusActive || product.Stock < quantity {
		return catalogEntity.ErrInsufficientStock
	}
	product.Stock -= quantity
	return nil
}

func (r *fakeProductRepo) RestoreStock(ctx context.Context, productID string, quantity int) error {
	product, ok := r.products[productID]
	if !ok {
		return catalogEntity.ErrProductNotFound
	}
	product.Stock += quantity
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
