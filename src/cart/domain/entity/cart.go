package entity

import (
	"time"

	"github.com/google/uuid"
)

// CartItem representa una línea del carrito: referencia débil a un producto
// más la cantidad deseada. Los datos de display se resuelven al leer
type CartItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Cart representa el carrito de un cliente (Aggregate Root).
// Un cliente tiene a lo sumo un carrito; el carrito persiste vacío entre
// checkouts en lugar de recrearse
type Cart struct {
	CartID     string     `json:"cart_id"`
	CustomerID string     `json:"customer_id"`
	Items      []CartItem `json:"items"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// NewCart crea un carrito vacío para un cliente
func NewCart(customerID string) (*Cart, error) {
	if customerID == "" {
		return nil, ErrCustomerIDRequired
	}

	now := time.Now()

	return &Cart{
		CartID:     uuid.New().String(),
		CustomerID: customerID,
		Items:      []CartItem{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}, nil
}

// QuantityOf retorna la cantidad actual de un producto en el carrito (0 si no está)
func (c *Cart) QuantityOf(productID string) int {
	for _, item := range c.Items {
		if item.ProductID == productID {
			return item.Quantity
		}
	}
	return 0
}

// AddItem agrega un producto al carrito. Si el producto ya tiene una línea,
// las cantidades se SUMAN: nunca hay dos líneas para el mismo producto
func (c *Cart) AddItem(productID string, quantity int) error {
	if productID == "" {
		return ErrProductIDRequired
	}
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity += quantity
			c.UpdatedAt = time.Now()
			return nil
		}
	}

	c.Items = append(c.Items, CartItem{ProductID: productID, Quantity: quantity})
	c.UpdatedAt = time.Now()
	return nil
}

// SetQuantity fija la cantidad de una línea, REEMPLAZANDO el valor anterior.
// Si el producto no tiene línea, la agrega
func (c *Cart) SetQuantity(productID string, quantity int) error {
	if productID == "" {
		return ErrProductIDRequired
	}
	if quantity < 1 {
		return ErrInvalidQuantity
	}

	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			c.UpdatedAt = time.Now()
			return nil
		}
	}

	c.Items = append(c.Items, CartItem{ProductID: productID, Quantity: quantity})
	c.UpdatedAt = time.Now()
	return nil
}

// RemoveItem elimina la línea de un producto. Es idempotente:
// remover un producto ausente no es un error
func (c *Cart) RemoveItem(productID string) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			c.UpdatedAt = time.Now()
			return
		}
	}
}

// Clear vacía las líneas del carrito; el carrito en sí se conserva
func (c *Cart) Clear() {
	c.Items = []CartItem{}
	c.UpdatedAt = time.Now()
}

// IsEmpty indica si el carrito no tiene líneas
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
