package usecase

import (
	"context"
	"errors"
	"log"

	"tienda/src/cart/application/response"
	cartEntity "tienda/src/cart/domain/entity"
	catalogEntity "tienda/src/catalog/domain/entity"
	catalogPort "tienda/src/catalog/domain/port"

	"github.com/shopspring/decimal"
)

// buildCartResponse resuelve los campos de display de cada línea contra el
// catálogo en el momento de la lectura. Las referencias colgantes (producto
// borrado después de agregarse al carrito) se descartan del display en lugar
// de propagarse como error
func buildCartResponse(ctx context.Context, cart *cartEntity.Cart, productRepo catalogPort.ProductRepository) (*response.CartResponse, error) {
	resp := &response.CartResponse{
		CartID:     cart.CartID,
		CustomerID: cart.CustomerID,
		Items:      []response.CartItemView{},
		Total:      decimal.Zero,
	}

	for _, item := range cart.Items {
		product, err := productRepo.FindByID(ctx, item.ProductID)
		if err != nil {
			if errors.Is(err, catalogEntity.ErrProductNotFound) {
				log.Printf("WARNING: Cart %s references missing product %s, dropped from display", cart.CartID, item.ProductID)
				continue
			}
			return nil, err
		}

		subtotal := product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		resp.Items = append(resp.Items, response.CartItemView{
			ProductID: product.ProductID,
			Name:      product.Name,
			ImageURL:  product.ImageURL,
			UnitPrice: product.Price,
			Quantity:  item.Quantity,
			Subtotal:  subtotal,
		})
		resp.ItemCount += item.Quantity
		resp.Total = resp.Total.Add(subtotal)
	}

	return resp, nil
}
