package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"tienda/src/cart/domain/entity"
)

// CartPostgresRepository implementa CartRepository usando PostgreSQL
type CartPostgresRepository struct {
	db *sql.DB
}

// NewCartPostgresRepository crea una nueva instancia del repositorio
func NewCartPostgresRepository(db *sql.DB) *CartPostgresRepository {
	return &CartPostgresRepository{
		db: db,
	}
}

// FindByCustomer busca el carrito de un cliente con sus líneas (load aggregate)
func (r *CartPostgresRepository) FindByCustomer(ctx context.Context, customerID string) (*entity.Cart, error) {
	queryCart := `
		SELECT cart_id, customer_id, created_at, updated_at
		FROM carts
		WHERE customer_id = $1
	`

	cart := &entity.Cart{}
	err := r.db.QueryRowContext(ctx, queryCart, customerID).Scan(
		&cart.CartID,
		&cart.CustomerID,
		&cart.CreatedAt,
		&cart.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, entity.ErrCartNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding cart: %w", err)
	}

	queryItems := `
		SELECT product_id, quantity
		FROM cart_items
		WHERE cart_id = $1
		ORDER BY position
	`

	rows, err := r.db.QueryContext(ctx, queryItems, cart.CartID)
	if err != nil {
		return nil, fmt.Errorf("error finding cart items: %w", err)
	}
	defer rows.Close()

	items := []entity.CartItem{}
	for rows.Next() {
		var item entity.CartItem
		if err := rows.Scan(&item.ProductID, &item.Quantity); err != nil {
			return nil, fmt.Errorf("error scanning cart item: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cart items: %w", err)
	}

	cart.Items = items

	return cart, nil
}

// Save persiste el aggregate completo en una transacción: upsert del carrito
// y reemplazo de las líneas. Las escrituras por cliente son last-write-wins
func (r *CartPostgresRepository) Save(ctx context.Context, cart *entity.Cart) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	// 1. Upsert del carrito (un carrito por cliente: customer_id es UNIQUE)
	queryCart := `
		INSERT INTO carts (cart_id, customer_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (customer_id)
		DO UPDATE SET updated_at = EXCLUDED.updated_at
	`

	_, err = tx.ExecContext(ctx, queryCart,
		cart.CartID,
		cart.CustomerID,
		cart.CreatedAt,
		cart.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("error saving cart: %w", err)
	}

	// 2. Reemplazar líneas. Se referencia por customer_id porque un upsert
	// en conflicto conserva el cart_id original, no el del aggregate en memoria
	queryDelete := `
		DELETE FROM cart_items
		WHERE cart_id = (SELECT cart_id FROM carts WHERE customer_id = $1)
	`
	if _, err := tx.ExecContext(ctx, queryDelete, cart.CustomerID); err != nil {
		return fmt.Errorf("error clearing cart items: %w", err)
	}

	queryItem := `
		INSERT INTO cart_items (cart_id, product_id, quantity, position)
		VALUES ((SELECT cart_id FROM carts WHERE customer_id = $1), $2, $3, $4)
	`

	for i, item := range cart.Items {
		_, err = tx.ExecContext(ctx, queryItem,
			cart.CustomerID,
			item.ProductID,
			item.Quantity,
			i,
		)
		if err != nil {
			return fmt.Errorf("error saving cart item: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

// RemoveProductFromAllCarts purga las líneas de un producto en todos los
// carritos y marca los carritos afectados como modificados
func (r *CartPostgresRepository) RemoveProductFromAllCarts(ctx context.Context, productID string) error {
	query := `
		WITH purged AS (
			DELETE FROM cart_items
			WHERE product_id = $1
			RETURNING cart_id
		)
		UPDATE carts
		SET updated_at = NOW()
		WHERE cart_id IN (SELECT cart_id FROM purged)
	`

	if _, err := r.db.ExecContext(ctx, query, productID); err != nil {
		return fmt.Errorf("error purging product from carts: %w", err)
	}

	return nil
}
