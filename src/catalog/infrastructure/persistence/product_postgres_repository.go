package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"tienda/src/catalog/domain/entity"
)

// ProductPostgresRepository implementa ProductRepository usando PostgreSQL
type ProductPostgresRepository struct {
	db *sql.DB
}

// NewProductPostgresRepository crea una nueva instancia del repositorio
func NewProductPostgresRepository(db *sql.DB) *ProductPostgresRepository {
	return &ProductPostgresRepository{
		db: db,
	}
}

// Save persiste un producto nuevo
func (r *ProductPostgresRepository) Save(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (
			product_id, name, price, stock, status, image_url, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
	`

	_, err := r.db.ExecContext(ctx, query,
		product.ProductID,
		product.Name,
		product.Price,
		product.Stock,
		product.Status,
		product.ImageURL,
		product.CreatedAt,
		product.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("error saving product: %w", err)
	}

	return nil
}

// FindByID busca un producto por su ID
func (r *ProductPostgresRepository) FindByID(ctx context.Context, productID string) (*entity.Product, error) {
	query := `
		SELECT product_id, name, price, stock, status, image_url, created_at, updated_at
		FROM products
		WHERE product_id = $1
	`

	product := &entity.Product{}
	err := r.db.QueryRowContext(ctx, query, productID).Scan(
		&product.ProductID,
		&product.Name,
		&product.Price,
		&product.Stock,
		&product.Status,
		&product.ImageURL,
		&product.CreatedAt,
		&product.UpdatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, entity.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error finding product: %w", err)
	}

	return product, nil
}

// UpdateStatus actualiza el estado de un producto
func (r *ProductPostgresRepository) UpdateStatus(ctx context.Context, productID string, status entity.ProductStatus) error {
	query := `
		UPDATE products
		SET status = $2, updated_at = NOW()
		WHERE product_id = $1
	`

	result, err := r.db.ExecContext(ctx, query, productID, status)
	if err != nil {
		return fmt.Errorf("error updating product status: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return entity.ErrProductNotFound
	}

	return nil
}

// Delete elimina un producto del catálogo
func (r *ProductPostgresRepository) Delete(ctx context.Context, productID string) error {
	query := `
		DELETE FROM products
		WHERE product_id = $1
	`

	result, err := r.db.ExecContext(ctx, query, productID)
	if err != nil {
		return fmt.Errorf("error deleting product: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return entity.ErrProductNotFound
	}

	return nil
}

// DecrementStock descuenta stock con un UPDATE condicional atómico.
// La condición status = 'ACTIVE' AND stock >= qty garantiza que dos checkouts
// concurrentes sobre el mismo producto no puedan descontar más del disponible
func (r *ProductPostgresRepository) DecrementStock(ctx context.Context, productID string, quantity int) error {
	query := `
		UPDATE products
		SET stock = stock - $2,
		    status = CASE WHEN stock - $2 = 0 THEN 'OUT_OF_STOCK' ELSE status END,
		    updated_at = NOW()
		WHERE product_id = $1
		  AND status = 'ACTIVE'
		  AND stock >= $2
	`

	result, err := r.db.ExecContext(ctx, query, productID, quantity)
	if err != nil {
		return fmt.Errorf("error decrementing stock: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		// Distinguir producto inexistente de stock insuficiente / producto no activo
		if _, findErr := r.FindByID(ctx, productID); findErr != nil {
			return findErr
		}
		return entity.ErrInsufficientStock
	}

	return nil
}

// RestoreStock devuelve stock descontado (reversa de cancelación).
// Un producto que quedó OUT_OF_STOCK vuelve a ACTIVE al recuperar stock
func (r *ProductPostgresRepository) RestoreStock(ctx context.Context, productID string, quantity int) error {
	query := `
		UPDATE products
		SET stock = stock + $2,
		    status = CASE WHEN status = 'OUT_OF_STOCK' THEN 'ACTIVE' ELSE status END,
		    updated_at = NOW()
		WHERE product_id = $1
	`

	result, err := r.db.ExecContext(ctx, query, productID, quantity)
	if err != nil {
		return fmt.Errorf("error restoring stock: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return entity.ErrProductNotFound
	}

	return nil
}
