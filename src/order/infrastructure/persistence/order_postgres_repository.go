package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"tienda/src/order/domain/entity"
	"tienda/src/shared/domain/criteria"
	sqlcriteria "tienda/src/shared/infrastructure/criteria"
)

// OrderPostgresRepository implementa OrderRepository usando PostgreSQL
type OrderPostgresRepository struct {
	db        *sql.DB
	converter *sqlcriteria.SQLCriteriaConverter
}

// NewOrderPostgresRepository crea una nueva instancia del repositorio
func NewOrderPostgresRepository(db *sql.DB) *OrderPostgresRepository {
	return &OrderPostgresRepository{
		db:        db,
		converter: sqlcriteria.NewSQLCriteriaConverter(),
	}
}

const orderColumns = `
	order_id, order_code, customer_id, customer_name, vendor_id,
	street, city, region, postal_code, country,
	payment_method, payment_reference, total, status,
	payment_confirmed, paid_at, shipment_confirmed, shipped_at, created_at
`

// Save persiste una orden con sus items en la base de datos (DDD Aggregate)
func (r *OrderPostgresRepository) Save(ctx context.Context, order *entity.Order) error {
	// Iniciar transacción para garantizar atomicidad del aggregate
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	// 1. Insertar orden (aggregate root)
	queryOrder := `
		INSERT INTO orders (` + orderColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
	`

	_, err = tx.ExecContext(ctx, queryOrder,
		order.OrderID,
		order.OrderCode,
		order.CustomerID,
		order.CustomerName,
		order.VendorID,
		order.ShippingAddress.Street,
		order.ShippingAddress.City,
		order.ShippingAddress.Region,
		order.ShippingAddress.PostalCode,
		order.ShippingAddress.Country,
		order.PaymentMethod,
		order.PaymentReference,
		order.Total,
		order.Status,
		order.PaymentConfirmed,
		order.PaidAt,
		order.ShipmentConfirmed,
		order.ShippedAt,
		order.CreatedAt,
	)

	if err != nil {
		// 23505 sobre el índice único del código → el caller regenera y reintenta
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" && pqErr.Constraint == "orders_order_code_key" {
			return entity.ErrDuplicateOrderCode
		}
		return fmt.Errorf("error saving order: %w", err)
	}

	// 2. Insertar items (entities dentro del aggregate) con snapshots
	queryItem := `
		INSERT INTO order_items (
			item_id, order_id, product_id, name, image_url, quantity, unit_price, position
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
	`

	for i, item := range order.Items {
		_, err = tx.ExecContext(ctx, queryItem,
			item.ItemID,
			order.OrderID,
			item.ProductID,
			item.Name,
			item.ImageURL,
			item.Quantity,
			item.UnitPrice,
			i,
		)

		if err != nil {
			return fmt.Errorf("error saving order item: %w", err)
		}
	}

	// Commit transacción
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

// FindByID busca una orden con sus items por su ID (DDD: load aggregate)
func (r *OrderPostgresRepository) FindByID(ctx context.Context, orderID string) (*entity.Order, error) {
	queryOrder := `SELECT ` + orderColumns + ` FROM orders WHERE order_id = $1`

	order, err := r.scanOrder(r.db.QueryRowContext(ctx, queryOrder, orderID))
	if err != nil {
		return nil, err
	}

	items, err := r.loadItems(ctx, orderID)
	if err != nil {
		return nil, err
	}
	order.Items = items

	return order, nil
}

// List retorna órdenes según el criteria junto al total sin paginar
func (r *OrderPostgresRepository) List(ctx context.Context, crit criteria.Criteria) ([]*entity.Order, int, error) {
	// 1. Contar total con los mismos filtros
	countQuery, countParams := r.converter.ToCountSQL(`SELECT COUNT(*) FROM orders`, crit)

	var totalCount int
	if err := r.db.QueryRowContext(ctx, countQuery, countParams...).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("error counting orders: %w", err)
	}

	// 2. Obtener órdenes filtradas y paginadas
	selectQuery, selectParams := r.converter.ToSelectSQL(`SELECT `+orderColumns+` FROM orders`, crit)

	rows, err := r.db.QueryContext(ctx, selectQuery, selectParams...)
	if err != nil {
		return nil, 0, fmt.Errorf("error listing orders: %w", err)
	}
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		order, err := r.scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, order)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating orders: %w", err)
	}

	// 3. Cargar items de cada orden
	for _, order := range orders {
		items, err := r.loadItems(ctx, order.OrderID)
		if err != nil {
			return nil, 0, fmt.Errorf("error loading items for order %s: %w", order.OrderID, err)
		}
		order.Items = items
	}

	return orders, totalCount, nil
}

// ConfirmPayment persiste la confirmación de pago con UPDATE condicional
func (r *OrderPostgresRepository) ConfirmPayment(ctx context.Context, order *entity.Order) error {
	query := `
		UPDATE orders
		SET status = 'PAID', payment_confirmed = TRUE, paid_at = $2, payment_reference = $3
		WHERE order_id = $1 AND status = 'PENDING'
	`

	result, err := r.db.ExecContext(ctx, query, order.OrderID, order.PaidAt, order.PaymentReference)
	if err != nil {
		return fmt.Errorf("error confirming payment: %w", err)
	}

	return r.checkTransitionApplied(ctx, result, order.OrderID)
}

// ConfirmShipment persiste la confirmación de envío con UPDATE condicional
func (r *OrderPostgresRepository) ConfirmShipment(ctx context.Context, order *entity.Order) error {
	query := `
		UPDATE orders
		SET status = 'SHIPPED', shipment_confirmed = TRUE, shipped_at = $2
		WHERE order_id = $1 AND status = 'PROCESSING'
	`

	result, err := r.db.ExecContext(ctx, query, order.OrderID, order.ShippedAt)
	if err != nil {
		return fmt.Errorf("error confirming shipment: %w", err)
	}

	return r.checkTransitionApplied(ctx, result, order.OrderID)
}

// UpdateStatus aplica una transición condicional WHERE status = from
func (r *OrderPostgresRepository) UpdateStatus(ctx context.Context, orderID string, from, to entity.OrderStatus) error {
	query := `
		UPDATE orders
		SET status = $3
		WHERE order_id = $1 AND status = $2
	`

	result, err := r.db.ExecContext(ctx, query, orderID, from, to)
	if err != nil {
		return fmt.Errorf("error updating order status: %w", err)
	}

	return r.checkTransitionApplied(ctx, result, orderID)
}

// Cancel marca la orden CANCELED solo si no está en estado terminal.
// La condición garantiza que solo una de dos cancelaciones concurrentes
// efectúe el cambio (y por tanto restaure stock)
func (r *OrderPostgresRepository) Cancel(ctx context.Context, orderID string) error {
	query := `
		UPDATE orders
		SET status = 'CANCELED'
		WHERE order_id = $1 AND status NOT IN ('CANCELED', 'DELIVERED')
	`

	result, err := r.db.ExecContext(ctx, query, orderID)
	if err != nil {
		return fmt.Errorf("error canceling order: %w", err)
	}

	return r.checkTransitionApplied(ctx, result, orderID)
}

// Delete elimina la orden y sus items en una transacción
func (r *OrderPostgresRepository) Delete(ctx context.Context, orderID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM order_items WHERE order_id = $1`, orderID); err != nil {
		return fmt.Errorf("error deleting order items: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM orders WHERE order_id = $1`, orderID)
	if err != nil {
		return fmt.Errorf("error deleting order: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return entity.ErrOrderNotFound
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

// checkTransitionApplied distingue orden inexistente de transición perdida
// cuando el UPDATE condicional no afectó filas
func (r *OrderPostgresRepository) checkTransitionApplied(ctx context.Context, result sql.Result, orderID string) error {
	rowsAffected, _ := result.RowsAffected()
	if rowsAffected > 0 {
		return nil
	}

	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM orders WHERE order_id = $1)`, orderID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("error checking order existence: %w", err)
	}

	if !exists {
		return entity.ErrOrderNotFound
	}
	return entity.ErrInvalidTransition
}

// rowScanner abstrae *sql.Row y *sql.Rows para compartir el scan
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanOrder escanea una fila de orders al aggregate (sin items)
func (r *OrderPostgresRepository) scanOrder(row rowScanner) (*entity.Order, error) {
	order := &entity.Order{}
	var paidAt, shippedAt sql.NullTime

	err := row.Scan(
		&order.OrderID,
		&order.OrderCode,
		&order.CustomerID,
		&order.CustomerName,
		&order.VendorID,
		&order.ShippingAddress.Street,
		&order.ShippingAddress.City,
		&order.ShippingAddress.Region,
		&order.ShippingAddress.PostalCode,
		&order.ShippingAddress.Country,
		&order.PaymentMethod,
		&order.PaymentReference,
		&order.Total,
		&order.Status,
		&order.PaymentConfirmed,
		&paidAt,
		&order.ShipmentConfirmed,
		&shippedAt,
		&order.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, entity.ErrOrderNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error scanning order: %w", err)
	}

	if paidAt.Valid {
		order.PaidAt = &paidAt.Time
	}
	if shippedAt.Valid {
		order.ShippedAt = &shippedAt.Time
	}

	return order, nil
}

// loadItems carga los items de una orden en su posición original
func (r *OrderPostgresRepository) loadItems(ctx context.Context, orderID string) ([]entity.OrderItem, error) {
	query := `
		SELECT item_id, order_id, product_id, name, image_url, quantity, unit_price
		FROM order_items
		WHERE order_id = $1
		ORDER BY position
	`

	rows, err := r.db.QueryContext(ctx, query, orderID)
	if err != nil {
		return nil, fmt.Errorf("error finding order items: %w", err)
	}
	defer rows.Close()

	var items []entity.OrderItem
	for rows.Next() {
		var item entity.OrderItem
		err := rows.Scan(
			&item.ItemID,
			&item.OrderID,
			&item.ProductID,
			&item.Name,
			&item.ImageURL,
			&item.Quantity,
			&item.UnitPrice,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning order item: %w", err)
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order items: %w", err)
	}

	return items, nil
}
