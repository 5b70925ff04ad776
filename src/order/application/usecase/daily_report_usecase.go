package usecase

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"tienda/src/order/application/response"
)

// DailyReportUseCase caso de uso para el reporte diario de ventas.
// Consulta directa sobre la base: agregaciones que no pasan por el aggregate
type DailyReportUseCase struct {
	db *sql.DB
}

// NewDailyReportUseCase crea una nueva instancia del caso de uso
func NewDailyReportUseCase(db *sql.DB) *DailyReportUseCase {
	return &DailyReportUseCase{
		db: db,
	}
}

// Execute genera el reporte para una fecha específica
func (uc *DailyReportUseCase) Execute(ctx context.Context, date string) (*response.DailyReportResponse, error) {
	// ========================================================================
	// PASO 1: VALIDAR FORMATO DE FECHA (YYYY-MM-DD)
	// ========================================================================
	parsedDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("invalid date format, expected YYYY-MM-DD: %w", err)
	}

	// ========================================================================
	// PASO 2: CALCULAR RANGO [from, to) - NO usar DATE(created_at)
	// ========================================================================
	// Importante: Usar >= from AND < to para aprovechar índice
	from := parsedDate
	to := parsedDate.AddDate(0, 0, 1)

	// ========================================================================
	// PASO 3: QUERY ORDERS (agregaciones sobre órdenes no canceladas)
	// ========================================================================
	queryOrders := `
		SELECT
			COUNT(*) as orders_count,
			COALESCE(SUM(total), 0) as gross_total,
			MIN(created_at) as first_order,
			MAX(created_at) as last_order
		FROM orders
		WHERE created_at >= $1
			AND created_at < $2
			AND status != 'CANCELED'
	`

	var ordersCount int
	var grossTotal decimal.Decimal
	var firstOrder, lastOrder sql.NullTime

	err = uc.db.QueryRowContext(ctx, queryOrders, from, to).Scan(
		&ordersCount,
		&grossTotal,
		&firstOrder,
		&lastOrder,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying orders: %w", err)
	}

	// ========================================================================
	// PASO 4: QUERY CANCELADAS (solo count)
	// ========================================================================
	queryCanceled := `
		SELECT COUNT(*)
		FROM orders
		WHERE created_at >= $1
			AND created_at < $2
			AND status = 'CANCELED'
	`

	var canceledCount int
	err = uc.db.QueryRowContext(ctx, queryCanceled, from, to).Scan(&canceledCount)
	if err != nil {
		return nil, fmt.Errorf("error querying canceled orders: %w", err)
	}

	// ========================================================================
	// PASO 5: QUERY UNIDADES VENDIDAS (join contra items)
	// ========================================================================
	queryUnits := `
		SELECT COALESCE(SUM(oi.quantity), 0)
		FROM order_items oi
		JOIN orders o ON o.order_id = oi.order_id
		WHERE o.created_at >= $1
			AND o.created_at < $2
			AND o.status != 'CANCELED'
	`

	var unitsSold int
	err = uc.db.QueryRowContext(ctx, queryUnits, from, to).Scan(&unitsSold)
	if err != nil {
		return nil, fmt.Errorf("error querying units sold: %w", err)
	}

	// ========================================================================
	// PASO 6: CONSTRUIR RESPONSE
	// ========================================================================
	resp := &response.DailyReportResponse{
		Date:          date,
		OrdersCount:   ordersCount,
		CanceledCount: canceledCount,
		UnitsSold:     unitsSold,
		GrossTotal:    grossTotal,
	}

	// Agregar timestamps solo si existen órdenes
	if firstOrder.Valid {
		resp.FirstOrderAt = &firstOrder.Time
	}
	if lastOrder.Valid {
		resp.LastOrderAt = &lastOrder.Time
	}

	return resp, nil
}
