package response

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyReportResponse representa el reporte diario de ventas
type DailyReportResponse struct {
	Date          string          `json:"date"`
	OrdersCount   int             `json:"orders_count"`
	CanceledCount int             `json:"canceled_count"`
	UnitsSold     int             `json:"units_sold"`
	GrossTotal    decimal.Decimal `json:"gross_total"`
	FirstOrderAt  *time.Time      `json:"first_order_at,omitempty"`
	LastOrderAt   *time.Time      `json:"last_order_at,omitempty"`
}
