package controller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tienda/src/order/application/usecase"
)

// ReportController maneja las peticiones HTTP de reportes
type ReportController struct {
	dailyReportUC *usecase.DailyReportUseCase
}

// NewReportController crea una nueva instancia del controlador
func NewReportController(dailyReportUC *usecase.DailyReportUseCase) *ReportController {
	return &ReportController{
		dailyReportUC: dailyReportUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *ReportController) RegisterRoutes(router *gin.RouterGroup) {
	reports := router.Group("/reports")
	{
		reports.GET("/daily", c.DailyReport)
	}

	log.Println("Rutas Report disponibles:")
	log.Println("  GET    /api/v1/reports/daily?date=YYYY-MM-DD")
}

// DailyReport maneja el reporte diario de ventas
func (c *ReportController) DailyReport(ctx *gin.Context) {
	if c.dailyReportUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Reports not available (database not configured)",
		})
		return
	}

	// Sin fecha explícita se reporta el día actual
	date := ctx.Query("date")
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	resp, err := c.dailyReportUC.Execute(ctx.Request.Context(), date)
	if err != nil {
		log.Printf("Error generating daily report: %v", err)

		if _, parseErr := time.Parse("2006-01-02", date); parseErr != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date format, expected YYYY-MM-DD",
			})
			return
		}

		ctx.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Error generating daily report",
			"details": err.Error(),
		})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
