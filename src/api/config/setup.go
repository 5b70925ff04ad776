package config

import (
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// APIConfig contiene la configuración del módulo API
type APIConfig struct {
	DB          *sql.DB
	ServiceName string
	Version     string
}

// DefaultAPIConfig devuelve una configuración por defecto
func DefaultAPIConfig() APIConfig {
	return APIConfig{
		ServiceName: "tienda-service",
		Version:     "0.0.0",
	}
}

// SetupAPIModule registra los endpoints de health check del servicio
func SetupAPIModule(router *gin.Engine, v1 *gin.RouterGroup, cfg APIConfig) {
	handler := func(ctx *gin.Context) {
		dbStatus := "disconnected"
		if cfg.DB != nil {
			if err := cfg.DB.Ping(); err == nil {
				dbStatus = "connected"
			}
		}

		ctx.JSON(http.StatusOK, gin.H{
			"service":   cfg.ServiceName,
			"version":   cfg.Version,
			"status":    "ok",
			"database":  dbStatus,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}

	router.GET("/health", handler)
	v1.GET("/health", handler)
}
