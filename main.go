package main

import (
	"database/sql"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	_ "github.com/lib/pq" // Driver de PostgreSQL
	"github.com/prometheus/client_golang/prometheus/promhttp"

	apiConfig "tienda/src/api/config"
	cartUseCase "tienda/src/cart/application/usecase"
	cartController "tienda/src/cart/infrastructure/controller"
	cartPersistence "tienda/src/cart/infrastructure/persistence"
	catalogUseCase "tienda/src/catalog/application/usecase"
	catalogController "tienda/src/catalog/infrastructure/controller"
	catalogPersistence "tienda/src/catalog/infrastructure/persistence"
	orderUseCase "tienda/src/order/application/usecase"
	orderClient "tienda/src/order/infrastructure/client"
	orderController "tienda/src/order/infrastructure/controller"
	orderPersistence "tienda/src/order/infrastructure/persistence"
	sharedConfig "tienda/src/shared/infrastructure/config"
)

// getEnv obtiene una variable de entorno o devuelve un valor por defecto
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func main() {
	log.Println("🚀 Tienda Service - Iniciando...")

	// Configurar el router con Gin
	router := gin.New()

	// Agregar middlewares básicos necesarios
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Configurar Prometheus metrics si está habilitado
	prometheusEnabled := os.Getenv("PROMETHEUS_ENABLED")
	if prometheusEnabled == "true" {
		log.Println("Registering /metrics endpoint")
		router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	} else {
		log.Println("Prometheus metrics disabled")
	}

	// Configurar GZIP y otros middlewares compartidos
	sharedCfg := sharedConfig.DefaultSharedConfig()
	sharedConfig.SetupSharedMiddleware(router, sharedCfg)

	// Obtener configuración de la base de datos de variables de entorno
	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")
	dbUser := getEnv("DB_USER", "postgres")
	dbPassword := getEnv("DB_PASSWORD", "postgres")
	dbName := getEnv("DB_NAME", "tienda_db")

	connStr := "postgres://" + dbUser + ":" + dbPassword + "@" + dbHost + ":" + dbPort + "/" + dbName + "?sslmode=disable"
	log.Printf("Intentando conectar a %s", dbName)

	// Conectar a la base de datos (opcional para bootstrap)
	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Printf("⚠️  Advertencia: Error al conectar a la base de datos: %v", err)
		log.Println("⚠️  Continuando sin DB (solo health check)")
		db = nil
	} else {
		defer db.Close()
		// Comprobar la conexión
		if err = db.Ping(); err != nil {
			log.Printf("⚠️  Advertencia: Error al verificar la conexión a la base de datos: %v", err)
			log.Println("⚠️  Continuando sin DB (solo health check)")
			db = nil
		} else {
			log.Println("✅ Conexión a la base de datos establecida con éxito")
		}
	}

	// API v1 grupo de rutas
	v1 := router.Group("/api/v1")

	// Configurar el módulo API (health check)
	apiCfg := apiConfig.DefaultAPIConfig()
	apiCfg.DB = db
	apiCfg.Version = "1.0.0"
	apiConfig.SetupAPIModule(router, v1, apiCfg)

	// Configurar módulos de negocio
	setupModules(v1, db)

	// Iniciar el servidor
	port := getEnv("PORT", "8080")
	log.Printf("✅ Servidor Tienda Service iniciado en http://localhost:%s", port)
	log.Printf("✅ Health endpoint: GET http://localhost:%s/health", port)
	router.Run(":" + port)
}

// setupModules configura catálogo, carrito y órdenes compartiendo repositorios.
// Con db == nil los controladores quedan registrados pero responden 503
func setupModules(router *gin.RouterGroup, db *sql.DB) {
	log.Println("Configurando módulos de negocio...")

	// Cliente de notificaciones (externo, fire-and-forget)
	notifier := orderClient.NewNotificationClient()

	// Repositorios
	var productRepo *catalogPersistence.ProductPostgresRepository
	var cartRepo *cartPersistence.CartPostgresRepository
	var orderRepo *orderPersistence.OrderPostgresRepository
	if db != nil {
		productRepo = catalogPersistence.NewProductPostgresRepository(db)
		cartRepo = cartPersistence.NewCartPostgresRepository(db)
		orderRepo = orderPersistence.NewOrderPostgresRepository(db)
	}

	// ========================================================================
	// Módulo Catalog
	// ========================================================================
	var createProductUC *catalogUseCase.CreateProductUseCase
	var getProductUC *catalogUseCase.GetProductUseCase
	var updateProductStatusUC *catalogUseCase.UpdateProductStatusUseCase
	var deleteProductUC *catalogUseCase.DeleteProductUseCase
	if productRepo != nil {
		// El repo de carritos actúa como purgador: borrar/desactivar un
		// producto limpia sus líneas en todos los carritos
		createProductUC = catalogUseCase.NewCreateProductUseCase(productRepo)
		getProductUC = catalogUseCase.NewGetProductUseCase(productRepo)
		updateProductStatusUC = catalogUseCase.NewUpdateProductStatusUseCase(productRepo, cartRepo)
		deleteProductUC = catalogUseCase.NewDeleteProductUseCase(productRepo, cartRepo)
	}

	productCtrl := catalogController.NewProductController(createProductUC, getProductUC, updateProductStatusUC, deleteProductUC)

	// ========================================================================
	// Módulo Cart
	// ========================================================================
	var getCartUC *cartUseCase.GetCartUseCase
	var addItemUC *cartUseCase.AddItemUseCase
	var setQuantityUC *cartUseCase.SetQuantityUseCase
	var removeItemUC *cartUseCase.RemoveItemUseCase
	var clearCartUC *cartUseCase.ClearCartUseCase
	var cartSummaryUC *cartUseCase.CartSummaryUseCase
	if cartRepo != nil {
		getCartUC = cartUseCase.NewGetCartUseCase(cartRepo, productRepo)
		addItemUC = cartUseCase.NewAddItemUseCase(cartRepo, productRepo)
		setQuantityUC = cartUseCase.NewSetQuantityUseCase(cartRepo, productRepo)
		removeItemUC = cartUseCase.NewRemoveItemUseCase(cartRepo, productRepo)
		clearCartUC = cartUseCase.NewClearCartUseCase(cartRepo)
		cartSummaryUC = cartUseCase.NewCartSummaryUseCase(cartRepo, productRepo)
	}

	cartCtrl := cartController.NewCartController(getCartUC, addItemUC, setQuantityUC, removeItemUC, clearCartUC, cartSummaryUC)

	// ========================================================================
	// Módulo Order
	// ========================================================================
	var createOrderUC *orderUseCase.CreateOrderUseCase
	var checkoutCartUC *orderUseCase.CheckoutCartUseCase
	var getOrderUC *orderUseCase.GetOrderUseCase
	var listOrdersUC *orderUseCase.ListOrdersUseCase
	var searchOrdersUC *orderUseCase.SearchOrdersUseCase
	var confirmPaymentUC *orderUseCase.ConfirmPaymentUseCase
	var confirmShipmentUC *orderUseCase.ConfirmShipmentUseCase
	var updateStatusUC *orderUseCase.UpdateOrderStatusUseCase
	var cancelOrderUC *orderUseCase.CancelOrderUseCase
	var deleteOrderUC *orderUseCase.DeleteOrderUseCase
	var dailyReportUC *orderUseCase.DailyReportUseCase
	if orderRepo != nil {
		createOrderUC = orderUseCase.NewCreateOrderUseCase(orderRepo, productRepo, notifier)
		checkoutCartUC = orderUseCase.NewCheckoutCartUseCase(cartRepo, createOrderUC)
		getOrderUC = orderUseCase.NewGetOrderUseCase(orderRepo)
		listOrdersUC = orderUseCase.NewListOrdersUseCase(orderRepo)
		searchOrdersUC = orderUseCase.NewSearchOrdersUseCase(listOrdersUC)
		confirmPaymentUC = orderUseCase.NewConfirmPaymentUseCase(orderRepo, notifier)
		confirmShipmentUC = orderUseCase.NewConfirmShipmentUseCase(orderRepo, notifier)
		cancelOrderUC = orderUseCase.NewCancelOrderUseCase(orderRepo, productRepo, notifier)
		updateStatusUC = orderUseCase.NewUpdateOrderStatusUseCase(orderRepo, confirmPaymentUC, confirmShipmentUC, cancelOrderUC)
		deleteOrderUC = orderUseCase.NewDeleteOrderUseCase(orderRepo)
		dailyReportUC = orderUseCase.NewDailyReportUseCase(db)
	}

	orderCtrl := orderController.NewOrderController(
		createOrderUC,
		checkoutCartUC,
		getOrderUC,
		listOrdersUC,
		searchOrdersUC,
		confirmPaymentUC,
		confirmShipmentUC,
		updateStatusUC,
		cancelOrderUC,
		deleteOrderUC,
	)
	reportCtrl := orderController.NewReportController(dailyReportUC)

	// Registrar rutas
	productCtrl.RegisterRoutes(router)
	cartCtrl.RegisterRoutes(router)
	orderCtrl.RegisterRoutes(router)
	reportCtrl.RegisterRoutes(router)

	log.Println("Módulos configurados exitosamente")
}
