package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/storemart/internal/domain/model"
	"github.com/polkiloo/storemart/internal/server/http/handlers"
	"github.com/polkiloo/storemart/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.StoreFacade, metrics *middleware.Metrics, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))
	engine.Use(metrics.Collect())

	authHandler := handlers.NewAuthHandler(facade)
	productHandler := handlers.NewProductHandler(facade)
	categoryHandler := handlers.NewCategoryHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	paymentHandler := handlers.NewPaymentHandler(facade)
	discountHandler := handlers.NewDiscountHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade)

	engine.GET("/health", healthHandler.Live)
	engine.GET("/ready", healthHandler.Ready)
	engine.GET("/metrics", metrics.Exporter())

	api := engine.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	api.GET("/products", productHandler.List)
	api.GET("/products/:id", productHandler.Get)
	api.GET("/categories", categoryHandler.List)
	api.POST("/cart/discount", discountHandler.Quote)

	vendor := api.Group("/vendor")
	vendor.Use(middleware.AuthRequired(facade))
	vendor.Use(middleware.RequireRole(model.RoleVendor, model.RoleAdmin))
	vendor.GET("/products", productHandler.ListMine)
	vendor.POST("/products", productHandler.Create)
	vendor.PUT("/products/:id", productHandler.Update)

	orders := api.Group("/orders")
	orders.Use(middleware.AuthRequired(facade))
	orders.POST("", orderHandler.Checkout)
	orders.GET("", orderHandler.List)
	orders.GET("/:id", orderHandler.Get)
	orders.GET("/:id/transitions", orderHandler.Transitions)
	orders.POST("/:id/payment", paymentHandler.Submit)

	admin := api.Group("/admin")
	admin.Use(middleware.AuthRequired(facade))
	admin.Use(middleware.RequireRole(model.RoleAdmin))
	admin.POST("/categories", categoryHandler.Create)
	admin.PUT("/categories/:id", categoryHandler.Update)
	admin.DELETE("/categories/:id", categoryHandler.Delete)
	admin.GET("/orders", orderHandler.AdminList)
	admin.POST("/orders/:id/status", orderHandler.UpdateStatus)
	admin.GET("/payments", paymentHandler.ListPending)
	admin.POST("/payments/:id/verify", paymentHandler.Verify)
	admin.POST("/payments/:id/reject", paymentHandler.Reject)
	admin.GET("/discounts", discountHandler.List)
	admin.POST("/discounts", discountHandler.Create)
	admin.PUT("/discounts/:id", discountHandler.Update)
	admin.POST("/discounts/:id/toggle", discountHandler.Toggle)

	return engine
}
