package router

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/cache"
	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/config"
	adminhandlers "github.com/sodjinoucarrache2006/artisanat-virtuel/internal/http/handlers/admin"
	publichandlers "github.com/sodjinoucarrache2006/artisanat-virtuel/internal/http/handlers/public"
	supplierhandlers "github.com/sodjinoucarrache2006/artisanat-virtuel/internal/http/handlers/supplier"
	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/logger"
	"github.com/sodjinoucarrache2006/artisanat-virtuel/internal/provider"
)

// SetupRouter wires middlewares and the full route table.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	supplierHandler := supplierhandlers.New(c)
	adminHandler := adminhandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = "av"
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		BlockSeconds:  cfg.Security.LoginRateLimit.BlockSeconds,
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	api := r.Group("/api")
	{
		// Public endpoints
		api.POST("/register", publicHandler.Register)
		api.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")), publicHandler.Login)
		api.GET("/captcha/image", publicHandler.GetImageCaptcha)
		api.GET("/products", publicHandler.ListProducts)
		api.GET("/products/:id", publicHandler.GetProduct)

		// Authenticated endpoints; the casbin policy decides which
		// roles reach which route family.
		authorized := api.Group("")
		authorized.Use(BearerAuthMiddleware(c.AuthService))
		authorized.Use(RoleRBACMiddleware(c.AuthzService))
		{
			authorized.GET("/user", publicHandler.CurrentUser)
			authorized.POST("/logout", publicHandler.Logout)
			authorized.DELETE("/profile/remove-image", publicHandler.RemoveProfileImage)

			// Cart
			authorized.GET("/cart", publicHandler.GetCart)
			authorized.POST("/cart/add", publicHandler.AddCartItem)
			authorized.PUT("/cart/update/:id", publicHandler.UpdateCartItem)
			authorized.DELETE("/cart/remove/:id", publicHandler.RemoveCartItem)

			// Orders
			authorized.POST("/orders", publicHandler.CreateOrder)
			authorized.GET("/orders", publicHandler.ListOrders)
			authorized.GET("/orders/:id", publicHandler.GetOrder)
			authorized.DELETE("/orders/:id", publicHandler.DeleteOrder)

			// Supplier account creation, admin only via policy
			authorized.POST("/supplier", adminHandler.CreateSupplier)

			// Supplier routes
			supplier := authorized.Group("/supplier")
			{
				supplier.GET("/products", supplierHandler.ListProducts)
				supplier.POST("/products", supplierHandler.CreateProduct)
				supplier.PUT("/products/:id", supplierHandler.UpdateProduct)
				supplier.DELETE("/products/:id", supplierHandler.DeleteProduct)
				supplier.GET("/addresses", supplierHandler.ListAddresses)
				supplier.GET("/orders", supplierHandler.ListOrders)
				supplier.PUT("/orders/:id/status", supplierHandler.UpdateOrderStatus)
				supplier.GET("/order-stats", supplierHandler.OrderStats)
				supplier.GET("/sales-evolution", supplierHandler.SalesEvolution)
			}

			// Admin routes
			admin := authorized.Group("/admin")
			{
				admin.POST("/products", adminHandler.CreateProduct)
				admin.PUT("/products/:id", adminHandler.UpdateProduct)
				admin.DELETE("/products/:id", adminHandler.DeleteProduct)
				admin.GET("/orders", adminHandler.ListOrders)
				admin.PUT("/orders/:id/status", adminHandler.UpdateOrderStatus)
			}
		}
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
