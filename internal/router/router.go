package router

import (
	"fmt"
	"strings"

	"github.com/joymarket/joymarket/internal/cache"
	"github.com/joymarket/joymarket/internal/config"
	"github.com/joymarket/joymarket/internal/constants"
	adminhandlers "github.com/joymarket/joymarket/internal/http/handlers/admin"
	courierhandlers "github.com/joymarket/joymarket/internal/http/handlers/courier"
	publichandlers "github.com/joymarket/joymarket/internal/http/handlers/public"
	"github.com/joymarket/joymarket/internal/logger"
	"github.com/joymarket/joymarket/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter builds the HTTP route table
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	courierHandler := courierhandlers.New(c)
	adminHandler := adminhandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = constants.RedisPrefixDefault
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
		MessageKey:    "error.login_too_many",
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	apiV1 := r.Group("/api/v1")
	{
		public := apiV1.Group("/public")
		{
			public.GET("/config", publicHandler.GetConfig)
			public.GET("/products", publicHandler.GetProducts)
			public.GET("/products/:id", publicHandler.GetProduct)
			public.GET("/captcha/image", publicHandler.GetImageCaptcha)
		}

		auth := apiV1.Group("/auth")
		{
			auth.POST("/register", publicHandler.Register)
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")), publicHandler.Login)
		}

		// Authenticated surface. RBAC matches the caller's role against
		// the route path with the /api/v1 prefix stripped.
		authed := apiV1.Group("")
		authed.Use(JWTAuthMiddleware(cfg.JWT.SecretKey, c.UserRepo), RBACMiddleware(c.AuthzService))
		{
			authed.GET("/me", publicHandler.GetCurrentUser)
			authed.PUT("/me/profile", publicHandler.UpdateProfile)
			authed.PUT("/me/password", publicHandler.ChangePassword)
			authed.GET("/me/login-logs", publicHandler.ListMyLoginLogs)

			authed.GET("/cart", publicHandler.GetCart)
			authed.POST("/cart/items", publicHandler.AddCartItem)
			authed.PUT("/cart/items", publicHandler.UpdateCartItem)
			authed.DELETE("/cart/items/:product_id", publicHandler.DeleteCartItem)

			authed.POST("/orders/checkout", publicHandler.Checkout)
			authed.GET("/orders", publicHandler.ListOrders)
			authed.GET("/orders/:id", publicHandler.GetOrder)
			authed.GET("/orders/by-order-no/:order_no", publicHandler.GetOrderByOrderNo)

			authed.GET("/balance", publicHandler.GetBalance)
			authed.POST("/balance/topup", publicHandler.TopUpBalance)
			authed.GET("/balance/transactions", publicHandler.ListBalanceTransactions)

			courier := authed.Group("/courier")
			{
				courier.GET("/deliveries", courierHandler.ListMyDeliveries)
				courier.PATCH("/deliveries/:id/status", courierHandler.AdvanceMyDelivery)
			}

			admin := authed.Group("/admin")
			{
				admin.GET("/dashboard/overview", adminHandler.GetDashboardOverview)
				admin.GET("/dashboard/trends", adminHandler.GetDashboardTrends)
				admin.GET("/dashboard/rankings", adminHandler.GetDashboardRankings)

				admin.GET("/products", adminHandler.ListProducts)
				admin.POST("/products", adminHandler.CreateProduct)
				admin.GET("/products/:id", adminHandler.GetProduct)
				admin.PUT("/products/:id", adminHandler.UpdateProduct)
				admin.DELETE("/products/:id", adminHandler.DeleteProduct)
				admin.PATCH("/products/:id/stock", adminHandler.SetProductStock)

				admin.GET("/promos", adminHandler.ListPromos)
				admin.POST("/promos", adminHandler.CreatePromo)
				admin.GET("/promos/:id", adminHandler.GetPromo)
				admin.PUT("/promos/:id", adminHandler.UpdatePromo)
				admin.DELETE("/promos/:id", adminHandler.DeletePromo)

				admin.GET("/couriers", adminHandler.ListCouriers)
				admin.POST("/couriers", adminHandler.CreateCourier)
				admin.GET("/couriers/:id", adminHandler.GetCourier)
				admin.PUT("/couriers/:id", adminHandler.UpdateCourier)
				admin.DELETE("/couriers/:id", adminHandler.DeleteCourier)

				admin.GET("/customers", adminHandler.ListCustomers)
				admin.GET("/customers/:id", adminHandler.GetCustomer)
				admin.GET("/customers/:id/transactions", adminHandler.ListCustomerTransactions)
				admin.POST("/customers/:id/balance/adjust", adminHandler.AdjustCustomerBalance)

				admin.GET("/users", adminHandler.ListUsers)
				admin.PATCH("/users/:id/status", adminHandler.SetUserStatus)

				admin.GET("/orders", adminHandler.ListOrders)
				admin.GET("/orders/:id", adminHandler.GetOrder)

				admin.GET("/deliveries", adminHandler.ListDeliveries)
				admin.POST("/deliveries", adminHandler.AssignDelivery)
				admin.PATCH("/deliveries/:id/status", adminHandler.AdvanceDelivery)

				admin.GET("/login-logs", adminHandler.ListLoginLogs)
			}
		}
	}

	return r
}
