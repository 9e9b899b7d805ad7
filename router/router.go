package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/ecommerce-api/config"
	"github.com/yeremiapane/ecommerce-api/controllers"
	"github.com/yeremiapane/ecommerce-api/events"
	"github.com/yeremiapane/ecommerce-api/middlewares"
	"github.com/yeremiapane/ecommerce-api/utils"
)

func SetupRouter(db *gorm.DB, hub *events.Hub, cfg config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(cfg.CORSAllowedOrigins))
	r.Use(middlewares.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).RateLimit())

	customerCtrl := controllers.NewCustomerController(db, hub)
	accountCtrl := controllers.NewCustomerAccountController(db, hub)
	productCtrl := controllers.NewProductController(db, hub)
	orderCtrl := controllers.NewOrderController(db, hub)

	r.GET("/healthz", func(c *gin.Context) {
		utils.RespondJSON(c, http.StatusOK, "ok", nil)
	})
	r.GET("/readyz", readiness(db))

	if hub != nil {
		r.GET("/ws/events", hub.ServeWS)
	}

	customers := r.Group("/customers")
	{
		customers.GET("", customerCtrl.GetAllCustomers)
		customers.POST("", customerCtrl.CreateCustomer)
		customers.GET("/:id", customerCtrl.GetCustomerByID)
		customers.PUT("/:id", customerCtrl.UpdateCustomer)
		customers.DELETE("/:id", customerCtrl.DeleteCustomer)
	}

	accounts := r.Group("/customeraccounts")
	{
		accounts.GET("", accountCtrl.GetAllAccounts)
		accounts.POST("", accountCtrl.CreateAccount)
		accounts.GET("/:id", accountCtrl.GetAccountByID)
		accounts.PUT("/:id", accountCtrl.UpdateAccount)
		accounts.DELETE("/:id", accountCtrl.DeleteAccount)
	}

	products := r.Group("/products")
	{
		products.GET("", productCtrl.GetAllProducts)
		products.POST("", productCtrl.CreateProduct)
		products.GET("/checkstock", productCtrl.CheckStock)
		products.GET("/:id", productCtrl.GetProductByID)
		products.PUT("/:id", productCtrl.UpdateProduct)
		products.DELETE("/:id", productCtrl.DeleteProduct)
	}

	orders := r.Group("/orders")
	{
		orders.GET("", orderCtrl.GetAllOrders)
		orders.POST("", orderCtrl.CreateOrder)
		orders.GET("/track_by_id", orderCtrl.TrackOrder)
		orders.GET("/orderhistory", orderCtrl.OrderHistory)
		orders.GET("/:id", orderCtrl.GetOrderByID)
		orders.PUT("/:id", orderCtrl.UpdateOrder)
		orders.DELETE("/:id", orderCtrl.DeleteOrder)
	}

	return r
}

// readiness reports 503 until the database answers a ping.
func readiness(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			utils.ErrorLogger.Warnf("readiness check failed: %v", err)
			utils.RespondError(c, http.StatusServiceUnavailable, err)
			return
		}
		utils.RespondJSON(c, http.StatusOK, "ready", nil)
	}
}
