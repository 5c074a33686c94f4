package routes

import (
	"github.com/gin-gonic/gin"
	orderControllers "github.com/hafiz1379/shopsphere/controllers/order"
	"github.com/hafiz1379/shopsphere/middleware"
	"gorm.io/gorm"
)

// SetupOrderRoutes registers checkout, payment and order-tracking endpoints.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB) {
	orders := r.Group("/orders", middleware.ValidateToken)
	{
		orders.POST("", orderControllers.CreateOrderHandler(db))
		orders.GET("/myorders", orderControllers.GetMyOrdersHandler(db))
		orders.POST("/validate-discount", orderControllers.ValidateDiscountHandler(db))
		orders.GET("/:orderID", orderControllers.GetOrderByIDHandler(db))
		orders.POST("/:orderID/payment-intent", orderControllers.CreatePaymentIntentHandler(db))
		orders.PUT("/:orderID/pay", orderControllers.PayOrderHandler(db))
	}
}
