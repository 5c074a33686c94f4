package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/hafiz1379/shopsphere/controllers/cart"
	discountControllers "github.com/hafiz1379/shopsphere/controllers/discount"
	orderControllers "github.com/hafiz1379/shopsphere/controllers/order"
	productcontroller "github.com/hafiz1379/shopsphere/controllers/product"
	statsControllers "github.com/hafiz1379/shopsphere/controllers/stats"
	userControllers "github.com/hafiz1379/shopsphere/controllers/user"
	"github.com/hafiz1379/shopsphere/middleware"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers everything behind the admin role check:
// user management, catalog management, discounts, order management and
// the dashboard.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	admin := r.Group("/admin", middleware.ValidateToken, middleware.RequireAdmin)
	{
		users := admin.Group("/users")
		{
			users.GET("", userControllers.GetAllUsers(db))
			users.GET("/:id", userControllers.GetUserByID(db))
			users.PUT("/:id", userControllers.UpdateUserByAdmin(db))
			users.DELETE("/:id", userControllers.DeleteUser(db))
		}

		products := admin.Group("/products")
		{
			products.POST("", productcontroller.CreateProduct(db))
			products.PUT("/:id", productcontroller.UpdateProduct(db))
			products.DELETE("/:id", productcontroller.DeleteProduct(db))
			products.POST("/import-excel", productcontroller.ImportProductsFromExcel(db))
			products.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}

		discounts := admin.Group("/discounts")
		{
			discounts.GET("", discountControllers.GetAllDiscounts(db))
			discounts.GET("/:id", discountControllers.GetDiscountByID(db))
			discounts.POST("", discountControllers.CreateDiscount(db))
			discounts.PUT("/:id", discountControllers.UpdateDiscount(db))
			discounts.DELETE("/:id", discountControllers.DeleteDiscount(db))
		}

		admin.GET("/user-cart/:user_id", cartControllers.GetAdminUserCart(db))
		admin.GET("/stats/dashboard", statsControllers.GetDashboardStats(db))

		orders := admin.Group("/orders")
		{
			orders.GET("", orderControllers.GetAllOrdersHandler(db))
			orders.PUT("/:orderID/status", orderControllers.UpdateOrderStatusHandler(db))
			orders.GET("/ws", orderControllers.OrderWebSocketHandler)
		}
	}
}
