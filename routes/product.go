package routes

import (
	"github.com/gin-gonic/gin"
	productcontroller "github.com/hafiz1379/shopsphere/controllers/product"
	"github.com/hafiz1379/shopsphere/middleware"
	"gorm.io/gorm"
)

// SetupProductRoutes registers the public catalog endpoints plus the
// JWT-protected review endpoint.
func SetupProductRoutes(r *gin.Engine, db *gorm.DB) {
	products := r.Group("/products")
	{
		products.GET("", productcontroller.GetProducts(db))
		products.GET("/categories", productcontroller.GetCategories(db))
		products.GET("/:id", productcontroller.GetProductByID(db))

		products.POST("/:id/reviews", middleware.ValidateToken, productcontroller.CreateReview(db))
	}
}
