package routes

import (
	"github.com/gin-gonic/gin"
	cartControllers "github.com/hafiz1379/shopsphere/controllers/cart"
	userControllers "github.com/hafiz1379/shopsphere/controllers/user"
	wishlistControllers "github.com/hafiz1379/shopsphere/controllers/wishlist"
	"github.com/hafiz1379/shopsphere/middleware"
	"gorm.io/gorm"
)

// SetupUserRoutes registers the profile, cart and wishlist endpoints.
// Everything here belongs to the authenticated user.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB) {
	user := r.Group("/user", middleware.ValidateToken)
	{
		user.GET("", userControllers.GetUser(db))
		user.PUT("", userControllers.UpdateUser(db))
		user.PUT("/password", userControllers.UpdatePassword(db))

		cart := user.Group("/cart")
		{
			cart.GET("", cartControllers.GetUserCart(db))
			cart.POST("", cartControllers.AddCartItem(db))
			cart.PUT("/:product_id", cartControllers.UpdateCartItem(db))
			cart.DELETE("/:product_id", cartControllers.DeleteCartItem(db))
			cart.DELETE("", cartControllers.ClearUserCart(db))
		}

		wishlist := user.Group("/wishlist")
		{
			wishlist.GET("", wishlistControllers.GetWishlist(db))
			wishlist.POST("", wishlistControllers.AddToWishlist(db))
			wishlist.DELETE("/:product_id", wishlistControllers.RemoveFromWishlist(db))
		}
	}
}
