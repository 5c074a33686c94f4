package wishlistControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/hafiz1379/shopsphere/models"
	"gorm.io/gorm"
)

type AddWishlistInput struct {
	ProductID uint `json:"product_id" binding:"required"`
}

func getOrCreateWishlist(db *gorm.DB, userID string) (*models.Wishlist, error) {
	var wishlist models.Wishlist
	err := db.Preload("Products").Where("user_id = ?", userID).First(&wishlist).Error
	if err == gorm.ErrRecordNotFound {
		wishlist = models.Wishlist{UserID: userID}
		if err := db.Create(&wishlist).Error; err != nil {
			return nil, err
		}
		return &wishlist, nil
	}
	if err != nil {
		return nil, err
	}
	return &wishlist, nil
}

// GET /user/wishlist
func GetWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		wishlist, err := getOrCreateWishlist(db, userIDVal.(string))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist"})
			return
		}

		c.JSON(http.StatusOK, wishlist.Products)
	}
}

// POST /user/wishlist
func AddToWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input AddWishlistInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", input.ProductID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		wishlist, err := getOrCreateWishlist(db, userIDVal.(string))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wishlist"})
			return
		}

		for _, p := range wishlist.Products {
			if p.ID == product.ID {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product already in wishlist"})
				return
			}
		}

		if err := db.Model(wishlist).Association("Products").Append(&product); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to wishlist"})
			return
		}

		db.Preload("Products").First(wishlist, wishlist.ID)
		c.JSON(http.StatusOK, wishlist.Products)
	}
}

// DELETE /user/wishlist/:product_id
func RemoveFromWishlist(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var wishlist models.Wishlist
		if err := db.Preload("Products").Where("user_id = ?", userIDVal).First(&wishlist).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Wishlist not found"})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", c.Param("product_id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		if err := db.Model(&wishlist).Association("Products").Delete(&product); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove from wishlist"})
			return
		}

		db.Preload("Products").First(&wishlist, wishlist.ID)
		c.JSON(http.StatusOK, wishlist.Products)
	}
}
