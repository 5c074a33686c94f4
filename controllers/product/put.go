package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hafiz1379/shopsphere/models"
	"gorm.io/gorm"
)

// UpdateProduct updates any provided fields; missing form fields keep their
// current values.
func UpdateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if id == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product ID is required"})
			return
		}

		var product models.Product
		if err := db.First(&product, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}

		if name := c.PostForm("name"); name != "" {
			product.Name = name
		}
		if description := c.PostForm("description"); description != "" {
			product.Description = description
		}
		if category := c.PostForm("category"); category != "" {
			product.Category = category
		}
		if brand := c.PostForm("brand"); brand != "" {
			product.Brand = brand
		}
		if s := c.PostForm("price"); s != "" {
			price, err := strconv.ParseFloat(s, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
				return
			}
			product.Price = price
		}
		if s := c.PostForm("original_price"); s != "" {
			op, err := strconv.ParseFloat(s, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid original_price"})
				return
			}
			product.OriginalPrice = op
		}
		if s := c.PostForm("stock"); s != "" {
			stock, err := strconv.Atoi(s)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stock"})
				return
			}
			product.Stock = stock
		}
		if s := c.PostForm("featured"); s != "" {
			product.Featured = s == "true"
		}
		if s := c.PostForm("is_active"); s != "" {
			product.IsActive = s == "true"
		}

		if url, err := saveProductImage(c, "image"); err == nil {
			product.Image = url
		}

		if err := db.Save(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
			return
		}

		c.JSON(http.StatusOK, product)
	}
}
