package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hafiz1379/shopsphere/models"
	"github.com/hafiz1379/shopsphere/utils"
	"gorm.io/gorm"
)

// GetProducts lists active products with filtering, sorting, and pagination.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit, offset := utils.ParsePagination(c, 12)

		query := db.Model(&models.Product{}).Where("is_active = ?", true)

		if search := c.Query("search"); search != "" {
			likePattern := "%" + search + "%"
			query = query.Where("name ILIKE ? OR description ILIKE ? OR brand ILIKE ?", likePattern, likePattern, likePattern)
		}

		if category := c.Query("category"); category != "" && category != "All" {
			query = query.Where("category = ?", category)
		}

		if minPriceStr := c.Query("min_price"); minPriceStr != "" {
			mp, err := strconv.ParseFloat(minPriceStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
			query = query.Where("price >= ?", mp)
		}
		if maxPriceStr := c.Query("max_price"); maxPriceStr != "" {
			mp, err := strconv.ParseFloat(maxPriceStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
			query = query.Where("price <= ?", mp)
		}

		if c.Query("featured") == "true" {
			query = query.Where("featured = ?", true)
		}

		var orderClause string
		switch c.Query("sort") {
		case "price-low":
			orderClause = "price ASC"
		case "price-high":
			orderClause = "price DESC"
		case "rating":
			orderClause = "rating DESC"
		default:
			orderClause = "created_at DESC"
		}

		var total int64
		if err := query.Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count products"})
			return
		}

		var products []models.Product
		if err := query.Order(orderClause).Offset(offset).Limit(limit).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"data":       products,
			"pagination": utils.NewPagination(page, limit, total),
		})
	}
}

// GetCategories returns the distinct category names in the catalog.
func GetCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var categories []string
		if err := db.Model(&models.Product{}).
			Where("is_active = ?", true).
			Distinct("category").
			Order("category").
			Pluck("category", &categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		c.JSON(http.StatusOK, categories)
	}
}
