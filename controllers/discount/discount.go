package discountControllers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hafiz1379/shopsphere/models"
	"github.com/hafiz1379/shopsphere/utils"
	"gorm.io/gorm"
)

type DiscountInput struct {
	Code           string    `json:"code" binding:"required"`
	Type           string    `json:"type" binding:"required,oneof=percentage fixed"`
	Value          float64   `json:"value" binding:"required,gte=0"`
	MinOrderAmount float64   `json:"min_order_amount"`
	MaxDiscount    *float64  `json:"max_discount"`
	UsageLimit     *int      `json:"usage_limit"`
	StartDate      time.Time `json:"start_date" binding:"required"`
	EndDate        time.Time `json:"end_date" binding:"required"`
	IsActive       *bool     `json:"is_active"`
}

// GET /admin/discounts
func GetAllDiscounts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit, offset := utils.ParsePagination(c, 10)

		var discounts []models.Discount
		if err := db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&discounts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch discounts"})
			return
		}

		var total int64
		db.Model(&models.Discount{}).Count(&total)

		c.JSON(http.StatusOK, gin.H{
			"data":       discounts,
			"pagination": utils.NewPagination(page, limit, total),
		})
	}
}

// GET /admin/discounts/:id
func GetDiscountByID(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var discount models.Discount
		if err := db.First(&discount, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Discount not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch discount"})
			return
		}
		c.JSON(http.StatusOK, discount)
	}
}

// POST /admin/discounts
func CreateDiscount(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input DiscountInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.EndDate.Before(input.StartDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must not be before start_date"})
			return
		}

		isActive := true
		if input.IsActive != nil {
			isActive = *input.IsActive
		}

		discount := models.Discount{
			Code:           strings.ToUpper(strings.TrimSpace(input.Code)),
			Type:           models.DiscountType(input.Type),
			Value:          input.Value,
			MinOrderAmount: input.MinOrderAmount,
			MaxDiscount:    input.MaxDiscount,
			UsageLimit:     input.UsageLimit,
			StartDate:      input.StartDate,
			EndDate:        input.EndDate,
			IsActive:       isActive,
		}

		if err := db.Create(&discount).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create discount"})
			return
		}

		c.JSON(http.StatusCreated, discount)
	}
}

// PUT /admin/discounts/:id
func UpdateDiscount(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var discount models.Discount
		if err := db.First(&discount, "id = ?", c.Param("id")).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Discount not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch discount"})
			return
		}

		var input DiscountInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.EndDate.Before(input.StartDate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must not be before start_date"})
			return
		}

		discount.Code = strings.ToUpper(strings.TrimSpace(input.Code))
		discount.Type = models.DiscountType(input.Type)
		discount.Value = input.Value
		discount.MinOrderAmount = input.MinOrderAmount
		discount.MaxDiscount = input.MaxDiscount
		discount.UsageLimit = input.UsageLimit
		discount.StartDate = input.StartDate
		discount.EndDate = input.EndDate
		if input.IsActive != nil {
			discount.IsActive = *input.IsActive
		}

		if err := db.Save(&discount).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update discount"})
			return
		}

		c.JSON(http.StatusOK, discount)
	}
}

// DELETE /admin/discounts/:id
func DeleteDiscount(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Where("id = ?", c.Param("id")).Delete(&models.Discount{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete discount"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Discount not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Discount deleted successfully"})
	}
}
