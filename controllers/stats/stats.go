package statsControllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hafiz1379/shopsphere/models"
	"gorm.io/gorm"
)

type DailyRevenue struct {
	Day     string  `json:"day"`
	Revenue float64 `json:"revenue"`
	Orders  int64   `json:"orders"`
}

type TopProduct struct {
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	TotalSold int64   `json:"total_sold"`
	Revenue   float64 `json:"revenue"`
}

// GET /admin/stats/dashboard
func GetDashboardStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var totalOrders, totalUsers, totalProducts int64
		db.Model(&models.Order{}).Count(&totalOrders)
		db.Model(&models.User{}).Count(&totalUsers)
		db.Model(&models.Product{}).Count(&totalProducts)

		var totalRevenue float64
		db.Model(&models.Order{}).
			Where("is_paid = ?", true).
			Select("COALESCE(SUM(total_price), 0)").
			Scan(&totalRevenue)

		orderStats := make(map[string]int64)
		for _, status := range []models.OrderStatus{
			models.OrderStatusPending,
			models.OrderStatusProcessing,
			models.OrderStatusShipped,
			models.OrderStatusDelivered,
		} {
			var count int64
			db.Model(&models.Order{}).Where("status = ?", status).Count(&count)
			orderStats[string(status)] = count
		}

		// Daily revenue for the trailing month
		lastMonth := time.Now().AddDate(0, -1, 0)
		var dailyRevenue []DailyRevenue
		if err := db.Model(&models.Order{}).
			Select("to_char(created_at, 'YYYY-MM-DD') AS day, SUM(total_price) AS revenue, COUNT(*) AS orders").
			Where("is_paid = ? AND created_at >= ?", true, lastMonth).
			Group("day").
			Order("day").
			Scan(&dailyRevenue).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to aggregate revenue"})
			return
		}

		var recentOrders []models.Order
		if err := db.Preload("User").Order("created_at DESC").Limit(5).Find(&recentOrders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch recent orders"})
			return
		}

		var topProducts []TopProduct
		if err := db.Model(&models.OrderItem{}).
			Select("order_items.product_id, MAX(order_items.name) AS name, SUM(order_items.quantity) AS total_sold, SUM(order_items.price * order_items.quantity) AS revenue").
			Group("order_items.product_id").
			Order("total_sold DESC").
			Limit(5).
			Scan(&topProducts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to aggregate top products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"total_orders":   totalOrders,
			"total_users":    totalUsers,
			"total_products": totalProducts,
			"total_revenue":  totalRevenue,
			"order_stats":    orderStats,
			"daily_revenue":  dailyRevenue,
			"recent_orders":  recentOrders,
			"top_products":   topProducts,
		})
	}
}
