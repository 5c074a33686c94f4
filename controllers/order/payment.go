package orderControllers

import (
	"errors"
	"log"
	"math"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hafiz1379/shopsphere/controllers/stripe"
	"github.com/hafiz1379/shopsphere/models"
	"gorm.io/gorm"
)

type PayOrderRequest struct {
	TransactionID string `json:"transaction_id" binding:"required"`
	Status        string `json:"status" binding:"required"`
	UpdateTime    string `json:"update_time"`
	EmailAddress  string `json:"email_address"`
}

// POST /orders/:orderID/payment-intent
func CreatePaymentIntentHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		order, err := findOrderByParam(db, orderID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		userID, _ := c.Get("user_id")
		role, _ := c.Get("role")
		if order.UserID != userID && role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to pay this order"})
			return
		}

		if order.IsPaid {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Order is already paid"})
			return
		}

		// Stripe wants the amount in minor units
		amount := int64(math.Round(order.TotalPrice * 100))
		clientSecret, intentID, err := stripe.CreatePaymentIntent(amount, "usd", order.OrderRef)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"client_secret":     clientSecret,
			"payment_intent_id": intentID,
		})
	}
}

// PUT /orders/:orderID/pay
// Marks the order paid, then runs three independent follow-up effects: stock
// decrement, cart clear, and discount usage increment. Each is best-effort; a
// failure is logged for reconciliation and does not roll back the others or
// the payment state itself.
func PayOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		var req PayOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order, err := findOrderByParam(db, orderID, "Items")
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			return
		}

		userID, _ := c.Get("user_id")
		role, _ := c.Get("role")
		if order.UserID != userID && role != models.RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to pay this order"})
			return
		}

		result := models.PaymentResult{
			TransactionID: req.TransactionID,
			Status:        req.Status,
			UpdateTime:    req.UpdateTime,
			EmailAddress:  req.EmailAddress,
		}
		if err := markPaid(order, result, time.Now()); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Order is already paid"})
			return
		}

		if err := db.Save(order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order"})
			return
		}

		runPaymentFollowUps(db, order)
		broadcastPaidOrder(*order)

		c.JSON(http.StatusOK, order)
	}
}

// runPaymentFollowUps applies the post-payment side effects. The three steps
// are independent and not wrapped in a transaction; the paid state is already
// committed when they run.
func runPaymentFollowUps(db *gorm.DB, order *models.Order) {
	// Decrement stock on every ordered product. The single UPDATE expression
	// keeps each decrement atomic against concurrent payments.
	for _, item := range order.Items {
		if err := db.Model(&models.Product{}).
			Where("id = ?", item.ProductID).
			Update("stock", gorm.Expr("stock - ?", item.Quantity)).Error; err != nil {
			log.Printf("order %s: stock decrement failed for product %d: %v", order.OrderRef, item.ProductID, err)
		}
	}

	// Clear the buyer's cart
	var cart models.Cart
	if err := db.Where("user_id = ?", order.UserID).First(&cart).Error; err != nil {
		log.Printf("order %s: cart lookup failed: %v", order.OrderRef, err)
	} else {
		if err := db.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error; err != nil {
			log.Printf("order %s: cart clear failed: %v", order.OrderRef, err)
		}
		if err := db.Model(&cart).Updates(map[string]interface{}{
			"total_items": 0,
			"total_price": 0,
		}).Error; err != nil {
			log.Printf("order %s: cart totals reset failed: %v", order.OrderRef, err)
		}
	}

	// Count the discount usage
	if order.DiscountCode != nil {
		if err := db.Model(&models.Discount{}).
			Where("code = ?", *order.DiscountCode).
			Update("used_count", gorm.Expr("used_count + 1")).Error; err != nil {
			log.Printf("order %s: discount usage increment failed for %s: %v", order.OrderRef, *order.DiscountCode, err)
		}
	}
}
