package orderControllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/hafiz1379/shopsphere/models"
	"github.com/hafiz1379/shopsphere/utils"
	"gorm.io/gorm"
)

// -------- Request Structs --------

type CreateOrderRequest struct {
	ShippingAddress models.Address `json:"shipping_address" binding:"required"`
	PaymentMethod   string         `json:"payment_method" binding:"required"`
	DiscountCode    string         `json:"discount_code"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ValidateDiscountRequest struct {
	Code        string  `json:"code" binding:"required"`
	OrderAmount float64 `json:"order_amount" binding:"gte=0"`
}

// -------- Helpers --------

// Map string to OrderStatus
func mapOrderStatus(status string) (models.OrderStatus, error) {
	switch strings.ToLower(status) {
	case string(models.OrderStatusPending):
		return models.OrderStatusPending, nil
	case string(models.OrderStatusProcessing):
		return models.OrderStatusProcessing, nil
	case string(models.OrderStatusShipped):
		return models.OrderStatusShipped, nil
	case string(models.OrderStatusDelivered):
		return models.OrderStatusDelivered, nil
	case string(models.OrderStatusCancelled):
		return models.OrderStatusCancelled, nil
	default:
		return "", errors.New("invalid order status")
	}
}

// Generate unique order reference
func generateOrderRef() string {
	return time.Now().Format("20060102150405") + "-" + uuid.NewString()
}

// parseOrderID reports whether a path parameter addresses the numeric primary
// key. Order refs always contain a dash, so the two never overlap.
func parseOrderID(param string) (uint, bool) {
	id, err := strconv.ParseUint(param, 10, 64)
	return uint(id), err == nil
}

// findOrderByParam loads an order by numeric id or by its order ref. Querying
// the id column with a non-numeric string would fail at parameter encoding on
// Postgres, so the column is picked up front.
func findOrderByParam(db *gorm.DB, param string, preloads ...string) (*models.Order, error) {
	query := db
	for _, preload := range preloads {
		query = query.Preload(preload)
	}

	var order models.Order
	if id, ok := parseOrderID(param); ok {
		if err := query.First(&order, "id = ?", id).Error; err != nil {
			return nil, err
		}
		return &order, nil
	}
	if err := query.Where("order_ref = ?", param).First(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// findDiscountByCode looks a code up case-insensitively (codes are stored
// uppercase). Returns nil without error when no such code exists.
func findDiscountByCode(db *gorm.DB, code string) (*models.Discount, error) {
	var discount models.Discount
	err := db.Where("code = ?", strings.ToUpper(strings.TrimSpace(code))).First(&discount).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &discount, nil
}

// -------- Core Logic --------

// CreateOrder builds an order snapshot from the user's cart. An unknown or
// invalid discount code is silently ignored here; the validate-discount
// endpoint surfaces those failures before checkout.
func CreateOrder(db *gorm.DB, userID string, req CreateOrderRequest, now time.Time) (*models.Order, error) {
	var cart models.Cart
	if err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartEmpty
		}
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, ErrCartEmpty
	}

	// Load the referenced products for the stock check
	productIDs := make([]uint, 0, len(cart.Items))
	for _, item := range cart.Items {
		productIDs = append(productIDs, item.ProductID)
	}
	var products []models.Product
	if err := db.Where("id IN ?", productIDs).Find(&products).Error; err != nil {
		return nil, err
	}
	productsByID := make(map[uint]models.Product, len(products))
	for _, p := range products {
		productsByID[p.ID] = p
	}

	if err := checkStock(cart.Items, productsByID); err != nil {
		return nil, err
	}

	var discount *models.Discount
	if req.DiscountCode != "" {
		d, err := findDiscountByCode(db, req.DiscountCode)
		if err != nil {
			return nil, err
		}
		discount = d
	}

	itemsPrice := cart.TotalPrice
	shipping, tax, discountAmount, total, appliedCode := priceOrder(itemsPrice, discount, now)

	order := models.Order{
		OrderRef:        generateOrderRef(),
		UserID:          userID,
		Items:           buildOrderItems(cart.Items),
		ShippingAddress: req.ShippingAddress,
		PaymentMethod:   req.PaymentMethod,
		ItemsPrice:      itemsPrice,
		ShippingPrice:   shipping,
		TaxPrice:        tax,
		DiscountCode:    appliedCode,
		DiscountAmount:  discountAmount,
		TotalPrice:      total,
		Status:          models.OrderStatusPending,
		CreatedAt:       now,
	}

	if err := db.Create(&order).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// -------- Handlers --------

// POST /orders
func CreateOrderHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var req CreateOrderRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		order, err := CreateOrder(db, userIDVal.(string), req, time.Now())
		if err != nil {
			var stockErr *InsufficientStockError
			switch {
			case errors.Is(err, ErrCartEmpty):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			case errors.As(err, &stockErr):
				c.JSON(http.StatusBadRequest, gin.H{"error": "Not enough stock for " + stockErr.ProductName})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create order"})
			}
			return
		}

		c.JSON(http.StatusCreated, order)
	}
}

// POST /orders/validate-discount
// Side-effect-free pre-check that, unlike order creation, surfaces the reason
// a code cannot be applied.
func ValidateDiscountHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ValidateDiscountRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		discount, err := findDiscountByCode(db, req.Code)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up discount"})
			return
		}
		if discount == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invalid discount code"})
			return
		}

		valid, reason := discount.IsValid(req.OrderAmount, time.Now())
		if !valid {
			c.JSON(http.StatusBadRequest, gin.H{"error": reason})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"code":            discount.Code,
			"type":            discount.Type,
			"value":           discount.Value,
			"discount_amount": discount.CalculateDiscount(req.OrderAmount),
		})
	}
}

// GET /orders/myorders
func GetMyOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		page, limit, offset := utils.ParsePagination(c, 10)

		var orders []models.Order
		if err := db.
			Where("user_id = ?", userIDVal).
			Preload("Items").
			Order("created_at DESC").
			Offset(offset).
			Limit(limit).
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		var total int64
		db.Model(&models.Order{}).Where("user_id = ?", userIDVal).Count(&total)

		c.JSON(http.StatusOK, gin.H{
			"data":       orders,
			"pagination": utils.NewPagination(page, limit, total),
		})
	}
}

// GET /orders/:orderID — owner or admin only
func GetOrderByIDHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}

		order, err := findOrderByParam(db, orderID, "User", "Items")
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
			c.JSON(http.StatusForbidden, gin.H{"error": "Not authorized to view this order"})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}

// GET /admin/orders — optional ?status= filter
func GetAllOrdersHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, limit, offset := utils.ParsePagination(c, 10)

		query := db.Model(&models.Order{})
		if status := c.Query("status"); status != "" {
			query = query.Where("status = ?", status)
		}

		var orders []models.Order
		if err := query.
			Preload("User").
			Preload("Items").
			Order("created_at DESC").
			Offset(offset).
			Limit(limit).
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		var total int64
		countQuery := db.Model(&models.Order{})
		if status := c.Query("status"); status != "" {
			countQuery = countQuery.Where("status = ?", status)
		}
		countQuery.Count(&total)

		c.JSON(http.StatusOK, gin.H{
			"data":       orders,
			"pagination": utils.NewPagination(page, limit, total),
		})
	}
}

// PUT /admin/orders/:orderID/status. No transition graph: any status may
// follow any other.
func UpdateOrderStatusHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("orderID")
		if orderID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "orderID is required"})
			return
		}
		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		newStatus, err := mapOrderStatus(req.Status)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
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

		order.Status = newStatus
		if newStatus == models.OrderStatusDelivered {
			now := time.Now()
			order.IsDelivered = true
			order.DeliveredAt = &now
		}

		if err := db.Save(order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			return
		}

		c.JSON(http.StatusOK, order)
	}
}
