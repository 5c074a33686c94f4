package models

import "time"

type OrderStatus string

const (
	// Order statuses (typical e-commerce flow)
	OrderStatusPending    OrderStatus = "pending"    // Order placed, awaiting payment
	OrderStatusProcessing OrderStatus = "processing" // Payment confirmed, being prepared
	OrderStatusShipped    OrderStatus = "shipped"    // Out for delivery
	OrderStatusDelivered  OrderStatus = "delivered"  // Customer received the items
	OrderStatusCancelled  OrderStatus = "cancelled"  // Cancelled by admin
)

type Order struct {
	ID              uint        `gorm:"primaryKey" json:"id"`
	OrderRef        string      `gorm:"uniqueIndex" json:"order_ref"`
	UserID          string      `gorm:"not null;index" json:"user_id"`
	User            User        `gorm:"foreignKey:UserID" json:"user"`
	Items           []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	ShippingAddress Address     `gorm:"embedded;embeddedPrefix:shipping_" json:"shipping_address"`
	PaymentMethod   string      `json:"payment_method"`
	ItemsPrice      float64     `json:"items_price"`
	ShippingPrice   float64     `json:"shipping_price"`
	TaxPrice        float64     `json:"tax_price"`
	DiscountCode    *string     `json:"discount_code"`
	DiscountAmount  float64     `json:"discount_amount"`
	TotalPrice      float64     `json:"total_price"`
	IsPaid          bool        `gorm:"default:false" json:"is_paid"`
	PaidAt          *time.Time  `json:"paid_at"`
	PaymentResult   PaymentResult `gorm:"embedded;embeddedPrefix:payment_" json:"payment_result"`
	Status          OrderStatus   `gorm:"type:VARCHAR(20);default:'pending'" json:"status"`
	IsDelivered     bool          `gorm:"default:false" json:"is_delivered"`
	DeliveredAt     *time.Time    `json:"delivered_at"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// OrderItem is an immutable snapshot of a cart line. Product fields are copied
// at order creation so later catalog edits don't alter historical orders.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"index" json:"order_id"`
	ProductID uint    `json:"product_id"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// PaymentResult holds the provider's transaction outcome.
type PaymentResult struct {
	TransactionID string `json:"transaction_id"`
	Status        string `json:"status"`
	UpdateTime    string `json:"update_time"`
	EmailAddress  string `json:"email_address"`
}
