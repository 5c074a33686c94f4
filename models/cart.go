package models

import "time"

type Cart struct {
	CartID     uint       `gorm:"primaryKey" json:"cart_id"`
	UserID     string     `gorm:"uniqueIndex" json:"user_id"`                    // Enforces ONE cart per user
	Items      []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"` // Cascade delete items if cart is deleted
	TotalItems int        `gorm:"default:0" json:"total_items"`
	TotalPrice float64    `gorm:"default:0" json:"total_price"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type CartItem struct {
	ID           uint    `gorm:"primaryKey" json:"id"`
	CartID       uint    `gorm:"index" json:"cart_id"` // Faster queries
	ProductID    uint    `json:"product_id"`
	ProductName  string  `json:"product_name"`
	ProductImage string  `json:"product_image"`
	Price        float64 `json:"price"` // Unit price captured at add-to-cart time
	Quantity     int     `json:"quantity"`
	AddedAt      time.Time `json:"added_at"`
}

// CalculateTotals recomputes the derived totals from the current lines.
// Must be called whenever Items change, before saving the cart.
func (c *Cart) CalculateTotals() {
	totalItems := 0
	totalPrice := 0.0
	for _, item := range c.Items {
		totalItems += item.Quantity
		totalPrice += item.Price * float64(item.Quantity)
	}
	c.TotalItems = totalItems
	c.TotalPrice = totalPrice
}
