package models

import (
	"fmt"
	"strconv"
	"time"
)

type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

type Discount struct {
	ID             uint         `gorm:"primaryKey" json:"id"`
	Code           string       `gorm:"uniqueIndex;not null" json:"code"` // Stored uppercase
	Type           DiscountType `gorm:"type:VARCHAR(20);not null" json:"type"`
	Value          float64      `gorm:"not null" json:"value"` // Percentage 0-100 or fixed amount
	MinOrderAmount float64      `gorm:"default:0" json:"min_order_amount"`
	MaxDiscount    *float64     `json:"max_discount"` // Cap, percentage type only
	UsageLimit     *int         `json:"usage_limit"`
	UsedCount      int          `gorm:"default:0" json:"used_count"`
	StartDate      time.Time    `gorm:"not null" json:"start_date"`
	EndDate        time.Time    `gorm:"not null" json:"end_date"`
	IsActive       bool         `gorm:"default:true" json:"is_active"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// IsValid checks whether the discount can be applied to an order of the given
// amount at the given time. Checks run in a fixed order, first failure wins.
func (d *Discount) IsValid(orderAmount float64, now time.Time) (bool, string) {
	if !d.IsActive {
		return false, "Discount code is not active"
	}
	if now.Before(d.StartDate) {
		return false, "Discount code is not yet valid"
	}
	if now.After(d.EndDate) {
		return false, "Discount code has expired"
	}
	if d.UsageLimit != nil && d.UsedCount >= *d.UsageLimit {
		return false, "Discount code usage limit reached"
	}
	if orderAmount < d.MinOrderAmount {
		return false, fmt.Sprintf("Minimum order amount is $%s", strconv.FormatFloat(d.MinOrderAmount, 'f', -1, 64))
	}
	return true, ""
}

// CalculateDiscount computes the monetary discount for the given order amount.
// It does not check validity; callers must run IsValid first. The result never
// exceeds the order amount, so totals cannot go negative.
func (d *Discount) CalculateDiscount(orderAmount float64) float64 {
	var discount float64
	if d.Type == DiscountTypePercentage {
		discount = orderAmount * d.Value / 100
		if d.MaxDiscount != nil && discount > *d.MaxDiscount {
			discount = *d.MaxDiscount
		}
	} else {
		discount = d.Value
	}
	if discount > orderAmount {
		discount = orderAmount
	}
	return discount
}
