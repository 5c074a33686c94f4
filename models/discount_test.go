package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func activeDiscount(now time.Time) Discount {
	return Discount{
		Code:      "SAVE10",
		Type:      DiscountTypePercentage,
		Value:     10,
		StartDate: now.Add(-24 * time.Hour),
		EndDate:   now.Add(24 * time.Hour),
		IsActive:  true,
	}
}

func TestDiscountIsValid(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name        string
		mutate      func(*Discount)
		orderAmount float64
		wantValid   bool
		wantReason  string
	}{
		{
			name:        "valid",
			mutate:      func(d *Discount) {},
			orderAmount: 50,
			wantValid:   true,
		},
		{
			name:        "inactive",
			mutate:      func(d *Discount) { d.IsActive = false },
			orderAmount: 50,
			wantReason:  "Discount code is not active",
		},
		{
			name:        "not yet started",
			mutate:      func(d *Discount) { d.StartDate = now.Add(time.Hour) },
			orderAmount: 50,
			wantReason:  "Discount code is not yet valid",
		},
		{
			name:        "expired",
			mutate:      func(d *Discount) { d.EndDate = now.Add(-time.Hour) },
			orderAmount: 50,
			wantReason:  "Discount code has expired",
		},
		{
			name: "usage limit reached",
			mutate: func(d *Discount) {
				d.UsageLimit = intPtr(100)
				d.UsedCount = 100
			},
			orderAmount: 50,
			wantReason:  "Discount code usage limit reached",
		},
		{
			name:        "below minimum order amount",
			mutate:      func(d *Discount) { d.MinOrderAmount = 75 },
			orderAmount: 50,
			wantReason:  "Minimum order amount is $75",
		},
		{
			name: "one use left",
			mutate: func(d *Discount) {
				d.UsageLimit = intPtr(100)
				d.UsedCount = 99
			},
			orderAmount: 50,
			wantValid:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := activeDiscount(now)
			tt.mutate(&d)

			valid, reason := d.IsValid(tt.orderAmount, now)
			assert.Equal(t, tt.wantValid, valid)
			assert.Equal(t, tt.wantReason, reason)
		})
	}
}

// Checks run in a fixed order, so a code that is both expired and exhausted
// reports expiry.
func TestDiscountIsValidExpiredBeatsExhausted(t *testing.T) {
	now := time.Now()
	d := activeDiscount(now)
	d.EndDate = now.Add(-time.Hour)
	d.UsageLimit = intPtr(10)
	d.UsedCount = 10

	valid, reason := d.IsValid(50, now)
	assert.False(t, valid)
	assert.Equal(t, "Discount code has expired", reason)
}

func TestCalculateDiscountPercentage(t *testing.T) {
	d := Discount{Type: DiscountTypePercentage, Value: 10}
	assert.Equal(t, 8.0, d.CalculateDiscount(80))
}

func TestCalculateDiscountPercentageCapped(t *testing.T) {
	d := Discount{Type: DiscountTypePercentage, Value: 50, MaxDiscount: floatPtr(20)}
	assert.Equal(t, 20.0, d.CalculateDiscount(80))
}

func TestCalculateDiscountFixed(t *testing.T) {
	d := Discount{Type: DiscountTypeFixed, Value: 15}
	assert.Equal(t, 15.0, d.CalculateDiscount(80))
}

func TestCalculateDiscountNeverExceedsOrderAmount(t *testing.T) {
	d := Discount{Type: DiscountTypeFixed, Value: 150}
	assert.Equal(t, 80.0, d.CalculateDiscount(80))
}
