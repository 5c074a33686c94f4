package orderControllers

import (
	"errors"
	"testing"
	"time"

	"github.com/hafiz1379/shopsphere/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrFloat(v float64) *float64 { return &v }

func TestShippingFor(t *testing.T) {
	assert.Equal(t, 10.0, shippingFor(50))
	assert.Equal(t, 10.0, shippingFor(100)) // threshold itself still ships flat rate
	assert.Equal(t, 0.0, shippingFor(100.01))
	assert.Equal(t, 0.0, shippingFor(250))
}

func TestTaxFor(t *testing.T) {
	assert.Equal(t, 12.0, taxFor(120))
	assert.Equal(t, 8.0, taxFor(80))
	assert.Equal(t, 3.33, taxFor(33.333))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 10.56, round2(10.555))
	assert.Equal(t, 10.0, round2(10.004))
	assert.Equal(t, 0.1, round2(0.1))
}

func TestPriceOrderFreeShipping(t *testing.T) {
	shipping, tax, discountAmount, total, code := priceOrder(120, nil, time.Now())

	assert.Equal(t, 0.0, shipping)
	assert.Equal(t, 12.0, tax)
	assert.Equal(t, 0.0, discountAmount)
	assert.Equal(t, 132.0, total)
	assert.Nil(t, code)
}

func TestPriceOrderWithPercentageDiscount(t *testing.T) {
	now := time.Now()
	discount := &models.Discount{
		Code:      "SAVE10",
		Type:      models.DiscountTypePercentage,
		Value:     10,
		StartDate: now.Add(-time.Hour),
		EndDate:   now.Add(time.Hour),
		IsActive:  true,
	}

	shipping, tax, discountAmount, total, code := priceOrder(80, discount, now)

	assert.Equal(t, 10.0, shipping)
	assert.Equal(t, 8.0, tax)
	assert.Equal(t, 8.0, discountAmount)
	assert.Equal(t, 90.0, total)
	require.NotNil(t, code)
	assert.Equal(t, "SAVE10", *code)
}

func TestPriceOrderDiscountCapped(t *testing.T) {
	now := time.Now()
	discount := &models.Discount{
		Code:        "HALF",
		Type:        models.DiscountTypePercentage,
		Value:       50,
		MaxDiscount: ptrFloat(20),
		StartDate:   now.Add(-time.Hour),
		EndDate:     now.Add(time.Hour),
		IsActive:    true,
	}

	_, _, discountAmount, total, _ := priceOrder(80, discount, now)

	assert.Equal(t, 20.0, discountAmount)
	assert.Equal(t, 78.0, total)
}

func TestPriceOrderSkipsInvalidDiscount(t *testing.T) {
	now := time.Now()
	expired := &models.Discount{
		Code:      "OLD",
		Type:      models.DiscountTypeFixed,
		Value:     15,
		StartDate: now.Add(-48 * time.Hour),
		EndDate:   now.Add(-24 * time.Hour),
		IsActive:  true,
	}

	_, _, discountAmount, total, code := priceOrder(80, expired, now)

	assert.Equal(t, 0.0, discountAmount)
	assert.Equal(t, 98.0, total)
	assert.Nil(t, code)
}

func TestCheckStock(t *testing.T) {
	items := []models.CartItem{
		{ProductID: 1, ProductName: "Widget", Quantity: 2},
		{ProductID: 2, ProductName: "Gadget", Quantity: 5},
	}
	products := map[uint]models.Product{
		1: {ID: 1, Name: "Widget", Stock: 10},
		2: {ID: 2, Name: "Gadget", Stock: 4},
	}

	err := checkStock(items, products)
	require.Error(t, err)

	var stockErr *InsufficientStockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, "Gadget", stockErr.ProductName)
	assert.Equal(t, "not enough stock for Gadget", err.Error())

	products[2] = models.Product{ID: 2, Name: "Gadget", Stock: 5}
	assert.NoError(t, checkStock(items, products))
}

func TestCheckStockMissingProduct(t *testing.T) {
	items := []models.CartItem{{ProductID: 9, ProductName: "Ghost", Quantity: 1}}

	err := checkStock(items, map[uint]models.Product{})

	var stockErr *InsufficientStockError
	require.True(t, errors.As(err, &stockErr))
	assert.Equal(t, "Ghost", stockErr.ProductName)
}

func TestBuildOrderItemsSnapshotsCartLines(t *testing.T) {
	items := []models.CartItem{
		{ProductID: 3, ProductName: "Mug", ProductImage: "/uploads/products/mug.png", Price: 12.5, Quantity: 2},
	}

	orderItems := buildOrderItems(items)

	require.Len(t, orderItems, 1)
	assert.Equal(t, uint(3), orderItems[0].ProductID)
	assert.Equal(t, "Mug", orderItems[0].Name)
	assert.Equal(t, "/uploads/products/mug.png", orderItems[0].Image)
	assert.Equal(t, 12.5, orderItems[0].Price)
	assert.Equal(t, 2, orderItems[0].Quantity)
}

func TestMarkPaid(t *testing.T) {
	now := time.Now()
	order := models.Order{Status: models.OrderStatusPending}
	result := models.PaymentResult{
		TransactionID: "pi_123",
		Status:        "succeeded",
		EmailAddress:  "buyer@example.com",
	}

	require.NoError(t, markPaid(&order, result, now))
	assert.True(t, order.IsPaid)
	require.NotNil(t, order.PaidAt)
	assert.Equal(t, now, *order.PaidAt)
	assert.Equal(t, models.OrderStatusProcessing, order.Status)
	assert.Equal(t, "pi_123", order.PaymentResult.TransactionID)

	// Paying the same order twice must fail and leave the order untouched.
	err := markPaid(&order, models.PaymentResult{TransactionID: "pi_456"}, now.Add(time.Minute))
	assert.ErrorIs(t, err, ErrOrderAlreadyPaid)
	assert.Equal(t, "pi_123", order.PaymentResult.TransactionID)
}

func TestMapOrderStatus(t *testing.T) {
	status, err := mapOrderStatus("shipped")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusShipped, status)

	_, err = mapOrderStatus("teleported")
	assert.Error(t, err)
}
