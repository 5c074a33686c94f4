package orderControllers

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/hafiz1379/shopsphere/models"
)

// Flat-rate pricing policy. Orders above the threshold ship free; tax is a
// single flat rate with no jurisdiction logic.
const (
	freeShippingThreshold = 100.0
	flatShippingRate      = 10.0
	taxRate               = 0.10
)

var (
	ErrCartEmpty        = errors.New("cart is empty")
	ErrOrderAlreadyPaid = errors.New("order is already paid")
)

// InsufficientStockError names the first product whose stock cannot cover the
// requested quantity.
type InsufficientStockError struct {
	ProductName string
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("not enough stock for %s", e.ProductName)
}

// round2 rounds to 2 decimal places. Only applied when a total is persisted;
// intermediate discount math stays unrounded.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func shippingFor(itemsPrice float64) float64 {
	if itemsPrice > freeShippingThreshold {
		return 0
	}
	return flatShippingRate
}

func taxFor(itemsPrice float64) float64 {
	return round2(itemsPrice * taxRate)
}

// checkStock verifies every cart line against current product stock. This is a
// point-in-time check, not a reservation.
func checkStock(items []models.CartItem, products map[uint]models.Product) error {
	for _, item := range items {
		product, ok := products[item.ProductID]
		if !ok {
			return &InsufficientStockError{ProductName: item.ProductName}
		}
		if item.Quantity > product.Stock {
			return &InsufficientStockError{ProductName: product.Name}
		}
	}
	return nil
}

// buildOrderItems snapshots cart lines into immutable order items.
func buildOrderItems(items []models.CartItem) []models.OrderItem {
	orderItems := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		orderItems = append(orderItems, models.OrderItem{
			ProductID: item.ProductID,
			Name:      item.ProductName,
			Image:     item.ProductImage,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}
	return orderItems
}

// priceOrder composes the order totals from the items subtotal and an optional
// discount. A nil discount, or one that fails validation, contributes zero; the
// failure is not surfaced here (the pre-check endpoint is the place for that).
func priceOrder(itemsPrice float64, discount *models.Discount, now time.Time) (shipping, tax, discountAmount, total float64, code *string) {
	shipping = shippingFor(itemsPrice)
	tax = taxFor(itemsPrice)

	if discount != nil {
		if valid, _ := discount.IsValid(itemsPrice, now); valid {
			discountAmount = discount.CalculateDiscount(itemsPrice)
			code = &discount.Code
		}
	}

	total = round2(itemsPrice + shipping + tax - discountAmount)
	return shipping, tax, discountAmount, total, code
}

// markPaid transitions an order to the paid state. Guarded: a second call on
// the same order fails with ErrOrderAlreadyPaid.
func markPaid(order *models.Order, result models.PaymentResult, now time.Time) error {
	if order.IsPaid {
		return ErrOrderAlreadyPaid
	}
	order.IsPaid = true
	order.PaidAt = &now
	order.Status = models.OrderStatusProcessing
	order.PaymentResult = result
	return nil
}
