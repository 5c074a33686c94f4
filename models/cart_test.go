package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartCalculateTotals(t *testing.T) {
	cart := Cart{
		Items: []CartItem{
			{Price: 19.99, Quantity: 2},
			{Price: 5.00, Quantity: 3},
		},
	}

	cart.CalculateTotals()

	assert.Equal(t, 5, cart.TotalItems)
	assert.InDelta(t, 54.98, cart.TotalPrice, 0.001)
}

func TestCartCalculateTotalsEmpty(t *testing.T) {
	cart := Cart{
		TotalItems: 4,
		TotalPrice: 99.0,
	}

	cart.CalculateTotals()

	assert.Equal(t, 0, cart.TotalItems)
	assert.Equal(t, 0.0, cart.TotalPrice)
}
