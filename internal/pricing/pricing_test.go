package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"supergo/internal/model"
)

var testProducts = []model.Product{
	{ID: 1, Name: "Playera", Price: 20.00, Stock: 10},
	{ID: 2, Name: "Gorra", Price: 15.50, Stock: 10},
	{ID: 3, Name: "Taza", Price: 10.00, Stock: 10},
}

func TestShippingCost(t *testing.T) {
	tests := []struct {
		name     string
		method   model.DeliveryMethod
		expected float64
	}{
		{"pickup is free", model.DeliveryPickup, 0},
		{"standard shipping", model.DeliveryShipping, 25.00},
		{"express shipping", model.DeliveryExpress, 40.00},
		{"unknown method costs nothing", model.DeliveryMethod("carrier-pigeon"), 0},
		{"empty method costs nothing", model.DeliveryMethod(""), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ShippingCost(tt.method))
		})
	}
}

func TestSubtotal(t *testing.T) {
	tests := []struct {
		name     string
		cart     []model.CartItem
		expected float64
	}{
		{"empty cart", nil, 0},
		{
			"single line",
			[]model.CartItem{{ProductID: 1, Quantity: 2}},
			40.00,
		},
		{
			"multiple lines",
			[]model.CartItem{
				{ProductID: 1, Quantity: 1},
				{ProductID: 2, Quantity: 2},
			},
			51.00,
		},
		{
			"dangling product id contributes nothing",
			[]model.CartItem{
				{ProductID: 1, Quantity: 1},
				{ProductID: 999, Quantity: 5},
			},
			20.00,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Subtotal(tt.cart, testProducts))
		})
	}
}

func TestDiscount(t *testing.T) {
	percentage := &model.Coupon{Code: "P10", Type: model.CouponPercentage, Value: 10, MinOrder: 50}
	fixed := &model.Coupon{Code: "F25", Type: model.CouponFixed, Value: 25, MinOrder: 0}

	tests := []struct {
		name     string
		subtotal float64
		coupon   *model.Coupon
		expected float64
	}{
		{"nil coupon", 100, nil, 0},
		{"percentage above minimum", 100, percentage, 10},
		{"percentage exactly at minimum", 50, percentage, 5},
		{"percentage below minimum", 49.99, percentage, 0},
		{"fixed coupon", 100, fixed, 25},
		{"fixed coupon capped at subtotal", 10, fixed, 10},
		{"zero subtotal", 0, fixed, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Discount(tt.subtotal, tt.coupon))
		})
	}
}

func TestCalculate(t *testing.T) {
	cart := []model.CartItem{{ProductID: 1, Quantity: 5}} // 100.00

	t.Run("full breakdown", func(t *testing.T) {
		coupon := &model.Coupon{Code: "P10", Type: model.CouponPercentage, Value: 10, MinOrder: 50}
		quote := Calculate(cart, testProducts, model.DeliveryShipping, coupon)

		assert.Equal(t, 100.00, quote.Subtotal)
		assert.Equal(t, 25.00, quote.Shipping)
		assert.Equal(t, 10.00, quote.Discount)
		assert.Equal(t, 115.00, quote.Total)
	})

	t.Run("no coupon no shipping", func(t *testing.T) {
		quote := Calculate(cart, testProducts, model.DeliveryPickup, nil)
		assert.Equal(t, 100.00, quote.Total)
	})

	t.Run("empty cart", func(t *testing.T) {
		quote := Calculate(nil, testProducts, model.DeliveryPickup, nil)
		assert.Equal(t, Quote{}, quote)
	})

	t.Run("total never goes negative", func(t *testing.T) {
		over := &model.Coupon{Code: "P150", Type: model.CouponPercentage, Value: 150, MinOrder: 0}
		quote := Calculate(cart, testProducts, model.DeliveryPickup, over)
		assert.Equal(t, 0.00, quote.Total)
	})
}
