// Package pricing derives checkout totals from the cart, the catalogue, the
// chosen delivery method, and an optional active coupon.
package pricing

import "supergo/internal/model"

// Delivery price table. Pickup is free; the two courier options have fixed
// rates.
const (
	shippingCost = 25.00
	expressCost  = 40.00
)

// ShippingCost returns the fixed price of a delivery method. Unknown methods
// cost nothing, matching pickup.
func ShippingCost(method model.DeliveryMethod) float64 {
	switch method {
	case model.DeliveryShipping:
		return shippingCost
	case model.DeliveryExpress:
		return expressCost
	default:
		return 0
	}
}

// Subtotal sums price × quantity over the cart. A line whose product no
// longer exists in the catalogue contributes 0.
func Subtotal(cart []model.CartItem, products []model.Product) float64 {
	var sum float64
	for _, line := range cart {
		for i := range products {
			if products[i].ID == line.ProductID {
				sum += products[i].Price * float64(line.Quantity)
				break
			}
		}
	}
	return sum
}

// Discount returns the amount a coupon takes off the given subtotal. Below
// the coupon's minimum order the discount is 0. Percentage coupons are
// uncapped; fixed coupons never exceed the subtotal.
func Discount(subtotal float64, coupon *model.Coupon) float64 {
	if coupon == nil || subtotal < coupon.MinOrder {
		return 0
	}
	if coupon.Type == model.CouponPercentage {
		return subtotal * coupon.Value / 100
	}
	return min(coupon.Value, subtotal)
}

// Quote is the priced breakdown of a cart.
type Quote struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}

// Calculate prices a cart end to end. Total = subtotal + shipping − discount
// and is never negative: the discount is capped at the subtotal and shipping
// is non-negative.
func Calculate(cart []model.CartItem, products []model.Product, method model.DeliveryMethod, coupon *model.Coupon) Quote {
	subtotal := Subtotal(cart, products)
	shipping := ShippingCost(method)
	discount := Discount(subtotal, coupon)
	// A percentage coupon above 100% could otherwise push the total below
	// zero; the consumer is never shown a negative total.
	total := max(subtotal+shipping-discount, 0)
	return Quote{
		Subtotal: subtotal,
		Shipping: shipping,
		Discount: discount,
		Total:    total,
	}
}
