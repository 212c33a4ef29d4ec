package model

import (
	"strings"
	"time"
)

// CouponType selects how a coupon value is applied to a subtotal.
type CouponType string

const (
	CouponPercentage CouponType = "percentage"
	CouponFixed      CouponType = "fixed"
)

// Coupon represents a discount code with a validity window and a minimum
// order amount. Codes compare case-insensitively.
type Coupon struct {
	Code       string     `json:"code" validate:"required"`
	Type       CouponType `json:"type" validate:"oneof=percentage fixed"`
	Value      float64    `json:"value" validate:"gt=0"`
	StartDate  time.Time  `json:"startDate"`
	EndDate    time.Time  `json:"endDate"`
	UsageLimit int        `json:"usageLimit,omitempty"`
	UsedCount  int        `json:"usedCount"`
	MinOrder   float64    `json:"minOrder" validate:"gte=0"`
}

// Matches reports whether the coupon code equals the given code, ignoring
// case.
func (c Coupon) Matches(code string) bool {
	return strings.EqualFold(c.Code, code)
}

// Expired reports whether the coupon validity window has passed.
func (c Coupon) Expired(now time.Time) bool {
	return now.After(c.EndDate)
}
