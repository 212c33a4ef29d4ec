package model

// View identifies which screen of the storefront is active.
type View string

const (
	ViewProduct           View = "product-view"
	ViewProductDetail     View = "product-detail-view"
	ViewCheckout          View = "checkout-view"
	ViewOrderConfirmation View = "order-confirmation-view"
	ViewAdmin             View = "admin-view"
	ViewAccount           View = "account-view"
	ViewWishlist          View = "wishlist-view"
)

// ToastType classifies a transient notification.
type ToastType string

const (
	ToastSuccess ToastType = "success"
	ToastError   ToastType = "error"
	ToastWarning ToastType = "warning"
	ToastInfo    ToastType = "info"
)

// Toast is a transient user-facing notification. It is session state and is
// never persisted.
type Toast struct {
	Message string    `json:"message"`
	Type    ToastType `json:"type"`
}

// Filters holds the active catalogue filter selections.
type Filters struct {
	// PriceRange is "all" or a "min-max" token; an unparsable max means an
	// unbounded upper end.
	PriceRange   string  `json:"priceRange"`
	MinRating    float64 `json:"minRating"`
	Availability string  `json:"availability"`
}

// DefaultFilters returns the filter selections active at startup.
func DefaultFilters() Filters {
	return Filters{PriceRange: "all", MinRating: 0, Availability: "all"}
}
