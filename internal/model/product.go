package model

// Product represents an item in the storefront catalogue.
type Product struct {
	ID            int      `json:"id"`
	Name          string   `json:"name" validate:"required"`
	MainCategory  string   `json:"mainCategory" validate:"required"`
	Category      string   `json:"category" validate:"required"`
	Price         float64  `json:"price" validate:"gte=0"`
	OriginalPrice float64  `json:"originalPrice,omitempty"`
	Stock         int      `json:"stock" validate:"gte=0"`
	Image         string   `json:"image,omitempty"`
	Description   string   `json:"description,omitempty"`
	Rating        float64  `json:"rating" validate:"gte=0,lte=5"`
	ReviewCount   int      `json:"reviewCount"`
	SKU           string   `json:"sku,omitempty"`
	Barcode       string   `json:"barcode,omitempty"`
	Features      []string `json:"features,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	IsFeatured    bool     `json:"isFeatured,omitempty"`
}

// CartItem is one cart line: a product reference plus a quantity.
// A line is never stored with a quantity below 1; the transition removes
// the line instead.
type CartItem struct {
	ProductID int `json:"id"`
	Quantity  int `json:"quantity"`
}
