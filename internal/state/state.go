package state

import (
	"supergo/internal/catalog"
	"supergo/internal/model"
)

// AppState is the aggregate root for the whole storefront. It is replaced
// wholesale on every transition; transitions rebuild only the branches they
// touch and carry untouched slices by reference.
type AppState struct {
	Products      []model.Product      `json:"products"`
	Users         []model.User         `json:"users"`
	Stores        []model.Store        `json:"stores"`
	Categories    []model.Category     `json:"categories"`
	Orders        []model.Order        `json:"orders"`
	Coupons       []model.Coupon       `json:"coupons"`
	Banners       []model.Banner       `json:"banners"`
	Notifications []model.Notification `json:"notifications"`

	Cart            []model.CartItem `json:"cart"`
	Wishlist        []int            `json:"wishlist"`
	CurrentUser     *model.User      `json:"currentUser"`
	CurrentView     model.View       `json:"currentView"`
	ActiveCategory  string           `json:"activeCategory"`
	SearchQuery     string           `json:"searchQuery"`
	SortOrder       catalog.SortOrder `json:"sortOrder"`
	Filters         model.Filters    `json:"filters"`
	LastOrder       *model.Order     `json:"lastOrder"`
	AppliedDiscount *model.Coupon    `json:"appliedDiscount"`

	// Transient session fields, never persisted.
	SelectedProduct *model.Product `json:"-"`
	Toast           *model.Toast   `json:"-"`
	IsLoading       bool           `json:"-"`
	LoadError       string         `json:"-"`
}

// Initial returns the state the store starts from before any snapshot or
// initial data arrives.
func Initial() AppState {
	return AppState{
		CurrentView:    model.ViewProduct,
		ActiveCategory: "all",
		SortOrder:      catalog.SortNameAsc,
		Filters:        model.DefaultFilters(),
		IsLoading:      true,
	}
}

// InitialData is the snapshot a data source delivers at startup.
type InitialData struct {
	Products      []model.Product      `json:"products"`
	Users         []model.User         `json:"users"`
	Stores        []model.Store        `json:"stores"`
	Categories    []model.Category     `json:"categories"`
	Orders        []model.Order        `json:"orders"`
	Coupons       []model.Coupon       `json:"coupons"`
	Banners       []model.Banner       `json:"banners"`
	Notifications []model.Notification `json:"notifications"`
}

// Snapshot is the durable portion of AppState, serialized as one JSON object
// by the persistence layer. Transient fields (loading flag, toast, selected
// product) are excluded.
type Snapshot struct {
	Products      []model.Product      `json:"products"`
	Users         []model.User         `json:"users"`
	Stores        []model.Store        `json:"stores"`
	Categories    []model.Category     `json:"categories"`
	Orders        []model.Order        `json:"orders"`
	Coupons       []model.Coupon       `json:"coupons"`
	Banners       []model.Banner       `json:"banners"`
	Notifications []model.Notification `json:"notifications"`

	Cart            []model.CartItem  `json:"cart"`
	Wishlist        []int             `json:"wishlist"`
	CurrentUser     *model.User       `json:"currentUser"`
	CurrentView     model.View        `json:"currentView"`
	ActiveCategory  string            `json:"activeCategory"`
	SearchQuery     string            `json:"searchQuery"`
	SortOrder       catalog.SortOrder `json:"sortOrder"`
	Filters         model.Filters     `json:"filters"`
	LastOrder       *model.Order      `json:"lastOrder"`
	AppliedDiscount *model.Coupon     `json:"appliedDiscount"`
}

// SnapshotOf extracts the durable fields of a state.
func SnapshotOf(s AppState) *Snapshot {
	return &Snapshot{
		Products:        s.Products,
		Users:           s.Users,
		Stores:          s.Stores,
		Categories:      s.Categories,
		Orders:          s.Orders,
		Coupons:         s.Coupons,
		Banners:         s.Banners,
		Notifications:   s.Notifications,
		Cart:            s.Cart,
		Wishlist:        s.Wishlist,
		CurrentUser:     s.CurrentUser,
		CurrentView:     s.CurrentView,
		ActiveCategory:  s.ActiveCategory,
		SearchQuery:     s.SearchQuery,
		SortOrder:       s.SortOrder,
		Filters:         s.Filters,
		LastOrder:       s.LastOrder,
		AppliedDiscount: s.AppliedDiscount,
	}
}

// apply merges the snapshot over the given state, filling zero-valued
// navigation fields from defaults so an older snapshot still hydrates.
func (sn *Snapshot) apply(s AppState) AppState {
	s.Products = sn.Products
	s.Users = sn.Users
	s.Stores = sn.Stores
	s.Categories = sn.Categories
	s.Orders = sn.Orders
	s.Coupons = sn.Coupons
	s.Banners = sn.Banners
	s.Notifications = sn.Notifications
	s.Cart = sn.Cart
	s.Wishlist = sn.Wishlist
	s.CurrentUser = sn.CurrentUser
	s.LastOrder = sn.LastOrder
	s.AppliedDiscount = sn.AppliedDiscount
	s.CurrentView = sn.CurrentView
	s.ActiveCategory = sn.ActiveCategory
	s.SearchQuery = sn.SearchQuery
	s.SortOrder = sn.SortOrder
	s.Filters = sn.Filters

	if s.CurrentView == "" {
		s.CurrentView = model.ViewProduct
	}
	if s.ActiveCategory == "" {
		s.ActiveCategory = "all"
	}
	if s.SortOrder == "" {
		s.SortOrder = catalog.SortNameAsc
	}
	if s.Filters == (model.Filters{}) {
		s.Filters = model.DefaultFilters()
	}
	return s
}
