package state

import (
	"time"

	"supergo/internal/catalog"
	"supergo/internal/model"
)

// Action is a closed tagged-variant type: one struct per request to change
// state. The set is sealed by the unexported marker method so Transition can
// match exhaustively.
type Action interface {
	isAction()
}

// Lifecycle

// Hydrate replaces the durable state with a persisted snapshot.
type Hydrate struct{ Snapshot *Snapshot }

// Initialize loads the catalogue delivered by a data source.
type Initialize struct{ Data *InitialData }

// InitializeFailed records a permanent load failure so the store is not left
// in an unbounded loading state.
type InitializeFailed struct{ Err string }

// Navigation

type SetView struct{ View model.View }
type SetSelectedProduct struct{ Product *model.Product }
type SetSearchQuery struct{ Query string }
type SetSortOrder struct{ Order catalog.SortOrder }
type SetFilters struct{ Filters model.Filters }
type SetActiveCategory struct{ ID string }

// Session

// Login authenticates against the in-memory user list. The credential check
// lives inside the transition so a failed login is a pure rejection.
type Login struct{ Email, Password string }

type Logout struct{}

// Register appends a new account. Email uniqueness is enforced by the
// transition itself.
type Register struct{ User model.User }

type UpdateUser struct{ User model.User }
type DeleteUser struct{ ID string }

// Cart and wishlist

type AddToCart struct{ ProductID int }

// UpdateCartQuantity clamps the requested quantity to [0, stock]; zero
// removes the line.
type UpdateCartQuantity struct {
	ProductID int
	Quantity  int
}

type RemoveFromCart struct{ ProductID int }
type ClearCart struct{}
type ToggleWishlist struct{ ProductID int }

// Checkout

// ApplyCoupon validates and activates a coupon by code. Now travels in the
// action so the expiry check stays deterministic; the store stamps it at
// dispatch time when zero.
type ApplyCoupon struct {
	Code string
	Now  time.Time
}

type RemoveCoupon struct{}

// PlaceOrder snapshots the cart into a new immutable order. ID is normally
// left empty and generated; tests may inject one.
type PlaceOrder struct {
	ID            string
	CustomerName  string
	Delivery      model.Delivery
	PaymentMethod string
	Now           time.Time
}

// Toasts

type ShowToast struct{ Toast model.Toast }
type HideToast struct{}

// Back-office CRUD

type AddProduct struct{ Product model.Product }
type UpdateProduct struct{ Product model.Product }
type DeleteProduct struct{ ID int }

type AddStore struct{ Store model.Store }
type UpdateStore struct{ Store model.Store }
type DeleteStore struct{ ID string }

type AddCoupon struct{ Coupon model.Coupon }
type UpdateCoupon struct{ Coupon model.Coupon }
type DeleteCoupon struct{ Code string }

type AddCategory struct{ Category model.Category }

// DeleteCategory removes a category and, because subcategories are owned by
// their parent, all of its subcategories with it. Products keep orphaned
// category references.
type DeleteCategory struct{ ID string }

type AddSubcategory struct {
	CategoryID  string
	Subcategory model.Subcategory
}

type DeleteSubcategory struct {
	CategoryID    string
	SubcategoryID string
}

func (Hydrate) isAction()            {}
func (Initialize) isAction()         {}
func (InitializeFailed) isAction()   {}
func (SetView) isAction()            {}
func (SetSelectedProduct) isAction() {}
func (SetSearchQuery) isAction()     {}
func (SetSortOrder) isAction()       {}
func (SetFilters) isAction()         {}
func (SetActiveCategory) isAction()  {}
func (Login) isAction()              {}
func (Logout) isAction()             {}
func (Register) isAction()           {}
func (UpdateUser) isAction()         {}
func (DeleteUser) isAction()         {}
func (AddToCart) isAction()          {}
func (UpdateCartQuantity) isAction() {}
func (RemoveFromCart) isAction()     {}
func (ClearCart) isAction()          {}
func (ToggleWishlist) isAction()     {}
func (ApplyCoupon) isAction()        {}
func (RemoveCoupon) isAction()       {}
func (PlaceOrder) isAction()         {}
func (ShowToast) isAction()          {}
func (HideToast) isAction()          {}
func (AddProduct) isAction()         {}
func (UpdateProduct) isAction()      {}
func (DeleteProduct) isAction()      {}
func (AddStore) isAction()           {}
func (UpdateStore) isAction()        {}
func (DeleteStore) isAction()        {}
func (AddCoupon) isAction()          {}
func (UpdateCoupon) isAction()       {}
func (DeleteCoupon) isAction()       {}
func (AddCategory) isAction()        {}
func (DeleteCategory) isAction()     {}
func (AddSubcategory) isAction()     {}
func (DeleteSubcategory) isAction()  {}

// Mutates reports whether an action changes durable state. While the initial
// load is pending the store drops mutating actions instead of building
// derived state over a partial catalogue.
func Mutates(a Action) bool {
	switch a.(type) {
	case Hydrate, Initialize, InitializeFailed,
		SetView, SetSelectedProduct, ShowToast, HideToast:
		return false
	}
	return true
}
