package state

import (
	"fmt"
	"strings"
	"time"

	"supergo/internal/model"
	"supergo/internal/pricing"
)

// Transition maps (state, action) to the next state. It is pure and total:
// it never mutates its input, never fails, and an unrecognised action
// returns the state unchanged. Invalid requests are either no-ops or set a
// rejection toast on the returned state.
func Transition(s AppState, a Action) AppState {
	switch act := a.(type) {
	case Hydrate:
		if act.Snapshot == nil {
			s.IsLoading = false
			return s
		}
		next := act.Snapshot.apply(s)
		next.IsLoading = false
		next.Toast = nil
		next.SelectedProduct = nil
		next.LoadError = ""
		return next

	case Initialize:
		if act.Data == nil {
			s.IsLoading = false
			return s
		}
		s.Products = act.Data.Products
		s.Users = act.Data.Users
		s.Stores = act.Data.Stores
		s.Categories = act.Data.Categories
		s.Orders = act.Data.Orders
		s.Coupons = act.Data.Coupons
		s.Banners = act.Data.Banners
		s.Notifications = act.Data.Notifications
		s.IsLoading = false
		s.LoadError = ""
		return s

	case InitializeFailed:
		s.IsLoading = false
		s.LoadError = act.Err
		return s

	case SetView:
		s.CurrentView = act.View
		return s

	case SetSelectedProduct:
		s.SelectedProduct = act.Product
		return s

	case SetSearchQuery:
		s.SearchQuery = act.Query
		return s

	case SetSortOrder:
		s.SortOrder = act.Order
		return s

	case SetFilters:
		s.Filters = act.Filters
		return s

	case SetActiveCategory:
		s.ActiveCategory = act.ID
		return s

	case Login:
		return login(s, act)

	case Logout:
		s.CurrentUser = nil
		s.Cart = nil
		s.Wishlist = nil
		s.AppliedDiscount = nil
		s.CurrentView = model.ViewProduct
		return s

	case Register:
		return register(s, act)

	case UpdateUser:
		s.Users = replaceUser(s.Users, act.User)
		if s.CurrentUser != nil && s.CurrentUser.ID == act.User.ID {
			u := act.User
			s.CurrentUser = &u
		}
		return s

	case DeleteUser:
		s.Users = deleteUser(s.Users, act.ID)
		return s

	case AddToCart:
		return addToCart(s, act.ProductID)

	case UpdateCartQuantity:
		return updateCartQuantity(s, act.ProductID, act.Quantity)

	case RemoveFromCart:
		s.Cart = removeCartLine(s.Cart, act.ProductID)
		return s

	case ClearCart:
		s.Cart = nil
		return s

	case ToggleWishlist:
		return toggleWishlist(s, act.ProductID)

	case ApplyCoupon:
		return applyCoupon(s, act)

	case RemoveCoupon:
		s.AppliedDiscount = nil
		return s

	case PlaceOrder:
		return placeOrder(s, act)

	case ShowToast:
		t := act.Toast
		s.Toast = &t
		return s

	case HideToast:
		s.Toast = nil
		return s

	case AddProduct:
		s.Products = append(s.Products[:len(s.Products):len(s.Products)], act.Product)
		return s

	case UpdateProduct:
		s.Products = replaceProduct(s.Products, act.Product)
		return s

	case DeleteProduct:
		s.Products = deleteProduct(s.Products, act.ID)
		return s

	case AddStore:
		s.Stores = append(s.Stores[:len(s.Stores):len(s.Stores)], act.Store)
		return s

	case UpdateStore:
		s.Stores = replaceStore(s.Stores, act.Store)
		return s

	case DeleteStore:
		s.Stores = deleteStore(s.Stores, act.ID)
		return s

	case AddCoupon:
		if findCoupon(s.Coupons, act.Coupon.Code) != nil {
			return withToast(s, model.ToastError, "El código del cupón ya existe")
		}
		s.Coupons = append(s.Coupons[:len(s.Coupons):len(s.Coupons)], act.Coupon)
		return s

	case UpdateCoupon:
		s.Coupons = replaceCoupon(s.Coupons, act.Coupon)
		return s

	case DeleteCoupon:
		s.Coupons = deleteCoupon(s.Coupons, act.Code)
		return s

	case AddCategory:
		s.Categories = append(s.Categories[:len(s.Categories):len(s.Categories)], act.Category)
		return s

	case DeleteCategory:
		s.Categories = deleteCategory(s.Categories, act.ID)
		return s

	case AddSubcategory:
		s.Categories = addSubcategory(s.Categories, act.CategoryID, act.Subcategory)
		return s

	case DeleteSubcategory:
		s.Categories = deleteSubcategory(s.Categories, act.CategoryID, act.SubcategoryID)
		return s
	}

	return s
}

func login(s AppState, act Login) AppState {
	for i := range s.Users {
		u := s.Users[i]
		if strings.EqualFold(u.Email, act.Email) && u.Password == act.Password {
			s.CurrentUser = &u
			s.Wishlist = append([]int(nil), u.Wishlist...)
			return withToast(s, model.ToastSuccess, fmt.Sprintf("¡Bienvenido, %s!", u.Name))
		}
	}
	return withToast(s, model.ToastError, "Credenciales inválidas")
}

func register(s AppState, act Register) AppState {
	for i := range s.Users {
		if strings.EqualFold(s.Users[i].Email, act.User.Email) {
			return withToast(s, model.ToastError, "El correo ya está registrado")
		}
	}
	u := act.User
	s.Users = append(s.Users[:len(s.Users):len(s.Users)], u)
	s.CurrentUser = &u
	s.Wishlist = append([]int(nil), u.Wishlist...)
	return s
}

func addToCart(s AppState, productID int) AppState {
	product := findProduct(s.Products, productID)
	if product == nil || product.Stock <= 0 {
		return s
	}

	for i, line := range s.Cart {
		if line.ProductID != productID {
			continue
		}
		if line.Quantity >= product.Stock {
			return s
		}
		cart := append([]model.CartItem(nil), s.Cart...)
		cart[i].Quantity++
		s.Cart = cart
		return s
	}

	s.Cart = append(s.Cart[:len(s.Cart):len(s.Cart)], model.CartItem{ProductID: productID, Quantity: 1})
	return s
}

func updateCartQuantity(s AppState, productID, quantity int) AppState {
	product := findProduct(s.Products, productID)
	if product == nil {
		return s
	}

	if quantity > product.Stock {
		quantity = product.Stock
	}
	if quantity <= 0 {
		s.Cart = removeCartLine(s.Cart, productID)
		return s
	}

	for i, line := range s.Cart {
		if line.ProductID == productID {
			cart := append([]model.CartItem(nil), s.Cart...)
			cart[i].Quantity = quantity
			s.Cart = cart
			return s
		}
	}
	return s
}

func toggleWishlist(s AppState, productID int) AppState {
	wishlist := flipMembership(s.Wishlist, productID)
	s.Wishlist = wishlist

	// Wishlists belong to the account, so a logged-in toggle also updates
	// the user record.
	if s.CurrentUser != nil {
		u := *s.CurrentUser
		u.Wishlist = wishlist
		s.Users = replaceUser(s.Users, u)
		s.CurrentUser = &u
	}
	return s
}

func applyCoupon(s AppState, act ApplyCoupon) AppState {
	now := act.Now
	if now.IsZero() {
		now = time.Now()
	}

	coupon := findCoupon(s.Coupons, act.Code)
	if coupon == nil {
		s.AppliedDiscount = nil
		return withToast(s, model.ToastError, "Código de cupón no válido.")
	}
	if coupon.Expired(now) {
		s.AppliedDiscount = nil
		return withToast(s, model.ToastError, "El cupón ha expirado.")
	}

	subtotal := pricing.Subtotal(s.Cart, s.Products)
	if subtotal < coupon.MinOrder {
		s.AppliedDiscount = nil
		return withToast(s, model.ToastWarning,
			fmt.Sprintf("Se requiere una compra mínima de $%.2f", coupon.MinOrder))
	}

	c := *coupon
	s.AppliedDiscount = &c
	return withToast(s, model.ToastSuccess, "Cupón aplicado.")
}

func placeOrder(s AppState, act PlaceOrder) AppState {
	if len(s.Cart) == 0 {
		return withToast(s, model.ToastError, "El carrito está vacío.")
	}

	now := act.Now
	if now.IsZero() {
		now = time.Now()
	}
	id := act.ID
	if id == "" {
		id = NewOrderID(now)
	}

	quote := pricing.Calculate(s.Cart, s.Products, act.Delivery.Method, s.AppliedDiscount)

	order := model.Order{
		ID:            id,
		CustomerName:  act.CustomerName,
		Date:          now,
		Total:         quote.Total,
		Status:        model.OrderCompleted,
		Items:         append([]model.CartItem(nil), s.Cart...),
		Delivery:      act.Delivery,
		PaymentMethod: act.PaymentMethod,
	}
	if s.CurrentUser != nil {
		order.UserID = s.CurrentUser.ID
		if order.CustomerName == "" {
			order.CustomerName = s.CurrentUser.Name
		}
	}
	if order.CustomerName == "" {
		order.CustomerName = "Invitado"
	}

	s.Orders = append(s.Orders[:len(s.Orders):len(s.Orders)], order)
	s.Cart = nil
	s.AppliedDiscount = nil
	s.LastOrder = &order
	s.CurrentView = model.ViewOrderConfirmation
	return withToast(s, model.ToastSuccess, "¡Pedido realizado con éxito!")
}

func withToast(s AppState, typ model.ToastType, message string) AppState {
	s.Toast = &model.Toast{Message: message, Type: typ}
	return s
}
