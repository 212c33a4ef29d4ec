package router

import (
	"net/http"

	"github.com/rs/zerolog"

	"supergo/internal/handler"
	"supergo/internal/middleware"
)

// New creates a new HTTP router with all routes and middleware configured.
func New(
	catalogHandler *handler.CatalogHandler,
	cartHandler *handler.CartHandler,
	checkoutHandler *handler.CheckoutHandler,
	sessionHandler *handler.SessionHandler,
	adminHandler *handler.AdminHandler,
	apiKey string,
	logger zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoint (no authentication required)
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "healthy"}`))
	})

	// Catalog
	mux.HandleFunc("GET /api/products", catalogHandler.List)
	mux.HandleFunc("GET /api/products/{id}", catalogHandler.Get)

	// Cart
	mux.HandleFunc("GET /api/cart", cartHandler.Get)
	mux.HandleFunc("POST /api/cart/items", cartHandler.AddItem)
	mux.HandleFunc("PUT /api/cart/items/{id}", cartHandler.UpdateItem)
	mux.HandleFunc("DELETE /api/cart/items/{id}", cartHandler.RemoveItem)
	mux.HandleFunc("DELETE /api/cart", cartHandler.Clear)

	// Checkout
	mux.HandleFunc("POST /api/checkout/coupon", checkoutHandler.ApplyCoupon)
	mux.HandleFunc("DELETE /api/checkout/coupon", checkoutHandler.RemoveCoupon)
	mux.HandleFunc("POST /api/checkout/orders", checkoutHandler.PlaceOrder)
	mux.HandleFunc("GET /api/checkout/orders/last", checkoutHandler.LastOrder)

	// Session
	mux.HandleFunc("POST /api/session/login", sessionHandler.Login)
	mux.HandleFunc("POST /api/session/logout", sessionHandler.Logout)
	mux.HandleFunc("POST /api/session/register", sessionHandler.Register)
	mux.HandleFunc("GET /api/wishlist", sessionHandler.Wishlist)
	mux.HandleFunc("POST /api/wishlist/{id}", sessionHandler.ToggleWishlist)

	// Admin
	mux.HandleFunc("POST /api/admin/products", adminHandler.CreateProduct)
	mux.HandleFunc("PUT /api/admin/products/{id}", adminHandler.UpdateProduct)
	mux.HandleFunc("DELETE /api/admin/products/{id}", adminHandler.DeleteProduct)
	mux.HandleFunc("POST /api/admin/stores", adminHandler.CreateStore)
	mux.HandleFunc("PUT /api/admin/stores/{id}", adminHandler.UpdateStore)
	mux.HandleFunc("DELETE /api/admin/stores/{id}", adminHandler.DeleteStore)
	mux.HandleFunc("POST /api/admin/coupons", adminHandler.CreateCoupon)
	mux.HandleFunc("PUT /api/admin/coupons/{code}", adminHandler.UpdateCoupon)
	mux.HandleFunc("DELETE /api/admin/coupons/{code}", adminHandler.DeleteCoupon)
	mux.HandleFunc("POST /api/admin/categories", adminHandler.CreateCategory)
	mux.HandleFunc("DELETE /api/admin/categories/{id}", adminHandler.DeleteCategory)
	mux.HandleFunc("POST /api/admin/categories/{id}/subcategories", adminHandler.CreateSubcategory)
	mux.HandleFunc("DELETE /api/admin/categories/{id}/subcategories/{subId}", adminHandler.DeleteSubcategory)
	mux.HandleFunc("GET /api/admin/users", adminHandler.ListUsers)
	mux.HandleFunc("PUT /api/admin/users/{id}", adminHandler.UpdateUser)
	mux.HandleFunc("DELETE /api/admin/users/{id}", adminHandler.DeleteUser)
	mux.HandleFunc("GET /api/admin/orders", adminHandler.ListOrders)

	// Apply middleware in order: Recovery -> RequestID -> Logging -> CORS -> APIKeyAuth
	var h http.Handler = mux
	h = middleware.APIKeyAuth(apiKey, logger)(h)
	h = middleware.CORS(h)
	h = middleware.Logging(logger)(h)
	h = middleware.RequestID(h)
	h = middleware.Recovery(logger)(h)

	return h
}
