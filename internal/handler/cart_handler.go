package handler

import (
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"supergo/internal/app"
	"supergo/internal/model"
	"supergo/internal/pricing"
	"supergo/internal/state"
)

// CartHandler serves the cart and its priced quote.
type CartHandler struct {
	store  *app.Store
	logger zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(store *app.Store, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		store:  store,
		logger: logger.With().Str("handler", "cart").Logger(),
	}
}

// CartResponse pairs the cart lines with their priced breakdown.
type CartResponse struct {
	Items []model.CartItem `json:"items"`
	Quote pricing.Quote    `json:"quote"`
}

type addItemRequest struct {
	ProductID int `json:"productId" validate:"required"`
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

// Get handles GET /api/cart. The optional delivery parameter prices the
// quote for that method; pickup is the default.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	method := model.DeliveryMethod(r.URL.Query().Get("delivery"))
	switch method {
	case "", model.DeliveryPickup, model.DeliveryShipping, model.DeliveryExpress:
	default:
		writeError(w, r, http.StatusBadRequest, model.ErrCodeValidation, "invalid delivery method", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, h.respond(h.store.State(), method))
}

// AddItem handles POST /api/cart/items: one unit of the product is added,
// capped at stock.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if derr := decodeJSON(r, &req); derr != nil {
		writeDomainError(w, r, derr, h.logger)
		return
	}

	s := h.store.State()
	if findProductID(s, req.ProductID) == nil {
		writeDomainError(w, r, model.ErrProductNotFound, h.logger)
		return
	}

	next := h.store.Dispatch(state.AddToCart{ProductID: req.ProductID})
	writeJSON(w, http.StatusOK, h.respond(next, model.DeliveryPickup))
}

// UpdateItem handles PUT /api/cart/items/{id}. The quantity is clamped to
// stock; zero or below removes the line.
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeValidation, "invalid product id", h.logger)
		return
	}

	var req updateItemRequest
	if derr := decodeJSON(r, &req); derr != nil {
		writeDomainError(w, r, derr, h.logger)
		return
	}

	s := h.store.State()
	if findProductID(s, productID) == nil {
		writeDomainError(w, r, model.ErrProductNotFound, h.logger)
		return
	}

	next := h.store.Dispatch(state.UpdateCartQuantity{ProductID: productID, Quantity: req.Quantity})
	writeJSON(w, http.StatusOK, h.respond(next, model.DeliveryPickup))
}

// RemoveItem handles DELETE /api/cart/items/{id}.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeValidation, "invalid product id", h.logger)
		return
	}

	next := h.store.Dispatch(state.RemoveFromCart{ProductID: productID})
	writeJSON(w, http.StatusOK, h.respond(next, model.DeliveryPickup))
}

// Clear handles DELETE /api/cart.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	next := h.store.Dispatch(state.ClearCart{})
	writeJSON(w, http.StatusOK, h.respond(next, model.DeliveryPickup))
}

func (h *CartHandler) respond(s state.AppState, method model.DeliveryMethod) CartResponse {
	if method == "" {
		method = model.DeliveryPickup
	}
	items := s.Cart
	if items == nil {
		items = []model.CartItem{}
	}
	return CartResponse{
		Items: items,
		Quote: pricing.Calculate(s.Cart, s.Products, method, s.AppliedDiscount),
	}
}

func findProductID(s state.AppState, id int) *model.Product {
	for i := range s.Products {
		if s.Products[i].ID == id {
			return &s.Products[i]
		}
	}
	return nil
}
