package handler

import (
	"net/http"

	"github.com/rs/zerolog"

	"supergo/internal/app"
	"supergo/internal/model"
	"supergo/internal/state"
)

// CheckoutHandler serves coupon application and order placement.
type CheckoutHandler struct {
	store  *app.Store
	logger zerolog.Logger
}

// NewCheckoutHandler creates a new checkout handler.
func NewCheckoutHandler(store *app.Store, logger zerolog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		store:  store,
		logger: logger.With().Str("handler", "checkout").Logger(),
	}
}

type applyCouponRequest struct {
	Code string `json:"code" validate:"required"`
}

type couponResponse struct {
	Applied *model.Coupon `json:"applied"`
	Message string        `json:"message,omitempty"`
}

type placeOrderRequest struct {
	CustomerName  string         `json:"customerName"`
	Delivery      model.Delivery `json:"delivery" validate:"required"`
	PaymentMethod string         `json:"paymentMethod"`
}

// ApplyCoupon handles POST /api/checkout/coupon. The transition validates
// the code, window, and minimum order; a rejection clears any active
// discount.
func (h *CheckoutHandler) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	var req applyCouponRequest
	if derr := decodeJSON(r, &req); derr != nil {
		writeDomainError(w, r, derr, h.logger)
		return
	}

	next := h.store.Dispatch(state.ApplyCoupon{Code: req.Code})
	resp := couponResponse{Applied: next.AppliedDiscount}
	if next.Toast != nil {
		resp.Message = next.Toast.Message
	}

	if next.AppliedDiscount == nil {
		h.logger.Debug().Str("code", req.Code).Msg("coupon rejected")
		writeJSON(w, http.StatusUnprocessableEntity, resp)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// RemoveCoupon handles DELETE /api/checkout/coupon.
func (h *CheckoutHandler) RemoveCoupon(w http.ResponseWriter, r *http.Request) {
	next := h.store.Dispatch(state.RemoveCoupon{})
	writeJSON(w, http.StatusOK, couponResponse{Applied: next.AppliedDiscount})
}

// PlaceOrder handles POST /api/checkout/orders: the cart is snapshotted into
// an immutable order, then cleared along with any discount.
func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req placeOrderRequest
	if derr := decodeJSON(r, &req); derr != nil {
		writeDomainError(w, r, derr, h.logger)
		return
	}

	switch req.Delivery.Method {
	case model.DeliveryPickup, model.DeliveryShipping, model.DeliveryExpress:
	default:
		writeError(w, r, http.StatusBadRequest, model.ErrCodeValidation, "invalid delivery method", h.logger)
		return
	}

	if len(h.store.State().Cart) == 0 {
		writeDomainError(w, r, model.ErrEmptyCart, h.logger)
		return
	}

	next := h.store.Dispatch(state.PlaceOrder{
		CustomerName:  req.CustomerName,
		Delivery:      req.Delivery,
		PaymentMethod: req.PaymentMethod,
	})

	if next.LastOrder == nil {
		writeDomainError(w, r, model.ErrEmptyCart, h.logger)
		return
	}

	h.logger.Info().
		Str("order_id", next.LastOrder.ID).
		Float64("total", next.LastOrder.Total).
		Msg("order placed")
	writeJSON(w, http.StatusCreated, next.LastOrder)
}

// LastOrder handles GET /api/checkout/orders/last.
func (h *CheckoutHandler) LastOrder(w http.ResponseWriter, r *http.Request) {
	s := h.store.State()
	if s.LastOrder == nil {
		writeError(w, r, http.StatusNotFound, model.ErrCodeOrderNotFound, "no order placed yet", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, s.LastOrder)
}
