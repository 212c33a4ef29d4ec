package handler

import (
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"supergo/internal/app"
	"supergo/internal/model"
	"supergo/internal/state"
)

// AdminHandler serves the back-office CRUD surface. All transitions are
// straightforward insert/replace-by-id/delete-by-id on the respective
// collections; operations on a missing id are no-ops at the state level.
type AdminHandler struct {
	store  *app.Store
	logger zerolog.Logger
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(store *app.Store, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		store:  store,
		logger: logger.With().Str("handler", "admin").Logger(),
	}
}

// Products

func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var p model.Product
	if derr := decodeJSON(r, &p); derr != nil {
		writeDomainError(w, r, derr, h.logger)
		return
	}
	next := h.store.Dispatch(state.AddProduct{Product: p})
	writeJSON(w, http.StatusCreated, next.Products)
}

func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeValidation, "invalid product id", h.logger)
		return
	}
	var p model.Product
	if derr := decodeJSON(r, &p); derr != nil {
		writeDomainError(w, r, derr, h.logger)
		return
	}
	p.ID = id
	next := h.store.Dispatch(state.UpdateProduct{Product: p})
	writeJSON(w, http.StatusOK, next.Products)
}

func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeValidation, "invalid product id", h.logger)
		return
	}
	next := h.store.Dispatch(state.DeleteProduct{ID: id})
	writeJSON(w, http.StatusOK, next.Products)
}

// Stores

func (h *AdminHandler) CreateStore(w http.ResponseWriter, r *http.Request) {
	var st model.Store
	if derr := decodeJSON(r, &st); derr != nil {
		writeDomainError(w, r, derr, h.logger)
		return
	}
	next := h.store.Dispatch(state.AddStore{Store: st})
	writeJSON(w, http.StatusCreated, next.Stores)
}

func (h *AdminHandler) UpdateStore(w http.ResponseWriter, r *http.Request) {
	var st model.Store
	if derr := decodeJSON(r, &st); derr != nil {
		writeDomainError(w, r, derr, h.logger)
		return
	}
	st.ID = r.PathValue("id")
	next := h.store.Dispatch(state.UpdateStore{Store: st})
	writeJSON(w, http.StatusOK, next.Stores)
}

func (h *AdminHandler) DeleteStore(w http.ResponseWriter, r *http.Request) {
	next := h.store.Dispatch(state.DeleteStore{ID: r.PathValue("id")})
	writeJSON(w, http.StatusOK, next.Stores)
}

// Coupons

func (h *AdminHandler) CreateCoupon(w http.ResponseWriter, r *http.Request) {
	var c model.Coupon
	if derr := decodeJSON(r, &c); derr != nil {
		writeDomainError(w, r, derr, h.logger)
		return
	}

	before := len(h.store.State().Coupons)
	next := h.store.Dispatch(state.AddCoupon{Coupon: c})
	if len(next.Coupons) == before {
		writeDomainError(w, r, model.ErrDuplicateCoupon, h.logger)
		return
	}
	writeJSON(w, http.StatusCreated, next.Coupons)
}

func (h *AdminHandler) UpdateCoupon(w http.ResponseWriter, r *http.Request) {
	var c model.Coupon
	if derr := decodeJSON(r, &c); derr != nil {
		writeDomainError(w, r, derr, h.logger)
		return
	}
	c.Code = r.PathValue("code")
	next := h.store.Dispatch(state.UpdateCoupon{Coupon: c})
	writeJSON(w, http.StatusOK, next.Coupons)
}

func (h *AdminHandler) DeleteCoupon(w http.ResponseWriter, r *http.Request) {
	next := h.store.Dispatch(state.DeleteCoupon{Code: r.PathValue("code")})
	writeJSON(w, http.StatusOK, next.Coupons)
}

// Categories

func (h *AdminHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var c model.Category
	if derr := decodeJSON(r, &c); derr != nil {
		writeDomainError(w, r, derr, h.logger)
		return
	}
	next := h.store.Dispatch(state.AddCategory{Category: c})
	writeJSON(w, http.StatusCreated, next.Categories)
}

// DeleteCategory cascades: the category's subcategories are owned by it and
// are removed in the same transition.
func (h *AdminHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	next := h.store.Dispatch(state.DeleteCategory{ID: r.PathValue("id")})
	writeJSON(w, http.StatusOK, next.Categories)
}

func (h *AdminHandler) CreateSubcategory(w http.ResponseWriter, r *http.Request) {
	var sc model.Subcategory
	if derr := decodeJSON(r, &sc); derr != nil {
		writeDomainError(w, r, derr, h.logger)
		return
	}
	next := h.store.Dispatch(state.AddSubcategory{
		CategoryID:  r.PathValue("id"),
		Subcategory: sc,
	})
	writeJSON(w, http.StatusCreated, next.Categories)
}

func (h *AdminHandler) DeleteSubcategory(w http.ResponseWriter, r *http.Request) {
	next := h.store.Dispatch(state.DeleteSubcategory{
		CategoryID:    r.PathValue("id"),
		SubcategoryID: r.PathValue("subId"),
	})
	writeJSON(w, http.StatusOK, next.Categories)
}

// Users

func (h *AdminHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, sanitizeUsers(h.store.State().Users))
}

func (h *AdminHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var u model.User
	if derr := decodeJSON(r, &u); derr != nil {
		writeDomainError(w, r, derr, h.logger)
		return
	}
	u.ID = r.PathValue("id")
	next := h.store.Dispatch(state.UpdateUser{User: u})
	writeJSON(w, http.StatusOK, sanitizeUsers(next.Users))
}

func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	next := h.store.Dispatch(state.DeleteUser{ID: r.PathValue("id")})
	writeJSON(w, http.StatusOK, sanitizeUsers(next.Users))
}

func sanitizeUsers(users []model.User) []model.User {
	out := make([]model.User, len(users))
	for i, u := range users {
		u.Password = ""
		out[i] = u
	}
	return out
}

// Orders

func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	s := h.store.State()
	orders := s.Orders
	if orders == nil {
		orders = []model.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}
