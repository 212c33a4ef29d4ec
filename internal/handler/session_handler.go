package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"supergo/internal/app"
	"supergo/internal/model"
	"supergo/internal/state"
)

// SessionHandler serves login, logout, registration and the wishlist.
type SessionHandler struct {
	store  *app.Store
	logger zerolog.Logger
}

// NewSessionHandler creates a new session handler.
func NewSessionHandler(store *app.Store, logger zerolog.Logger) *SessionHandler {
	return &SessionHandler{
		store:  store,
		logger: logger.With().Str("handler", "session").Logger(),
	}
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// sessionResponse mirrors the session after a change. The password never
// leaves the server.
type sessionResponse struct {
	User     *model.User `json:"user"`
	Wishlist []int       `json:"wishlist"`
}

// Login handles POST /api/session/login.
func (h *SessionHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if derr := decodeJSON(r, &req); derr != nil {
		writeDomainError(w, r, derr, h.logger)
		return
	}

	next := h.store.Dispatch(state.Login{Email: req.Email, Password: req.Password})
	if next.CurrentUser == nil || !strings.EqualFold(next.CurrentUser.Email, req.Email) {
		writeDomainError(w, r, model.ErrInvalidLogin, h.logger)
		return
	}

	h.logger.Info().Str("user_id", next.CurrentUser.ID).Msg("user logged in")
	writeJSON(w, http.StatusOK, h.respond(next))
}

// Logout handles POST /api/session/logout: session-scoped data (cart,
// wishlist, discount) is discarded.
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	next := h.store.Dispatch(state.Logout{})
	writeJSON(w, http.StatusOK, h.respond(next))
}

// Register handles POST /api/session/register. Email uniqueness is enforced
// by the transition itself.
func (h *SessionHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if derr := decodeJSON(r, &req); derr != nil {
		writeDomainError(w, r, derr, h.logger)
		return
	}

	user := model.User{
		ID:       uuid.NewString(),
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     model.RoleUser,
	}

	next := h.store.Dispatch(state.Register{User: user})
	if next.CurrentUser == nil || next.CurrentUser.ID != user.ID {
		writeDomainError(w, r, model.ErrDuplicateEmail, h.logger)
		return
	}

	h.logger.Info().Str("user_id", user.ID).Msg("user registered")
	writeJSON(w, http.StatusCreated, h.respond(next))
}

// Wishlist handles GET /api/wishlist.
func (h *SessionHandler) Wishlist(w http.ResponseWriter, r *http.Request) {
	s := h.store.State()
	wishlist := s.Wishlist
	if wishlist == nil {
		wishlist = []int{}
	}
	writeJSON(w, http.StatusOK, wishlist)
}

// ToggleWishlist handles POST /api/wishlist/{id}: a symmetric membership
// flip on the product id.
func (h *SessionHandler) ToggleWishlist(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeValidation, "invalid product id", h.logger)
		return
	}

	next := h.store.Dispatch(state.ToggleWishlist{ProductID: productID})
	wishlist := next.Wishlist
	if wishlist == nil {
		wishlist = []int{}
	}
	writeJSON(w, http.StatusOK, wishlist)
}

func (h *SessionHandler) respond(s state.AppState) sessionResponse {
	resp := sessionResponse{Wishlist: s.Wishlist}
	if resp.Wishlist == nil {
		resp.Wishlist = []int{}
	}
	if s.CurrentUser != nil {
		u := *s.CurrentUser
		u.Password = ""
		resp.User = &u
	}
	return resp
}
