package handler

import (
	"net/http"
	"strconv"

	"github.com/rs/zerolog"

	"supergo/internal/app"
	"supergo/internal/catalog"
	"supergo/internal/model"
)

// CatalogHandler serves the filtered, sorted product listing.
type CatalogHandler struct {
	store  *app.Store
	logger zerolog.Logger
}

// NewCatalogHandler creates a new catalog handler.
func NewCatalogHandler(store *app.Store, logger zerolog.Logger) *CatalogHandler {
	return &CatalogHandler{
		store:  store,
		logger: logger.With().Str("handler", "catalog").Logger(),
	}
}

// List handles GET /api/products. Query parameters override the session's
// stored selections; absent parameters fall back to them.
func (h *CatalogHandler) List(w http.ResponseWriter, r *http.Request) {
	s := h.store.State()
	if s.IsLoading {
		writeDomainError(w, r, model.ErrStoreLoading, h.logger)
		return
	}

	q := catalog.Query{
		Search:   s.SearchQuery,
		Category: s.ActiveCategory,
		Filters:  s.Filters,
		Sort:     s.SortOrder,
	}

	params := r.URL.Query()
	if v := params.Get("search"); v != "" {
		q.Search = v
	}
	if v := params.Get("category"); v != "" {
		q.Category = v
	}
	if v := params.Get("price"); v != "" {
		q.Filters.PriceRange = v
	}
	if v := params.Get("rating"); v != "" {
		rating, err := strconv.ParseFloat(v, 64)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, model.ErrCodeValidation, "invalid rating parameter", h.logger)
			return
		}
		q.Filters.MinRating = rating
	}
	if v := params.Get("availability"); v != "" {
		q.Filters.Availability = v
	}
	if v := params.Get("sort"); v != "" {
		q.Sort = catalog.SortOrder(v)
	}

	products := catalog.Apply(s.Products, s.Categories, q)

	h.logger.Debug().
		Int("matched", len(products)).
		Int("total", len(s.Products)).
		Msg("catalogue filtered")

	writeJSON(w, http.StatusOK, products)
}

// Get handles GET /api/products/{id}.
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeValidation, "invalid product id", h.logger)
		return
	}

	s := h.store.State()
	for i := range s.Products {
		if s.Products[i].ID == id {
			writeJSON(w, http.StatusOK, s.Products[i])
			return
		}
	}
	writeDomainError(w, r, model.ErrProductNotFound, h.logger)
}
