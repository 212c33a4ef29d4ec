package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supergo/internal/app"
	"supergo/internal/model"
	"supergo/internal/persist"
	"supergo/internal/state"
)

func TestCatalogHandler_List(t *testing.T) {
	logger := zerolog.Nop()

	tests := []struct {
		name        string
		url         string
		expectedIDs []int
	}{
		{"no parameters returns everything sorted by name", "/api/products", []int{2, 1, 3}},
		{"search filters by name", "/api/products?search=taza", []int{3}},
		{"category selector", "/api/products?category=ropa", []int{2, 1}},
		{"subcategory selector", "/api/products?category=gorras", []int{2}},
		{"availability filter", "/api/products?availability=in-stock", []int{1, 3}},
		{"price filter", "/api/products?price=15-20", []int{2, 1}},
		{"sort override", "/api/products?sort=price-desc", []int{1, 2, 3}},
		{"rating filter", "/api/products?rating=4.5", []int{1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewCatalogHandler(newTestStore(t), logger)
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			rec := serve(t, "GET /api/products", h.List, req)

			require.Equal(t, http.StatusOK, rec.Code)
			var products []model.Product
			decodeBody(t, rec, &products)

			got := make([]int, len(products))
			for i, p := range products {
				got[i] = p.ID
			}
			assert.Equal(t, tt.expectedIDs, got)
		})
	}

	t.Run("invalid rating parameter", func(t *testing.T) {
		h := NewCatalogHandler(newTestStore(t), logger)
		req := httptest.NewRequest(http.MethodGet, "/api/products?rating=abc", nil)
		rec := serve(t, "GET /api/products", h.List, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("loading store answers 503", func(t *testing.T) {
		store := app.NewStore(persist.NewMemoryStore(), &staticSource{data: handlerTestData()}, app.Config{}, logger)
		// No Load call: still in the loading state.
		h := NewCatalogHandler(store, logger)

		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		rec := serve(t, "GET /api/products", h.List, req)

		require.Equal(t, http.StatusServiceUnavailable, rec.Code)
		var errResp model.ErrorResponse
		decodeBody(t, rec, &errResp)
		assert.Equal(t, model.ErrCodeStoreLoading, errResp.Error)
	})

	t.Run("session selections apply when no parameters given", func(t *testing.T) {
		store := newTestStore(t)
		store.Dispatch(state.SetSearchQuery{Query: "gorra"})
		h := NewCatalogHandler(store, logger)

		req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
		rec := serve(t, "GET /api/products", h.List, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var products []model.Product
		decodeBody(t, rec, &products)
		require.Len(t, products, 1)
		assert.Equal(t, 2, products[0].ID)
	})
}

func TestCatalogHandler_Get(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("existing product", func(t *testing.T) {
		h := NewCatalogHandler(newTestStore(t), logger)
		req := httptest.NewRequest(http.MethodGet, "/api/products/1", nil)
		rec := serve(t, "GET /api/products/{id}", h.Get, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var product model.Product
		decodeBody(t, rec, &product)
		assert.Equal(t, "Playera Azul", product.Name)
	})

	t.Run("unknown product", func(t *testing.T) {
		h := NewCatalogHandler(newTestStore(t), logger)
		req := httptest.NewRequest(http.MethodGet, "/api/products/999", nil)
		rec := serve(t, "GET /api/products/{id}", h.Get, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("non-numeric id", func(t *testing.T) {
		h := NewCatalogHandler(newTestStore(t), logger)
		req := httptest.NewRequest(http.MethodGet, "/api/products/abc", nil)
		rec := serve(t, "GET /api/products/{id}", h.Get, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
