package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supergo/internal/model"
)

func TestCartHandler_AddItem(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("adds a line and prices the quote", func(t *testing.T) {
		h := NewCartHandler(newTestStore(t), logger)
		req := httptest.NewRequest(http.MethodPost, "/api/cart/items", jsonBody(t, map[string]int{"productId": 1}))
		rec := serve(t, "POST /api/cart/items", h.AddItem, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp CartResponse
		decodeBody(t, rec, &resp)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, model.CartItem{ProductID: 1, Quantity: 1}, resp.Items[0])
		assert.Equal(t, 20.00, resp.Quote.Subtotal)
		assert.Equal(t, 20.00, resp.Quote.Total)
	})

	t.Run("unknown product", func(t *testing.T) {
		h := NewCartHandler(newTestStore(t), logger)
		req := httptest.NewRequest(http.MethodPost, "/api/cart/items", jsonBody(t, map[string]int{"productId": 999}))
		rec := serve(t, "POST /api/cart/items", h.AddItem, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
		var errResp model.ErrorResponse
		decodeBody(t, rec, &errResp)
		assert.Equal(t, model.ErrCodeProductNotFound, errResp.Error)
	})

	t.Run("missing product id", func(t *testing.T) {
		h := NewCartHandler(newTestStore(t), logger)
		req := httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader("{}"))
		rec := serve(t, "POST /api/cart/items", h.AddItem, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		h := NewCartHandler(newTestStore(t), logger)
		req := httptest.NewRequest(http.MethodPost, "/api/cart/items", strings.NewReader("{not json"))
		rec := serve(t, "POST /api/cart/items", h.AddItem, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		var errResp model.ErrorResponse
		decodeBody(t, rec, &errResp)
		assert.Equal(t, model.ErrCodeInvalidJSON, errResp.Error)
	})
}

func TestCartHandler_UpdateItem(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("clamps the quantity to stock", func(t *testing.T) {
		store := newTestStore(t)
		h := NewCartHandler(store, logger)

		req := httptest.NewRequest(http.MethodPost, "/api/cart/items", jsonBody(t, map[string]int{"productId": 1}))
		serve(t, "POST /api/cart/items", h.AddItem, req)

		req = httptest.NewRequest(http.MethodPut, "/api/cart/items/1", jsonBody(t, map[string]int{"quantity": 50}))
		rec := serve(t, "PUT /api/cart/items/{id}", h.UpdateItem, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp CartResponse
		decodeBody(t, rec, &resp)
		require.Len(t, resp.Items, 1)
		assert.Equal(t, 5, resp.Items[0].Quantity)
	})

	t.Run("zero quantity removes the line", func(t *testing.T) {
		store := newTestStore(t)
		h := NewCartHandler(store, logger)

		req := httptest.NewRequest(http.MethodPost, "/api/cart/items", jsonBody(t, map[string]int{"productId": 1}))
		serve(t, "POST /api/cart/items", h.AddItem, req)

		req = httptest.NewRequest(http.MethodPut, "/api/cart/items/1", jsonBody(t, map[string]int{"quantity": 0}))
		rec := serve(t, "PUT /api/cart/items/{id}", h.UpdateItem, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp CartResponse
		decodeBody(t, rec, &resp)
		assert.Empty(t, resp.Items)
	})

	t.Run("unknown product", func(t *testing.T) {
		h := NewCartHandler(newTestStore(t), logger)
		req := httptest.NewRequest(http.MethodPut, "/api/cart/items/999", jsonBody(t, map[string]int{"quantity": 1}))
		rec := serve(t, "PUT /api/cart/items/{id}", h.UpdateItem, req)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCartHandler_Get(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("empty cart", func(t *testing.T) {
		h := NewCartHandler(newTestStore(t), logger)
		req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
		rec := serve(t, "GET /api/cart", h.Get, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp CartResponse
		decodeBody(t, rec, &resp)
		assert.NotNil(t, resp.Items)
		assert.Empty(t, resp.Items)
		assert.Equal(t, 0.00, resp.Quote.Total)
	})

	t.Run("delivery parameter prices shipping", func(t *testing.T) {
		store := newTestStore(t)
		h := NewCartHandler(store, logger)

		req := httptest.NewRequest(http.MethodPost, "/api/cart/items", jsonBody(t, map[string]int{"productId": 1}))
		serve(t, "POST /api/cart/items", h.AddItem, req)

		req = httptest.NewRequest(http.MethodGet, "/api/cart?delivery=express", nil)
		rec := serve(t, "GET /api/cart", h.Get, req)

		require.Equal(t, http.StatusOK, rec.Code)
		var resp CartResponse
		decodeBody(t, rec, &resp)
		assert.Equal(t, 40.00, resp.Quote.Shipping)
		assert.Equal(t, 60.00, resp.Quote.Total)
	})

	t.Run("unknown delivery method", func(t *testing.T) {
		h := NewCartHandler(newTestStore(t), logger)
		req := httptest.NewRequest(http.MethodGet, "/api/cart?delivery=drone", nil)
		rec := serve(t, "GET /api/cart", h.Get, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestCartHandler_RemoveAndClear(t *testing.T) {
	logger := zerolog.Nop()
	store := newTestStore(t)
	h := NewCartHandler(store, logger)

	for _, id := range []int{1, 3} {
		req := httptest.NewRequest(http.MethodPost, "/api/cart/items", jsonBody(t, map[string]int{"productId": id}))
		serve(t, "POST /api/cart/items", h.AddItem, req)
	}

	req := httptest.NewRequest(http.MethodDelete, "/api/cart/items/1", nil)
	rec := serve(t, "DELETE /api/cart/items/{id}", h.RemoveItem, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp CartResponse
	decodeBody(t, rec, &resp)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, 3, resp.Items[0].ProductID)

	req = httptest.NewRequest(http.MethodDelete, "/api/cart", nil)
	rec = serve(t, "DELETE /api/cart", h.Clear, req)
	require.Equal(t, http.StatusOK, rec.Code)

	decodeBody(t, rec, &resp)
	assert.Empty(t, resp.Items)
}
