package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"supergo/internal/app"
	"supergo/internal/model"
	"supergo/internal/persist"
	"supergo/internal/state"
)

// staticSource serves a fixed catalogue without delay.
type staticSource struct {
	data *state.InitialData
}

func (s *staticSource) FetchInitialData(ctx context.Context) (*state.InitialData, error) {
	return s.data, nil
}

func handlerTestData() *state.InitialData {
	return &state.InitialData{
		Products: []model.Product{
			{ID: 1, Name: "Playera Azul", MainCategory: "ropa", Category: "playeras", Price: 20.00, Stock: 5, Rating: 4.5, Tags: []string{"verano"}},
			{ID: 2, Name: "Gorra Negra", MainCategory: "ropa", Category: "gorras", Price: 15.00, Stock: 0, Rating: 4.0},
			{ID: 3, Name: "Taza Clásica", MainCategory: "hogar", Category: "cocina", Price: 10.00, Stock: 8, Rating: 3.5},
		},
		Users: []model.User{
			{ID: "1", Name: "Ana", Email: "ana@example.com", Password: "secret123", Role: model.RoleAdmin, Wishlist: []int{2}},
		},
		Categories: []model.Category{
			{ID: "ropa", Name: "Ropa", Subcategories: []model.Subcategory{
				{ID: "playeras", Name: "Playeras"},
				{ID: "gorras", Name: "Gorras"},
			}},
			{ID: "hogar", Name: "Hogar", Subcategories: []model.Subcategory{
				{ID: "cocina", Name: "Cocina"},
			}},
		},
		Coupons: []model.Coupon{
			{Code: "DESC10", Type: model.CouponPercentage, Value: 10, MinOrder: 30, EndDate: time.Now().Add(24 * time.Hour)},
		},
	}
}

func newTestStore(t *testing.T) *app.Store {
	t.Helper()

	store := app.NewStore(
		persist.NewMemoryStore(),
		&staticSource{data: handlerTestData()},
		app.Config{},
		zerolog.Nop(),
	)
	require.NoError(t, store.Load(context.Background()))
	return store
}

// serve routes the request through a bare mux so r.PathValue works the same
// way it does behind the real router.
func serve(t *testing.T, pattern string, h http.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc(pattern, h)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func jsonBody(t *testing.T, v interface{}) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(v))
	return &buf
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), dest))
}
