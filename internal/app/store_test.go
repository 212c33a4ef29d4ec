package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"supergo/internal/model"
	"supergo/internal/persist"
	"supergo/internal/source"
	"supergo/internal/state"
)

// stubSource fails a configurable number of times before succeeding.
type stubSource struct {
	failures int
	calls    int
	data     *state.InitialData
}

func (s *stubSource) FetchInitialData(ctx context.Context) (*state.InitialData, error) {
	s.calls++
	if s.calls <= s.failures {
		return nil, errors.New("upstream unavailable")
	}
	return s.data, nil
}

func testData() *state.InitialData {
	return &state.InitialData{
		Products: []model.Product{
			{ID: 1, Name: "Playera", Price: 20.00, Stock: 5},
		},
	}
}

func newTestStore(t *testing.T, snapshots persist.Store, data source.Source) *Store {
	t.Helper()
	return NewStore(snapshots, data, Config{LoadRetryDelay: time.Millisecond}, zerolog.Nop())
}

func TestStore_Load_FromSource(t *testing.T) {
	mem := persist.NewMemoryStore()
	src := &stubSource{data: testData()}
	store := newTestStore(t, mem, src)

	require.NoError(t, store.Load(context.Background()))

	s := store.State()
	assert.False(t, s.IsLoading)
	assert.Len(t, s.Products, 1)
	assert.Equal(t, 1, src.calls)
}

func TestStore_Load_PrefersSnapshot(t *testing.T) {
	mem := persist.NewMemoryStore()
	require.NoError(t, mem.Save(context.Background(), persist.DefaultKey, &state.Snapshot{
		Products: testData().Products,
		Cart:     []model.CartItem{{ProductID: 1, Quantity: 2}},
	}))

	src := &stubSource{data: testData()}
	store := newTestStore(t, mem, src)
	require.NoError(t, store.Load(context.Background()))

	s := store.State()
	require.Len(t, s.Cart, 1)
	assert.Equal(t, 2, s.Cart[0].Quantity)
	assert.Zero(t, src.calls, "the data source must not be hit when a snapshot exists")
}

func TestStore_Load_RetriesThenSucceeds(t *testing.T) {
	mem := persist.NewMemoryStore()
	src := &stubSource{failures: 2, data: testData()}
	store := newTestStore(t, mem, src)

	require.NoError(t, store.Load(context.Background()))
	assert.Equal(t, 3, src.calls)
	assert.Len(t, store.State().Products, 1)
}

func TestStore_Load_ExhaustedRetries(t *testing.T) {
	mem := persist.NewMemoryStore()
	src := &stubSource{failures: 100, data: testData()}
	store := newTestStore(t, mem, src)

	err := store.Load(context.Background())
	require.Error(t, err)
	assert.Equal(t, 3, src.calls, "default attempt budget")

	s := store.State()
	assert.False(t, s.IsLoading)
	assert.NotEmpty(t, s.LoadError)
	assert.Empty(t, s.Products)
}

func TestStore_Load_CorruptSnapshotFallsBack(t *testing.T) {
	mem := persist.NewMemoryStore()
	mem.FailLoad = true
	src := &stubSource{data: testData()}
	store := newTestStore(t, mem, src)

	require.NoError(t, store.Load(context.Background()))
	assert.Equal(t, 1, src.calls)
	assert.Len(t, store.State().Products, 1)
}

func TestStore_Dispatch_PersistsSnapshot(t *testing.T) {
	mem := persist.NewMemoryStore()
	store := newTestStore(t, mem, &stubSource{data: testData()})
	require.NoError(t, store.Load(context.Background()))

	next := store.Dispatch(state.AddToCart{ProductID: 1})
	require.Len(t, next.Cart, 1)
	require.Positive(t, mem.Saves)

	saved, err := mem.Load(context.Background(), persist.DefaultKey)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, next.Cart, saved.Cart)
}

func TestStore_Dispatch_SaveFailureIsNonFatal(t *testing.T) {
	mem := persist.NewMemoryStore()
	store := newTestStore(t, mem, &stubSource{data: testData()})
	require.NoError(t, store.Load(context.Background()))

	mem.FailSave = true
	next := store.Dispatch(state.AddToCart{ProductID: 1})
	assert.Len(t, next.Cart, 1, "state advances even when persistence fails")
}

func TestStore_Dispatch_DropsMutationsWhileLoading(t *testing.T) {
	mem := persist.NewMemoryStore()
	store := newTestStore(t, mem, &stubSource{data: testData()})
	// No Load: the store is still in its loading state.

	next := store.Dispatch(state.AddToCart{ProductID: 1})
	assert.True(t, next.IsLoading)
	assert.Empty(t, next.Cart, "mutating actions are dropped while loading")

	// Pure UI actions still pass.
	next = store.Dispatch(state.SetView{View: model.ViewCheckout})
	assert.Equal(t, model.ViewCheckout, next.CurrentView)
}

func TestStore_Dispatch_StampsTime(t *testing.T) {
	mem := persist.NewMemoryStore()
	store := newTestStore(t, mem, &stubSource{data: &state.InitialData{
		Products: []model.Product{{ID: 1, Name: "Playera", Price: 100.00, Stock: 5}},
		Coupons: []model.Coupon{{
			Code:    "HOY",
			Type:    model.CouponFixed,
			Value:   10,
			EndDate: time.Now().Add(24 * time.Hour),
		}},
	}})
	require.NoError(t, store.Load(context.Background()))
	store.Dispatch(state.AddToCart{ProductID: 1})

	// A zero Now is stamped at dispatch, so a currently-valid coupon
	// applies.
	next := store.Dispatch(state.ApplyCoupon{Code: "HOY"})
	assert.NotNil(t, next.AppliedDiscount)
}
