// Package source supplies the initial catalogue snapshot the store boots
// from when no persisted state exists.
package source

import (
	"context"

	"supergo/internal/state"
)

// Source defines the initial-data port.
type Source interface {
	// FetchInitialData returns the full startup snapshot: products, users,
	// stores, categories, orders, coupons, banners, notifications.
	FetchInitialData(ctx context.Context) (*state.InitialData, error)
}
