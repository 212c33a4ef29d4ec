// Package app owns the authoritative state tree. The Store serialises
// dispatches, runs the pure transition, and persists the durable snapshot
// after every change.
package app

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"supergo/internal/persist"
	"supergo/internal/source"
	"supergo/internal/state"
)

// Config holds the store's collaborators and load policy.
type Config struct {
	// StorageKey is the key the snapshot is saved under. Defaults to
	// persist.DefaultKey.
	StorageKey string

	// LoadAttempts bounds the initial-data fetch retries. Defaults to 3.
	LoadAttempts int

	// LoadRetryDelay is the pause between fetch attempts. Defaults to 1s.
	LoadRetryDelay time.Duration
}

// Store holds the single authoritative AppState and applies actions through
// the pure transition function. Every transition runs to completion under
// the mutex before the next one is accepted, so the whole-tree replace is
// atomic from any consumer's point of view.
type Store struct {
	mu      sync.Mutex
	current state.AppState

	snapshots persist.Store
	data      source.Source
	cfg       Config
	logger    zerolog.Logger
}

// NewStore creates a store in the loading state. Call Load before serving
// traffic.
func NewStore(snapshots persist.Store, data source.Source, cfg Config, logger zerolog.Logger) *Store {
	if cfg.StorageKey == "" {
		cfg.StorageKey = persist.DefaultKey
	}
	if cfg.LoadAttempts <= 0 {
		cfg.LoadAttempts = 3
	}
	if cfg.LoadRetryDelay <= 0 {
		cfg.LoadRetryDelay = time.Second
	}
	return &Store{
		current:   state.Initial(),
		snapshots: snapshots,
		data:      data,
		cfg:       cfg,
		logger:    logger.With().Str("component", "store").Logger(),
	}
}

// State returns the current state tree.
func (s *Store) State() state.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Dispatch applies an action and returns the resulting state. Mutating
// actions dispatched while the initial load is pending are dropped, so
// derived state is never built over a partial catalogue. After every
// transition the durable snapshot is saved; a failing backend is logged and
// the session continues without durability.
func (s *Store) Dispatch(a state.Action) state.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current.IsLoading && state.Mutates(a) {
		s.logger.Warn().
			Str("action", fmt.Sprintf("%T", a)).
			Msg("dropping mutating action while initial load is pending")
		return s.current
	}

	a = stamp(a)
	next := state.Transition(s.current, a)
	s.current = next

	if err := s.snapshots.Save(context.Background(), s.cfg.StorageKey, state.SnapshotOf(next)); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist snapshot, continuing without durability")
	}

	return next
}

// stamp fills in the dispatch time on actions that carry a clock, keeping
// the transition itself deterministic.
func stamp(a state.Action) state.Action {
	switch act := a.(type) {
	case state.ApplyCoupon:
		if act.Now.IsZero() {
			act.Now = time.Now()
		}
		return act
	case state.PlaceOrder:
		if act.Now.IsZero() {
			act.Now = time.Now()
		}
		return act
	}
	return a
}

// Load hydrates the store: a persisted snapshot wins; otherwise the data
// source is fetched with a bounded retry. Exhausting the retries leaves the
// store in an explicit error state rather than loading forever.
func (s *Store) Load(ctx context.Context) error {
	snapshot, err := s.snapshots.Load(ctx, s.cfg.StorageKey)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to load snapshot, falling back to data source")
	}
	if snapshot != nil {
		s.logger.Info().Str("key", s.cfg.StorageKey).Msg("hydrating from persisted snapshot")
		s.apply(state.Hydrate{Snapshot: snapshot})
		return nil
	}

	var lastErr error
	for attempt := 1; attempt <= s.cfg.LoadAttempts; attempt++ {
		data, err := s.data.FetchInitialData(ctx)
		if err == nil {
			s.logger.Info().Int("attempt", attempt).Msg("initial data loaded")
			s.apply(state.Initialize{Data: data})
			return nil
		}
		lastErr = err
		s.logger.Warn().
			Err(err).
			Int("attempt", attempt).
			Int("max_attempts", s.cfg.LoadAttempts).
			Msg("initial data fetch failed")

		if attempt < s.cfg.LoadAttempts {
			select {
			case <-time.After(s.cfg.LoadRetryDelay):
			case <-ctx.Done():
				lastErr = ctx.Err()
				attempt = s.cfg.LoadAttempts
			}
		}
	}

	s.apply(state.InitializeFailed{Err: lastErr.Error()})
	return fmt.Errorf("failed to load initial data: %w", lastErr)
}

// apply runs a lifecycle transition without the loading guard or the
// persistence hook; Load decides itself when the first snapshot is saved.
func (s *Store) apply(a state.Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = state.Transition(s.current, a)
}
