package store

import (
	"context"
	"sync"
	"time"

	"karma/internal/debounce"
	"karma/internal/log"
	"karma/internal/query"
)

// DefaultSearchDelay is the debounce window for free-text search input.
const DefaultSearchDelay = 500 * time.Millisecond

// TransactionFilters binds the UI-selectable transaction parameters to
// the store. Changing any parameter triggers exactly one new fetch;
// in-flight fetches are not cancelled, the store's sequence guard keeps
// the last-issued response authoritative.
type TransactionFilters struct {
	mu    sync.Mutex
	store *TransactionStore
	q     query.TransactionQuery
}

// NewTransactionFilters starts with the defaults: all types, date order.
func NewTransactionFilters(store *TransactionStore) *TransactionFilters {
	return &TransactionFilters{
		store: store,
		q:     query.TransactionQuery{Type: query.All(), Sort: query.SortByDate},
	}
}

// Query returns the currently applied parameters.
func (f *TransactionFilters) Query() query.TransactionQuery {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.q
}

// SetType switches the type tab and refetches.
func (f *TransactionFilters) SetType(ctx context.Context, t query.Filter) error {
	f.mu.Lock()
	f.q.Type = t
	q := f.q
	f.mu.Unlock()
	return f.store.Fetch(ctx, q)
}

// SetSort switches the sort order and refetches.
func (f *TransactionFilters) SetSort(ctx context.Context, s query.TransactionSort) error {
	f.mu.Lock()
	f.q.Sort = s
	q := f.q
	f.mu.Unlock()
	return f.store.Fetch(ctx, q)
}

// Refresh refetches with the current parameters.
func (f *TransactionFilters) Refresh(ctx context.Context) error {
	return f.store.Fetch(ctx, f.Query())
}

// GoalFilters binds the goal parameters to the store. Search input is
// debounced: only the last keystroke inside the delay window commits a
// parameter update and a fetch.
type GoalFilters struct {
	mu       sync.Mutex
	store    *GoalStore
	q        query.GoalQuery
	debounce *debounce.Debouncer
	logger   *log.Logger
}

// NewGoalFilters starts with the defaults: empty search, all
// categories, name order.
func NewGoalFilters(store *GoalStore, searchDelay time.Duration, logger *log.Logger) *GoalFilters {
	if searchDelay <= 0 {
		searchDelay = DefaultSearchDelay
	}
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &GoalFilters{
		store:    store,
		q:        query.GoalQuery{Category: query.All(), Sort: query.SortByName},
		debounce: debounce.New(searchDelay),
		logger:   logger.WithComponent(log.ComponentStore),
	}
}

// Query returns the currently applied parameters.
func (f *GoalFilters) Query() query.GoalQuery {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.q
}

// SetSearch feeds a search keystroke. The parameter update and fetch
// happen on the debouncer's trailing edge; earlier keystrokes in the
// window are discarded. Fetch failures surface in the log, matching the
// transient-notification behavior of the UI.
func (f *GoalFilters) SetSearch(ctx context.Context, text string) {
	f.debounce.Do(func() {
		f.mu.Lock()
		f.q.Search = text
		q := f.q
		f.mu.Unlock()

		if err := f.store.Fetch(ctx, q); err != nil {
			f.logger.WarnContext(ctx, "Search fetch failed",
				log.FieldQuery, q.Search,
				log.FieldError, err)
		}
	})
}

// SetCategory switches the category filter and refetches.
func (f *GoalFilters) SetCategory(ctx context.Context, c query.Filter) error {
	f.mu.Lock()
	f.q.Category = c
	q := f.q
	f.mu.Unlock()
	return f.store.Fetch(ctx, q)
}

// SetSort switches the sort order and refetches.
func (f *GoalFilters) SetSort(ctx context.Context, s query.GoalSort) error {
	f.mu.Lock()
	f.q.Sort = s
	q := f.q
	f.mu.Unlock()
	return f.store.Fetch(ctx, q)
}

// Refresh refetches with the current parameters.
func (f *GoalFilters) Refresh(ctx context.Context) error {
	return f.store.Fetch(ctx, f.Query())
}

// Close cancels any pending debounced search.
func (f *GoalFilters) Close() {
	f.debounce.Stop()
}
