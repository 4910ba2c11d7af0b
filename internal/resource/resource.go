// Package resource provides the fetch-or-serve-cached primitive the
// catalog loaders are built on: one value, a loading flag, a last-error
// message, and an optional cache key for instant warm starts.
package resource

import (
	"context"
	"sync"

	"github.com/diegoabmdev/mi-ecommerce-sub000/internal/ports"
)

// State is a snapshot of a resource: the last known value, whether a
// fetch is in flight, and the last failure message ("" when healthy).
type State[T any] struct {
	Data    T
	HasData bool
	Loading bool
	Err     string
}

// Resource tracks one asynchronously fetched value. When bound to a
// cache key, a freshly constructed resource seeds its data from the
// cache so consumers can render without waiting for any fetch.
//
// Execute calls are not serialized: each call bumps a generation
// counter and only the most recent call may apply its outcome, so a
// slow stale response never overwrites a newer one.
type Resource[T any] struct {
	cache ports.Cache
	key   string

	mu      sync.Mutex
	state   State[T]
	gen     uint64
	fetched bool
}

// New builds a resource, optionally bound to a cache key. Passing a
// nil cache or an empty key disables caching for this instance.
func New[T any](cache ports.Cache, key string) *Resource[T] {
	r := &Resource[T]{cache: cache, key: key}
	if v, ok := r.cached(); ok {
		r.state.Data = v
		r.state.HasData = true
	}
	return r
}

// State returns a copy of the current state.
func (r *Resource[T]) State() State[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Execute runs fetch and settles the resource state. On success the
// value is stored into the bound cache key and returned; on failure
// the error message lands in state and the error is returned as-is.
// The loading flag is always cleared once the newest call settles.
func (r *Resource[T]) Execute(ctx context.Context, fetch func(context.Context) (T, error)) (T, error) {
	r.mu.Lock()
	r.gen++
	gen := r.gen
	if v, ok := r.cached(); ok {
		// cached data shows instantly, no loading flicker
		r.state.Data = v
		r.state.HasData = true
	} else {
		r.state.Loading = true
	}
	r.state.Err = ""
	r.mu.Unlock()

	val, err := fetch(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	if gen != r.gen {
		// superseded by a newer Execute; its settlement owns the state
		if err != nil {
			var zero T
			return zero, err
		}
		return val, nil
	}

	r.state.Loading = false
	if err != nil {
		r.state.Err = errorMessage(err)
		var zero T
		return zero, err
	}

	r.state.Data = val
	r.state.HasData = true
	r.state.Err = ""
	r.fetched = true
	if r.cache != nil && r.key != "" {
		r.cache.Set(r.key, val)
	}
	return val, nil
}

// EnsureFetched fetches at most once per fresh cache window: a fresh
// cache hit skips the fetch entirely, and once the entry expires the
// next call fetches again. For key-less resources the one-shot fetched
// marker takes the cache's place. A failed fetch leaves the marker
// unset so the next consumer attempt may retry; there is no internal
// retry loop.
func (r *Resource[T]) EnsureFetched(ctx context.Context, fetch func(context.Context) (T, error)) error {
	r.mu.Lock()
	if v, ok := r.cached(); ok {
		r.state.Data = v
		r.state.HasData = true
		r.fetched = true
		r.mu.Unlock()
		return nil
	}
	if r.key == "" && r.fetched {
		r.mu.Unlock()
		return nil
	}
	r.mu.Unlock()

	_, err := r.Execute(ctx, fetch)
	return err
}

// Invalidate drops the fetched marker so the next EnsureFetched
// consults the cache (and the network) again. Used after Clear or when
// the TTL window should be cut short.
func (r *Resource[T]) Invalidate() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fetched = false
}

// cached reads the bound key; callers must not rely on locking here,
// the cache carries its own.
func (r *Resource[T]) cached() (T, bool) {
	var zero T
	if r.cache == nil || r.key == "" {
		return zero, false
	}
	v, ok := r.cache.Get(r.key)
	if !ok {
		return zero, false
	}
	data, ok := v.(T)
	if !ok {
		// a colliding key with a foreign type is a programming error;
		// treat as a miss rather than panicking
		return zero, false
	}
	return data, true
}

func errorMessage(err error) string {
	if err == nil {
		return ""
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return "request failed"
}
