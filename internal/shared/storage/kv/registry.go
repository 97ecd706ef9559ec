package kv

import (
	"context"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultRegistryCapacity bounds how many principals a Registry keeps open.
const DefaultRegistryCapacity = 4096

// Scoped is a value restored from one principal's namespace. Stale reports
// that the restore could not read storage.
type Scoped interface {
	Stale() bool
}

// Registry hands out one value per principal, each opened over its own
// WithPrefix namespace of the shared storage. The least recently used
// principals are dropped beyond capacity and reopened from storage on demand.
// A stale value is returned but not kept, so the next call retries the restore.
type Registry[T Scoped] struct {
	mu      sync.Mutex
	storage Store
	open    func(ctx context.Context, storage Store) T
	entries *lru.Cache[string, T]
}

// NewRegistry builds a Registry. A non-positive capacity uses DefaultRegistryCapacity.
func NewRegistry[T Scoped](storage Store, capacity int, open func(ctx context.Context, storage Store) T) *Registry[T] {
	if capacity <= 0 {
		capacity = DefaultRegistryCapacity
	}
	// lru.New only fails for a non-positive size.
	entries, _ := lru.New[string, T](capacity)
	return &Registry[T]{storage: storage, open: open, entries: entries}
}

// For returns the principal's value, restoring it on first use. The restore
// is detached from ctx cancellation so an aborted request cannot blank it.
func (r *Registry[T]) For(ctx context.Context, principal string) T {
	r.mu.Lock()
	defer r.mu.Unlock()
	if v, ok := r.entries.Get(principal); ok {
		return v
	}
	v := r.open(context.WithoutCancel(ctx), WithPrefix(r.storage, principal))
	if !v.Stale() {
		r.entries.Add(principal, v)
	}
	return v
}

// Len reports how many principals are currently open.
func (r *Registry[T]) Len() int {
	return r.entries.Len()
}
