package selection

import (
	"context"

	"chef-backend/internal/shared/storage/kv"
)

// Registry hands out one Store per principal. Each principal's selection is
// kept under StorageKey inside its own namespace of the shared storage.
type Registry struct {
	stores *kv.Registry[*Store]
}

// NewRegistry keeps up to kv.DefaultRegistryCapacity principals open.
func NewRegistry(storage kv.Store) *Registry {
	return NewRegistryWithCapacity(storage, kv.DefaultRegistryCapacity)
}

// NewRegistryWithCapacity keeps up to capacity principals open; older ones are
// reopened from storage on their next request.
func NewRegistryWithCapacity(storage kv.Store, capacity int) *Registry {
	return &Registry{stores: kv.NewRegistry(storage, capacity, func(ctx context.Context, s kv.Store) *Store {
		return Open(ctx, s)
	})}
}

// For returns the principal's store, restoring it from storage on first use.
// A store whose restore could not read storage is not kept, so the next call
// tries again.
func (r *Registry) For(ctx context.Context, principal string) *Store {
	return r.stores.For(ctx, principal)
}

// Len reports how many principals are open.
func (r *Registry) Len() int {
	return r.stores.Len()
}
