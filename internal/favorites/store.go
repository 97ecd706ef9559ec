package favorites

import (
	"context"
	"sync"

	"github.com/goccy/go-json"

	"chef-backend/internal/shared/storage/kv"
	"chef-backend/internal/shared/telemetry"
)

// StorageKey is the fixed key favorites are persisted under.
const StorageKey = "favoriteRecipes"

// Store is one principal's set of favorite recipe ids.
type Store struct {
	mu      sync.RWMutex
	ids     []string
	storage kv.Store
	stale   bool
}

// Open restores favorites from storage, starting empty on any read problem.
// A store that could not read storage is Stale and never overwrites the record.
func Open(ctx context.Context, storage kv.Store) *Store {
	s := &Store{storage: storage, ids: []string{}}
	ids, err := s.load(context.WithoutCancel(ctx))
	s.ids = ids
	s.stale = err != nil
	return s
}

func (s *Store) load(ctx context.Context) ([]string, error) {
	raw, ok, err := s.storage.Get(ctx, StorageKey)
	if err != nil {
		telemetry.Warn("favorites.restore_failed", map[string]any{"error": err.Error()})
		return []string{}, err
	}
	if !ok {
		return []string{}, nil
	}
	var stored []string
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		telemetry.Warn("favorites.restore_malformed", map[string]any{"error": err.Error()})
		return []string{}, nil
	}
	ids := make([]string, 0, len(stored))
	for _, id := range stored {
		if id != "" && indexOf(ids, id) < 0 {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// Stale reports whether the stored record is still unread.
func (s *Store) Stale() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stale
}

// Toggle flips the favorite flag for id and returns the new state.
func (s *Store) Toggle(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stale {
		if ids, err := s.load(context.WithoutCancel(ctx)); err == nil {
			s.ids = ids
			s.stale = false
		}
	}

	now := true
	if idx := indexOf(s.ids, id); idx >= 0 {
		s.ids = append(s.ids[:idx:idx], s.ids[idx+1:]...)
		now = false
	} else {
		s.ids = append(s.ids, id)
	}

	if s.stale {
		telemetry.Warn("favorites.persist_skipped", map[string]any{"recipeId": id, "reason": "stale"})
		return now
	}
	data, err := json.Marshal(s.ids)
	if err == nil {
		err = s.storage.Set(context.WithoutCancel(ctx), StorageKey, string(data))
	}
	if err != nil {
		telemetry.Warn("favorites.persist_failed", map[string]any{"recipeId": id, "error": err.Error()})
	}
	return now
}

// Contains reports whether id is a favorite.
func (s *Store) Contains(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return indexOf(s.ids, id) >= 0
}

// IDs returns favorite ids in the order they were added.
func (s *Store) IDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string{}, s.ids...)
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}

// Registry hands out one favorites Store per principal.
type Registry struct {
	stores *kv.Registry[*Store]
}

func NewRegistry(storage kv.Store) *Registry {
	return NewRegistryWithCapacity(storage, kv.DefaultRegistryCapacity)
}

// NewRegistryWithCapacity keeps up to capacity principals open.
func NewRegistryWithCapacity(storage kv.Store, capacity int) *Registry {
	return &Registry{stores: kv.NewRegistry(storage, capacity, func(ctx context.Context, s kv.Store) *Store {
		return Open(ctx, s)
	})}
}

// For returns the principal's store. Stores whose restore failed are not kept.
func (r *Registry) For(ctx context.Context, principal string) *Store {
	return r.stores.For(ctx, principal)
}
