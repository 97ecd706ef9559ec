package selection

import (
	"context"
	"strings"
	"sync"

	"github.com/goccy/go-json"

	"chef-backend/internal/shared/metrics"
	"chef-backend/internal/shared/storage/kv"
	"chef-backend/internal/shared/telemetry"
)

// StorageKey is the fixed key the selection is persisted under.
const StorageKey = "selectedIngredients"

// Store holds the ordered set of selected ingredients and mirrors every change
// to durable storage. The in-memory set is authoritative: failed writes are
// logged and not retried.
type Store struct {
	mu      sync.RWMutex
	items   []string
	storage kv.Store
	key     string
	stale   bool
}

// Option customizes a Store.
type Option func(*Store)

// WithKey overrides the storage key.
func WithKey(key string) Option {
	return func(s *Store) {
		if key != "" {
			s.key = key
		}
	}
}

// Normalize trims surrounding whitespace and lower-cases an ingredient.
func Normalize(ingredient string) string {
	return strings.ToLower(strings.TrimSpace(ingredient))
}

// Open restores the selection from storage. A missing, unreadable or malformed
// record yields an empty selection; Open never fails. When storage could not
// be read the store is Stale until a later write manages to reload it.
func Open(ctx context.Context, storage kv.Store, opts ...Option) *Store {
	s := &Store{storage: storage, key: StorageKey, items: []string{}}
	for _, opt := range opts {
		opt(s)
	}
	items, err := s.load(context.WithoutCancel(ctx))
	s.items = items
	s.stale = err != nil
	return s
}

// Stale reports whether the stored record has not been read yet because
// storage failed. A stale store never overwrites that record.
func (s *Store) Stale() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.stale
}

// load returns an error only when storage could not be read. Missing and
// malformed records are an empty selection.
func (s *Store) load(ctx context.Context) ([]string, error) {
	raw, ok, err := s.storage.Get(ctx, s.key)
	if err != nil {
		metrics.SelectionRestoreFailuresTotal.Inc()
		telemetry.Warn("selection.restore_failed", map[string]any{"key": s.key, "error": err.Error()})
		return []string{}, err
	}
	if !ok {
		return []string{}, nil
	}

	var stored []string
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		metrics.SelectionRestoreFailuresTotal.Inc()
		telemetry.Warn("selection.restore_malformed", map[string]any{"key": s.key, "error": err.Error()})
		return []string{}, nil
	}

	// Records written by older clients may not be normalized.
	items := make([]string, 0, len(stored))
	for _, v := range stored {
		n := Normalize(v)
		if n == "" || contains(items, n) {
			continue
		}
		items = append(items, n)
	}
	return items, nil
}

// refreshLocked retries a failed restore before a mutation. Entries added
// while stale are kept after the stored ones.
func (s *Store) refreshLocked(ctx context.Context) {
	if !s.stale {
		return
	}
	items, err := s.load(context.WithoutCancel(ctx))
	if err != nil {
		return
	}
	for _, v := range s.items {
		if !contains(items, v) {
			items = append(items, v)
		}
	}
	s.items = items
	s.stale = false
}

// Add normalizes ingredient and appends it when non-empty and not yet selected.
// It reports whether the set changed.
func (s *Store) Add(ctx context.Context, ingredient string) bool {
	n := Normalize(ingredient)
	if n == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshLocked(ctx)
	if contains(s.items, n) {
		return false
	}
	s.items = append(s.items, n)
	s.persistLocked(ctx, "add")
	return true
}

// Remove deletes the entry exactly equal to ingredient. No normalization is
// applied, so callers pass values taken from Snapshot.
func (s *Store) Remove(ctx context.Context, ingredient string) bool {
	if strings.TrimSpace(ingredient) == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.refreshLocked(ctx)
	idx := -1
	for i, v := range s.items {
		if v == ingredient {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	s.items = append(s.items[:idx:idx], s.items[idx+1:]...)
	s.persistLocked(ctx, "remove")
	return true
}

// Clear empties the selection and persists the empty set. Clearing does not
// depend on the stored record, so it is written even by a stale store.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = []string{}
	s.stale = false
	s.persistLocked(ctx, "clear")
}

// Snapshot returns a copy of the current selection in insertion order.
func (s *Store) Snapshot() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string{}, s.items...)
}

// Len reports how many ingredients are selected.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// persistLocked writes the full set. A stale store skips the write so the
// record it could not read survives. Writes outlive the caller's context.
func (s *Store) persistLocked(ctx context.Context, op string) {
	metrics.SelectionMutationsTotal.WithLabelValues(op).Inc()
	if s.stale {
		metrics.SelectionPersistFailuresTotal.Inc()
		telemetry.Warn("selection.persist_skipped", map[string]any{"key": s.key, "op": op, "reason": "stale"})
		return
	}

	data, err := json.Marshal(s.items)
	if err != nil {
		metrics.SelectionPersistFailuresTotal.Inc()
		telemetry.Error("selection.encode_failed", map[string]any{"key": s.key, "error": err.Error()})
		return
	}
	if err := s.storage.Set(context.WithoutCancel(ctx), s.key, string(data)); err != nil {
		metrics.SelectionPersistFailuresTotal.Inc()
		telemetry.Warn("selection.persist_failed", map[string]any{"key": s.key, "op": op, "error": err.Error()})
		return
	}
	telemetry.Debug("selection.persisted", map[string]any{"key": s.key, "op": op, "count": len(s.items)})
}

func contains(items []string, v string) bool {
	for _, it := range items {
		if it == v {
			return true
		}
	}
	return false
}
