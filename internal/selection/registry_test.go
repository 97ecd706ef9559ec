package selection

import (
	"context"
	"reflect"
	"strconv"
	"testing"

	"chef-backend/internal/shared/storage/kv/memory"
)

func TestRegistryIsolatesPrincipals(t *testing.T) {
	ctx := context.Background()
	m := memory.New()
	reg := NewRegistry(m)

	reg.For(ctx, "guest:a").Add(ctx, "pomodoro")
	reg.For(ctx, "guest:b").Add(ctx, "riso")

	if got := reg.For(ctx, "guest:a").Snapshot(); !reflect.DeepEqual(got, []string{"pomodoro"}) {
		t.Fatalf("guest a = %v", got)
	}
	if reg.For(ctx, "guest:a") != reg.For(ctx, "guest:a") {
		t.Fatalf("expected the same store instance per principal")
	}
	if _, ok, _ := m.Get(ctx, "guest:b/"+StorageKey); !ok {
		t.Fatalf("expected namespaced record for guest b")
	}
}

func TestRegistryRestoresFromStorage(t *testing.T) {
	ctx := context.Background()
	m := memory.New()
	NewRegistry(m).For(ctx, "default").Add(ctx, "aglio")

	if got := NewRegistry(m).For(ctx, "default").Snapshot(); !reflect.DeepEqual(got, []string{"aglio"}) {
		t.Fatalf("restored = %v", got)
	}
}

func seededStorage(t *testing.T) *memory.Store {
	t.Helper()
	m := memory.New()
	if err := m.Set(context.Background(), "guest:a/"+StorageKey, `["pomodoro","basilico"]`); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return m
}

func TestRegistryRestoreIgnoresCancelledRequest(t *testing.T) {
	m := seededStorage(t)
	reg := NewRegistry(m)
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	reg.For(cancelled, "guest:a")
	ctx := context.Background()
	if got := reg.For(ctx, "guest:a").Snapshot(); !reflect.DeepEqual(got, []string{"pomodoro", "basilico"}) {
		t.Fatalf("snapshot = %v", got)
	}
	reg.For(ctx, "guest:a").Add(ctx, "aglio")
	if raw, _, _ := m.Get(ctx, "guest:a/"+StorageKey); raw != `["pomodoro","basilico","aglio"]` {
		t.Fatalf("persisted = %s", raw)
	}
}

func TestRegistryRetriesFailedRestore(t *testing.T) {
	ctx := context.Background()
	m := seededStorage(t)
	reg := NewRegistry(&flakyStorage{Store: m, failures: 1})

	first := reg.For(ctx, "guest:a")
	if !first.Stale() || first.Len() != 0 {
		t.Fatalf("expected an empty stale store, got %v", first.Snapshot())
	}
	second := reg.For(ctx, "guest:a")
	if second == first {
		t.Fatalf("stale store must not be kept")
	}
	if got := second.Snapshot(); !reflect.DeepEqual(got, []string{"pomodoro", "basilico"}) {
		t.Fatalf("snapshot = %v", got)
	}
	if reg.For(ctx, "guest:a") != second {
		t.Fatalf("healthy store should be kept")
	}
}

func TestRegistryIsBounded(t *testing.T) {
	ctx := context.Background()
	reg := NewRegistryWithCapacity(memory.New(), 3)
	for i := 0; i < 10; i++ {
		reg.For(ctx, "guest:"+strconv.Itoa(i))
	}
	if reg.Len() != 3 {
		t.Fatalf("expected 3 open principals, got %d", reg.Len())
	}
}
