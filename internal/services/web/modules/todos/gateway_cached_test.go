package todos

import (
	"context"
	"errors"
	"io"
	"log"
	"reflect"
	"testing"
	"time"

	apperrors "github.com/louisbranch/todolist/internal/services/web/platform/errors"
	webstorage "github.com/louisbranch/todolist/internal/services/web/storage"
)

func newTestCachedGateway(upstream *fakeGateway, store *fakeStore, now time.Time) cachedGateway {
	gateway := NewCachedGateway(upstream, store, time.Minute, log.New(io.Discard, "", 0)).(cachedGateway)
	gateway.now = func() time.Time { return now }
	return gateway
}

func TestNewCachedGatewayPassThrough(t *testing.T) {
	t.Parallel()

	upstream := newFakeGateway()
	if got := NewCachedGateway(upstream, nil, time.Minute, nil); got != TodoGateway(upstream) {
		t.Fatalf("nil store should return upstream, got %T", got)
	}
	if got := NewCachedGateway(upstream, newFakeStore(), 0, nil); got != TodoGateway(upstream) {
		t.Fatalf("zero ttl should return upstream, got %T", got)
	}
	if _, ok := NewCachedGateway(unavailableGateway{}, newFakeStore(), time.Minute, nil).(unavailableGateway); !ok {
		t.Fatalf("unavailable upstream should stay unavailable")
	}
	if _, ok := NewCachedGateway(nil, newFakeStore(), time.Minute, nil).(unavailableGateway); !ok {
		t.Fatalf("nil upstream should be unavailable")
	}
}

func TestCachedGatewayServesFreshEntry(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	upstream := newFakeGateway(sampleTodos()...)
	store := newFakeStore()
	gateway := newTestCachedGateway(upstream, store, now)

	first, err := gateway.ListTodos(context.Background(), 7)
	if err != nil {
		t.Fatalf("ListTodos() error = %v", err)
	}
	second, err := gateway.ListTodos(context.Background(), 7)
	if err != nil {
		t.Fatalf("ListTodos() error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("cached list = %+v, want %+v", second, first)
	}
	if got := upstream.Calls(); !reflect.DeepEqual(got, []string{"list:7"}) {
		t.Fatalf("upstream calls = %v", got)
	}

	entry, ok := store.entry("todos:user:7")
	if !ok {
		t.Fatalf("expected cache entry")
	}
	if entry.Scope != "todos.list" || entry.UserID != 7 {
		t.Fatalf("entry = %+v", entry)
	}
	if !entry.ExpiresAt.Equal(now.Add(time.Minute)) {
		t.Fatalf("ExpiresAt = %v", entry.ExpiresAt)
	}
}

func TestCachedGatewayRefreshesExpiredEntry(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	upstream := newFakeGateway(sampleTodos()...)
	store := newFakeStore()
	store.entries["todos:user:7"] = webstorage.CacheEntry{
		CacheKey:     "todos:user:7",
		Scope:        "todos.list",
		UserID:       7,
		PayloadBytes: []byte(`[{"id":42,"userId":7,"title":"stale","completed":false}]`),
		ExpiresAt:    now.Add(-time.Second),
	}
	gateway := newTestCachedGateway(upstream, store, now)

	items, err := gateway.ListTodos(context.Background(), 7)
	if err != nil {
		t.Fatalf("ListTodos() error = %v", err)
	}
	if got := ids(items); !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Fatalf("items = %v", got)
	}
	if len(upstream.Calls()) != 1 {
		t.Fatalf("expected upstream refresh, calls = %v", upstream.Calls())
	}
}

func TestCachedGatewayMutationsInvalidate(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	upstream := newFakeGateway(sampleTodos()...)
	store := newFakeStore()
	gateway := newTestCachedGateway(upstream, store, now)
	ctx := context.Background()
	completed := true

	mutations := []func() error{
		func() error { _, err := gateway.CreateTodo(ctx, 7, "Buy bread"); return err },
		func() error { _, err := gateway.UpdateTodo(ctx, 7, 1, TodoPatch{Completed: &completed}); return err },
		func() error { return gateway.DeleteTodo(ctx, 7, 2) },
	}
	for idx, mutate := range mutations {
		if _, err := gateway.ListTodos(ctx, 7); err != nil {
			t.Fatalf("ListTodos() error = %v", err)
		}
		if _, ok := store.entry("todos:user:7"); !ok {
			t.Fatalf("mutation %d: expected cached entry before mutation", idx)
		}
		if err := mutate(); err != nil {
			t.Fatalf("mutation %d error = %v", idx, err)
		}
		if _, ok := store.entry("todos:user:7"); ok {
			t.Fatalf("mutation %d: entry should be invalidated", idx)
		}
	}

	items, err := gateway.ListTodos(ctx, 7)
	if err != nil {
		t.Fatalf("ListTodos() error = %v", err)
	}
	if got := ids(items); !reflect.DeepEqual(got, []int{1, 3, 4}) {
		t.Fatalf("items = %v", got)
	}
}

func TestCachedGatewayFailedMutationKeepsEntry(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	upstream := newFakeGateway(sampleTodos()...)
	upstream.deleteErr = apperrors.E(apperrors.KindUnavailable, "down")
	store := newFakeStore()
	gateway := newTestCachedGateway(upstream, store, now)

	if _, err := gateway.ListTodos(context.Background(), 7); err != nil {
		t.Fatalf("ListTodos() error = %v", err)
	}
	if err := gateway.DeleteTodo(context.Background(), 7, 1); err == nil {
		t.Fatalf("expected delete error")
	}
	if len(store.deletes) != 0 {
		t.Fatalf("failed mutation should not invalidate, deletes = %v", store.deletes)
	}
}

func TestCachedGatewayStoreErrorsFallThrough(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	upstream := newFakeGateway(sampleTodos()...)
	store := newFakeStore()
	store.getErr = errors.New("disk gone")
	store.putErr = errors.New("disk gone")
	store.deleteErr = errors.New("disk gone")
	gateway := newTestCachedGateway(upstream, store, now)

	items, err := gateway.ListTodos(context.Background(), 7)
	if err != nil {
		t.Fatalf("ListTodos() error = %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("items = %v", ids(items))
	}
	if _, err := gateway.CreateTodo(context.Background(), 7, "Buy bread"); err != nil {
		t.Fatalf("CreateTodo() error = %v", err)
	}
}

func TestCachedGatewayUpstreamListErrorIsNotCached(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	upstream := newFakeGateway()
	upstream.listErr = apperrors.E(apperrors.KindUnavailable, "down")
	store := newFakeStore()
	gateway := newTestCachedGateway(upstream, store, now)

	if _, err := gateway.ListTodos(context.Background(), 7); err == nil {
		t.Fatalf("expected list error")
	}
	if _, ok := store.entry("todos:user:7"); ok {
		t.Fatalf("failed list should not be cached")
	}
}

// pausingListGateway holds ListTodos after upstream has answered until
// release is closed.
type pausingListGateway struct {
	*fakeGateway
	fetched chan struct{}
	release chan struct{}
}

func (p pausingListGateway) ListTodos(ctx context.Context, userID int) ([]Todo, error) {
	items, err := p.fakeGateway.ListTodos(ctx, userID)
	close(p.fetched)
	<-p.release
	return items, err
}

func TestCachedGatewayDropsSnapshotReadBeforeMutation(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	backing := newFakeGateway(Todo{ID: 1, UserID: 7, Title: "a"})
	upstream := pausingListGateway{fakeGateway: backing, fetched: make(chan struct{}), release: make(chan struct{})}
	store := newFakeStore()
	gateway := NewCachedGateway(upstream, store, time.Minute, log.New(io.Discard, "", 0)).(cachedGateway)
	gateway.now = func() time.Time { return now }
	ctx := context.Background()

	listed := make(chan []Todo, 1)
	go func() {
		items, err := gateway.ListTodos(ctx, 7)
		if err != nil {
			t.Errorf("ListTodos() error = %v", err)
		}
		listed <- items
	}()

	<-upstream.fetched
	if err := gateway.DeleteTodo(ctx, 7, 1); err != nil {
		t.Fatalf("DeleteTodo() error = %v", err)
	}
	close(upstream.release)

	if got := ids(<-listed); !reflect.DeepEqual(got, []int{1}) {
		t.Fatalf("in-flight list = %v, want [1]", got)
	}
	if entry, ok := store.entry("todos:user:7"); ok {
		t.Fatalf("stale snapshot cached after delete: %s", entry.PayloadBytes)
	}
}

func TestCachedGatewayWritesAfterMutationsSettle(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	upstream := newFakeGateway(sampleTodos()...)
	store := newFakeStore()
	gateway := newTestCachedGateway(upstream, store, now)
	ctx := context.Background()

	if err := gateway.DeleteTodo(ctx, 7, 2); err != nil {
		t.Fatalf("DeleteTodo() error = %v", err)
	}
	if _, err := gateway.ListTodos(ctx, 7); err != nil {
		t.Fatalf("ListTodos() error = %v", err)
	}
	if _, ok := store.entry("todos:user:7"); !ok {
		t.Fatalf("list after invalidation should be cached")
	}
}
