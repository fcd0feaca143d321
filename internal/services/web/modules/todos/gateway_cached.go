package todos

import (
	"context"
	"encoding/json"
	"log"
	"strconv"
	"sync"
	"time"

	webstorage "github.com/louisbranch/todolist/internal/services/web/storage"
)

const listCacheScope = "todos.list"

func listCacheKey(userID int) string {
	return "todos:user:" + strconv.Itoa(userID)
}

// NewCachedGateway serves List from a fresh cache entry when one exists and
// invalidates the entry after every successful mutation. Cache failures are
// logged and fall through to upstream. Without a store or TTL the upstream
// gateway is returned unchanged.
func NewCachedGateway(upstream TodoGateway, store webstorage.Store, ttl time.Duration, logger *log.Logger) TodoGateway {
	if upstream == nil {
		return unavailableGateway{}
	}
	if _, unavailable := upstream.(unavailableGateway); unavailable || store == nil || ttl <= 0 {
		return upstream
	}
	if logger == nil {
		logger = log.Default()
	}
	return cachedGateway{
		upstream:    upstream,
		store:       store,
		ttl:         ttl,
		now:         time.Now,
		logger:      logger,
		generations: &listGenerations{byUser: map[int]uint64{}},
	}
}

// listGenerations counts invalidations per user. A list snapshot is only
// written when no invalidation happened since its upstream read started.
type listGenerations struct {
	mu     sync.Mutex
	byUser map[int]uint64
}

func (l *listGenerations) current(userID int) uint64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.byUser[userID]
}

func (l *listGenerations) bump(userID int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.byUser[userID]++
}

type cachedGateway struct {
	upstream TodoGateway
	store    webstorage.Store
	ttl      time.Duration
	now      func() time.Time
	logger   *log.Logger

	generations *listGenerations
}

func (g cachedGateway) ListTodos(ctx context.Context, userID int) ([]Todo, error) {
	key := listCacheKey(userID)
	if items, ok := g.readFresh(ctx, key); ok {
		return items, nil
	}
	generation := g.generations.current(userID)
	items, err := g.upstream.ListTodos(ctx, userID)
	if err != nil {
		return nil, err
	}
	g.write(ctx, key, userID, generation, items)
	return items, nil
}

func (g cachedGateway) CreateTodo(ctx context.Context, userID int, title string) (Todo, error) {
	created, err := g.upstream.CreateTodo(ctx, userID, title)
	if err != nil {
		return Todo{}, err
	}
	g.invalidate(ctx, userID)
	return created, nil
}

func (g cachedGateway) UpdateTodo(ctx context.Context, userID int, todoID int, patch TodoPatch) (Todo, error) {
	updated, err := g.upstream.UpdateTodo(ctx, userID, todoID, patch)
	if err != nil {
		return Todo{}, err
	}
	g.invalidate(ctx, userID)
	return updated, nil
}

func (g cachedGateway) DeleteTodo(ctx context.Context, userID int, todoID int) error {
	if err := g.upstream.DeleteTodo(ctx, userID, todoID); err != nil {
		return err
	}
	g.invalidate(ctx, userID)
	return nil
}

func (g cachedGateway) readFresh(ctx context.Context, key string) ([]Todo, bool) {
	entry, found, err := g.store.GetCacheEntry(ctx, key)
	if err != nil {
		g.logger.Printf("todos cache read failed key=%s err=%v", key, err)
		return nil, false
	}
	if !found || !entry.Fresh(g.now()) {
		return nil, false
	}
	var items []Todo
	if err := json.Unmarshal(entry.PayloadBytes, &items); err != nil {
		g.logger.Printf("todos cache decode failed key=%s err=%v", key, err)
		return nil, false
	}
	if items == nil {
		items = []Todo{}
	}
	return items, true
}

func (g cachedGateway) write(ctx context.Context, key string, userID int, generation uint64, items []Todo) {
	payload, err := json.Marshal(items)
	if err != nil {
		g.logger.Printf("todos cache encode failed key=%s err=%v", key, err)
		return
	}

	// The lock spans the check and the put so an invalidation cannot land
	// between them.
	g.generations.mu.Lock()
	defer g.generations.mu.Unlock()
	if g.generations.byUser[userID] != generation {
		return
	}
	now := g.now().UTC()
	err = g.store.PutCacheEntry(ctx, webstorage.CacheEntry{
		CacheKey:     key,
		Scope:        listCacheScope,
		UserID:       userID,
		PayloadBytes: payload,
		RefreshedAt:  now,
		ExpiresAt:    now.Add(g.ttl),
	})
	if err != nil {
		g.logger.Printf("todos cache write failed key=%s err=%v", key, err)
	}
}

func (g cachedGateway) invalidate(ctx context.Context, userID int) {
	g.generations.bump(userID)
	key := listCacheKey(userID)
	if err := g.store.DeleteCacheEntry(ctx, key); err != nil {
		g.logger.Printf("todos cache invalidate failed key=%s err=%v", key, err)
	}
}
