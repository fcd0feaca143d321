package todos

import (
	"context"
	"fmt"
	"sync"
	"time"

	apperrors "github.com/louisbranch/todolist/internal/services/web/platform/errors"
	webstorage "github.com/louisbranch/todolist/internal/services/web/storage"
)

// fakeGateway is an in-memory TodoGateway that records calls and supports
// per-operation error injection.
type fakeGateway struct {
	mu        sync.Mutex
	items     []Todo
	nextID    int
	calls     []string
	listErr   error
	createErr error
	updateErr error
	deleteErr error
	// failUpdateOn makes UpdateTodo fail for one todo id.
	failUpdateOn int
	failDeleteOn int
}

var _ TodoGateway = (*fakeGateway)(nil)

func newFakeGateway(items ...Todo) *fakeGateway {
	nextID := 1
	for _, item := range items {
		if item.ID >= nextID {
			nextID = item.ID + 1
		}
	}
	return &fakeGateway{items: append([]Todo(nil), items...), nextID: nextID}
}

func (f *fakeGateway) record(call string) {
	f.calls = append(f.calls, call)
}

func (f *fakeGateway) ListTodos(_ context.Context, userID int) ([]Todo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(fmt.Sprintf("list:%d", userID))
	if f.listErr != nil {
		return nil, f.listErr
	}
	return append([]Todo{}, f.items...), nil
}

func (f *fakeGateway) CreateTodo(_ context.Context, userID int, title string) (Todo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(fmt.Sprintf("create:%s", title))
	if f.createErr != nil {
		return Todo{}, f.createErr
	}
	created := Todo{ID: f.nextID, UserID: userID, Title: title}
	f.nextID++
	f.items = AppendTodo(f.items, created)
	return created, nil
}

func (f *fakeGateway) UpdateTodo(_ context.Context, _ int, todoID int, patch TodoPatch) (Todo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	call := fmt.Sprintf("update:%d", todoID)
	if patch.Completed != nil {
		call += fmt.Sprintf(":completed=%t", *patch.Completed)
	}
	if patch.Title != nil {
		call += fmt.Sprintf(":title=%s", *patch.Title)
	}
	f.record(call)
	if f.updateErr != nil {
		return Todo{}, f.updateErr
	}
	if f.failUpdateOn == todoID {
		return Todo{}, apperrors.E(apperrors.KindUnavailable, "update failed")
	}
	current, ok := findTodo(f.items, todoID)
	if !ok {
		return Todo{}, apperrors.E(apperrors.KindNotFound, "todo not found")
	}
	if patch.Completed != nil {
		current.Completed = *patch.Completed
	}
	if patch.Title != nil {
		current.Title = *patch.Title
	}
	f.items = ReplaceTodo(f.items, current)
	return current, nil
}

func (f *fakeGateway) DeleteTodo(_ context.Context, _ int, todoID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record(fmt.Sprintf("delete:%d", todoID))
	if f.deleteErr != nil {
		return f.deleteErr
	}
	if f.failDeleteOn == todoID {
		return apperrors.E(apperrors.KindUnavailable, "delete failed")
	}
	f.items = RemoveTodo(f.items, todoID)
	return nil
}

func (f *fakeGateway) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

func (f *fakeGateway) Items() []Todo {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Todo(nil), f.items...)
}

// fakeStore is an in-memory webstorage.Store.
type fakeStore struct {
	mu        sync.Mutex
	entries   map[string]webstorage.CacheEntry
	getErr    error
	putErr    error
	deleteErr error
	deletes   []string
}

var _ webstorage.Store = (*fakeStore)(nil)

func newFakeStore() *fakeStore {
	return &fakeStore{entries: map[string]webstorage.CacheEntry{}}
}

func (s *fakeStore) Close() error { return nil }

func (s *fakeStore) GetCacheEntry(_ context.Context, cacheKey string) (webstorage.CacheEntry, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return webstorage.CacheEntry{}, false, s.getErr
	}
	entry, ok := s.entries[cacheKey]
	return entry, ok, nil
}

func (s *fakeStore) PutCacheEntry(_ context.Context, entry webstorage.CacheEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.putErr != nil {
		return s.putErr
	}
	s.entries[entry.CacheKey] = entry
	return nil
}

func (s *fakeStore) DeleteCacheEntry(_ context.Context, cacheKey string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deletes = append(s.deletes, cacheKey)
	if s.deleteErr != nil {
		return s.deleteErr
	}
	delete(s.entries, cacheKey)
	return nil
}

func (s *fakeStore) PruneExpired(_ context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var removed int64
	for key, entry := range s.entries {
		if !entry.Fresh(now) {
			delete(s.entries, key)
			removed++
		}
	}
	return removed, nil
}

func (s *fakeStore) entry(key string) (webstorage.CacheEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	entry, ok := s.entries[key]
	return entry, ok
}
