// Package cache opens the optional web cache store.
package cache

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	websqlite "github.com/louisbranch/todolist/internal/services/web/storage/sqlite"
)

// OpenStore opens the web cache store when a storage path is provided and
// drops entries that expired while the process was down. A blank path
// returns a nil store.
func OpenStore(ctx context.Context, path string, logger *log.Logger) (*websqlite.Store, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, nil
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create web cache dir: %w", err)
		}
	}
	store, err := websqlite.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open web cache sqlite store: %w", err)
	}
	removed, err := store.PruneExpired(ctx, time.Now())
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("prune web cache: %w", err)
	}
	if removed > 0 && logger != nil {
		logger.Printf("web cache pruned expired entries=%d", removed)
	}
	return store, nil
}
