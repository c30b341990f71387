package durcache

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite3 driver

	"podfeed/internal/logging"
)

// Default timeout for cache operations
const defaultTimeout = 5 * time.Second

// Cache persists probed durations in a SQLite file so unchanged episodes
// are not re-probed on the next run. Entries are keyed by media path and
// invalidated when the file's size or mtime changes.
type Cache struct {
	db *sql.DB
	mu sync.RWMutex
}

// Open opens the cache database at path, creating it if necessary.
func Open(ctx context.Context, path string) (*Cache, error) {
	// WAL keeps reads cheap under concurrent workers; busy_timeout papers
	// over the occasional overlapping cron run.
	connStr := fmt.Sprintf("%s?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000", path)

	db, err := sql.Open("sqlite3", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open duration cache: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			logging.Error("failed to close duration cache after ping failure: %v", closeErr)
		}
		return nil, fmt.Errorf("failed to connect to duration cache: %w", err)
	}

	c := &Cache{db: db}

	if err := c.initialize(ctx); err != nil {
		if closeErr := db.Close(); closeErr != nil {
			logging.Error("failed to close duration cache after initialization failure: %v", closeErr)
		}
		return nil, fmt.Errorf("failed to initialize duration cache schema: %w", err)
	}

	logging.Debug("duration cache ready at %s", path)
	return c, nil
}

func (c *Cache) initialize(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS durations (
		path TEXT PRIMARY KEY,
		size INTEGER NOT NULL,
		mod_time INTEGER NOT NULL,
		seconds REAL NOT NULL,
		updated_at INTEGER NOT NULL DEFAULT (strftime('%s', 'now'))
	);
	`

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := c.db.ExecContext(ctx, schema)
	return err
}

// Get returns the cached duration for path if size and modTime still match
// the stored entry. A read error is a miss, never a failure.
func (c *Cache) Get(ctx context.Context, path string, size int64, modTime time.Time) (float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var seconds float64
	err := c.db.QueryRowContext(ctx,
		"SELECT seconds FROM durations WHERE path = ? AND size = ? AND mod_time = ?",
		path, size, modTime.UnixNano(),
	).Scan(&seconds)
	if err == sql.ErrNoRows {
		return 0, false
	}
	if err != nil {
		logging.Debug("duration cache read for %s: %v", path, err)
		return 0, false
	}
	return seconds, true
}

// Put stores the duration for path at the given size and modTime, replacing
// any stale entry. A write error loses the entry, never the run.
func (c *Cache) Put(ctx context.Context, path string, size int64, modTime time.Time, seconds float64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	_, err := c.db.ExecContext(ctx, `
		INSERT INTO durations (path, size, mod_time, seconds) VALUES (?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			size = excluded.size,
			mod_time = excluded.mod_time,
			seconds = excluded.seconds,
			updated_at = strftime('%s', 'now')
	`, path, size, modTime.UnixNano(), seconds)
	if err != nil {
		logging.Debug("duration cache write for %s: %v", path, err)
	}
}

// Close closes the underlying database.
func (c *Cache) Close() error {
	return c.db.Close()
}
