package durcache

import (
	"context"
	"os"

	"podfeed/internal/metrics"
	"podfeed/internal/probe"
)

// CachedProber wraps a Prober with the cache. Any cache trouble degrades to
// a plain probe, so a corrupt or unwritable cache file can slow a run down
// but never change its output.
type CachedProber struct {
	cache *Cache
	next  probe.Prober
}

// NewCachedProber returns a Prober that consults cache before next.
func NewCachedProber(cache *Cache, next probe.Prober) *CachedProber {
	return &CachedProber{cache: cache, next: next}
}

// Probe returns the cached duration when the file is unchanged, otherwise
// delegates and stores the result.
func (p *CachedProber) Probe(ctx context.Context, path string) (float64, bool) {
	info, err := os.Stat(path)
	if err != nil {
		// No (size, mtime) key to look up; let the prober report its
		// own failure.
		return p.next.Probe(ctx, path)
	}

	if seconds, ok := p.cache.Get(ctx, path, info.Size(), info.ModTime()); ok {
		metrics.ProbeOutcomes.WithLabelValues("cache").Inc()
		return seconds, true
	}

	seconds, ok := p.next.Probe(ctx, path)
	if ok {
		p.cache.Put(ctx, path, info.Size(), info.ModTime(), seconds)
	}
	return seconds, ok
}
