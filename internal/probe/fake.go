package probe

import (
	"context"
	"path/filepath"
	"sync"
)

// Fake is a canned Prober for tests. Files are matched by base name so
// tests don't have to thread temp directories into their expectations.
type Fake struct {
	mu    sync.Mutex
	calls []string

	// Durations maps file base names to the seconds Probe reports.
	// Files not in the map probe as unavailable.
	Durations map[string]float64
}

// Probe returns the canned duration for the file's base name.
func (f *Fake) Probe(_ context.Context, path string) (float64, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, path)
	seconds, ok := f.Durations[filepath.Base(path)]
	return seconds, ok
}

// CallCount reports how many times Probe has been invoked.
func (f *Fake) CallCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}
