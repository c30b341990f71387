// Package config parses the command-line surface into the settings a
// generation run needs. Flags fall back to PODFEED_* environment
// variables, so the tool works both interactively and from cron.
package config

import (
	"flag"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"
)

// Config holds the resolved settings for one generation run.
type Config struct {
	// DownloadsDir is the root directory holding one subdirectory per
	// playlist.
	DownloadsDir string

	// BaseURL is the public URL prefix enclosures point at, without a
	// trailing slash.
	BaseURL string

	// OutDir is where feed documents are written.
	OutDir string

	// CachePath is the duration cache database; CacheDisabled turns the
	// cache off entirely.
	CachePath     string
	CacheDisabled bool

	// ProbeTimeout bounds a single ffprobe invocation.
	ProbeTimeout time.Duration

	// Workers bounds concurrent item resolution. 0 means one per
	// processor.
	Workers int

	// MetricsFile, when set, receives the run's metrics in Prometheus
	// text format.
	MetricsFile string
}

// Load parses args into a Config. The returned error is flag.ErrHelp
// when -h was asked for; any other error is a usage problem the caller
// should report.
func Load(args []string) (*Config, error) {
	fs := flag.NewFlagSet("podfeed", flag.ContinueOnError)

	var (
		downloads = fs.String("downloads", getEnv("PODFEED_DOWNLOADS", "downloads"), "root directory containing one subdirectory per playlist")
		account   = fs.String("r2-account", getEnv("PODFEED_R2_ACCOUNT", ""), "Cloudflare R2 account ID used to build the public base URL")
		bucket    = fs.String("r2-bucket", getEnv("PODFEED_R2_BUCKET", ""), "R2 bucket name used to build the public base URL")
		baseURL   = fs.String("base-url", getEnv("PODFEED_BASE_URL", ""), "explicit base URL for enclosures (overrides -r2-account/-r2-bucket)")
		out       = fs.String("out", getEnv("PODFEED_OUT", "."), "directory feed files are written to")
		cache     = fs.String("cache", getEnv("PODFEED_CACHE", ".podfeed-cache.db"), "duration cache database path")
		noCache   = fs.Bool("no-cache", false, "disable the duration cache")
		timeout   = fs.Duration("probe-timeout", 10*time.Second, "per-file duration probe timeout")
		workers   = fs.Int("workers", 0, "concurrent item resolutions (0 = one per processor)")
		metrics   = fs.String("metrics-file", getEnv("PODFEED_METRICS_FILE", ""), "write Prometheus metrics to this file after the run")
	)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	base := strings.TrimRight(*baseURL, "/")
	if base == "" {
		if *account == "" || *bucket == "" {
			return nil, fmt.Errorf("either -base-url or both -r2-account and -r2-bucket are required")
		}
		base = fmt.Sprintf("https://%s.r2.cloudflarestorage.com/%s", *account, *bucket)
	}
	u, err := url.Parse(base)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", base, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("base URL %q must include a scheme and host", base)
	}

	if *timeout <= 0 {
		return nil, fmt.Errorf("-probe-timeout must be positive, got %s", *timeout)
	}
	if *workers < 0 {
		return nil, fmt.Errorf("-workers must not be negative, got %d", *workers)
	}

	return &Config{
		DownloadsDir:  *downloads,
		BaseURL:       base,
		OutDir:        *out,
		CachePath:     *cache,
		CacheDisabled: *noCache,
		ProbeTimeout:  *timeout,
		Workers:       *workers,
		MetricsFile:   *metrics,
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
