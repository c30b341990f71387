package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"podfeed/internal/config"
	"podfeed/internal/durcache"
	"podfeed/internal/logging"
	"podfeed/internal/probe"
	"podfeed/internal/runner"
)

func main() {
	os.Exit(run())
}

// run wires the pipeline together and maps outcomes to exit codes:
// 0 for a completed run (including playlist-level failures, which are
// reported but must not fail a cron job), 1 for environment failures
// and interruption, 2 for usage errors.
func run() int {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2
	}

	// Cancel the run on interrupt signals
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\nInterrupted, shutting down...")
		cancel()
	}()

	var prober probe.Prober = probe.NewFFProbe(cfg.ProbeTimeout)
	if !cfg.CacheDisabled {
		cache, err := durcache.Open(ctx, cfg.CachePath)
		if err != nil {
			logging.Warn("Duration cache unavailable, probing uncached: %v", err)
		} else {
			defer func() {
				if err := cache.Close(); err != nil {
					logging.Warn("Failed to close duration cache: %v", err)
				}
			}()
			prober = durcache.NewCachedProber(cache, prober)
		}
	}

	r := &runner.Runner{Config: cfg, Prober: prober}
	summary, err := r.Run(ctx)
	if err != nil {
		logging.Error("Run failed: %v", err)
		return 1
	}

	if n := summary.FailedPlaylists(); n > 0 {
		logging.Error("%d of %d playlists failed", n, len(summary.Playlists))
	}
	return 0
}
