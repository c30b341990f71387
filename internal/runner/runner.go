// Package runner drives the scan, resolve, render, write pipeline across
// every playlist in the downloads tree.
package runner

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"podfeed/internal/artwork"
	"podfeed/internal/config"
	"podfeed/internal/feed"
	"podfeed/internal/logging"
	"podfeed/internal/metrics"
	"podfeed/internal/probe"
	"podfeed/internal/resolver"
	"podfeed/internal/scanner"
	"podfeed/internal/slug"
)

// PlaylistReport is one playlist's outcome.
type PlaylistReport struct {
	Name string

	// FeedFile is the basename of the written feed document, empty when
	// the playlist failed.
	FeedFile string

	// Items, Skipped and Failed count this playlist's sidecars by
	// resolution outcome.
	Items   int
	Skipped int
	Failed  int

	// Failures holds one "sidecar: reason" line per failed item.
	Failures []string

	// Err is set when no feed could be written for this playlist.
	Err error
}

// Summary aggregates a whole run, one report per playlist in scan order.
type Summary struct {
	Playlists []PlaylistReport
}

// Written returns the number of feed documents written.
func (s *Summary) Written() int {
	n := 0
	for _, pl := range s.Playlists {
		if pl.Err == nil {
			n++
		}
	}
	return n
}

// FailedPlaylists returns the number of playlists that produced no feed.
func (s *Summary) FailedPlaylists() int {
	return len(s.Playlists) - s.Written()
}

// Runner generates podcast feeds from a downloads tree.
type Runner struct {
	Config *config.Config
	Prober probe.Prober
}

// Run generates every feed once. Playlist failures are isolated: they are
// recorded on the Summary and the run keeps going. The returned error is
// reserved for environment-level trouble (an unreadable downloads root,
// an unusable output directory, or cancellation).
func (r *Runner) Run(ctx context.Context) (*Summary, error) {
	start := time.Now()
	summary := &Summary{}
	defer r.finish(start)

	cfg := r.Config

	fi, err := os.Stat(cfg.DownloadsDir)
	if err != nil || !fi.IsDir() {
		logging.Info("No downloads folder found at %s, nothing to do", cfg.DownloadsDir)
		return summary, nil
	}

	playlists, err := scanner.Scan(cfg.DownloadsDir)
	if err != nil {
		return summary, err
	}

	if err := os.MkdirAll(cfg.OutDir, 0755); err != nil {
		return summary, fmt.Errorf("failed to create output directory: %w", err)
	}

	res := &resolver.Resolver{
		Root:    cfg.DownloadsDir,
		BaseURL: cfg.BaseURL,
		Prober:  r.Prober,
		Workers: cfg.Workers,
	}

	for _, pl := range playlists {
		if ctx.Err() != nil {
			return summary, ctx.Err()
		}

		report := r.processPlaylist(ctx, res, pl)
		summary.Playlists = append(summary.Playlists, report)

		// Cancellation surfaces as the run's error, not as a playlist
		// failure.
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		if report.Err != nil {
			logging.Error("Playlist %s failed: %v", pl.Name, report.Err)
			metrics.PlaylistsProcessed.WithLabelValues("failed").Inc()
			continue
		}
		metrics.PlaylistsProcessed.WithLabelValues("written").Inc()
		metrics.FeedsWritten.Inc()
	}

	logging.Info("Run complete: %d/%d feeds written", summary.Written(), len(summary.Playlists))
	return summary, nil
}

// processPlaylist resolves one playlist and writes its feed document.
func (r *Runner) processPlaylist(ctx context.Context, res *resolver.Resolver, pl scanner.Playlist) PlaylistReport {
	report := PlaylistReport{Name: pl.Name}
	if pl.Err != nil {
		report.Err = pl.Err
		return report
	}

	results := res.Resolve(ctx, pl.Sidecars)

	// An interrupt during Resolve leaves items unprocessed. Rendering
	// anyway would replace a complete feed from an earlier run with a
	// truncated one, so the playlist aborts before the write.
	if err := ctx.Err(); err != nil {
		report.Err = err
		return report
	}

	var items []feed.Item
	metaThumb := ""
	for _, ir := range results {
		switch ir.Status {
		case resolver.StatusResolved:
			items = append(items, ir.Item)
			if metaThumb == "" {
				metaThumb = ir.MetaThumbnail
			}
		case resolver.StatusSkipped:
			report.Skipped++
		case resolver.StatusFailed:
			report.Failed++
			report.Failures = append(report.Failures,
				fmt.Sprintf("%s: %s", filepath.Base(ir.SidecarPath), ir.Reason))
		}
	}

	ch := feed.Channel{
		Title:       pl.Name,
		Link:        r.Config.BaseURL + "/" + resolver.EncodePath(pl.Name) + "/",
		Description: feed.ChannelDescription(pl.Name),
		ArtworkURL:  r.channelArtwork(pl, metaThumb),
	}

	doc, err := feed.Render(ch, items)
	if err != nil {
		report.Err = fmt.Errorf("failed to render feed: %w", err)
		return report
	}

	name := feed.Filename(slug.Make(pl.Name))
	if err := os.WriteFile(filepath.Join(r.Config.OutDir, name), doc, 0644); err != nil {
		report.Err = fmt.Errorf("failed to write feed: %w", err)
		return report
	}

	logging.Info("Wrote %s (%d items)", name, len(items))
	report.FeedFile = name
	report.Items = len(items)
	return report
}

// channelArtwork picks the channel image URL. A thumbnail file in the
// playlist directory wins; otherwise the first resolved item's metadata
// thumbnail stands in. Local artwork problems are warnings, never fatal.
func (r *Runner) channelArtwork(pl scanner.Playlist, metaThumb string) string {
	path, ok := artwork.Find(pl.Dir)
	if !ok {
		return metaThumb
	}

	for _, warning := range artwork.Check(path) {
		logging.Warn("%s: %s", pl.Name, warning)
		metrics.ArtworkWarnings.Inc()
	}

	rel, err := filepath.Rel(r.Config.DownloadsDir, path)
	if err != nil {
		return metaThumb
	}
	return r.Config.BaseURL + "/" + resolver.EncodePath(filepath.ToSlash(rel))
}

// finish records run-level metrics and, when configured, dumps the
// registry for the node_exporter textfile collector.
func (r *Runner) finish(start time.Time) {
	metrics.RunDuration.Set(time.Since(start).Seconds())
	metrics.RunLastTimestamp.SetToCurrentTime()

	if r.Config.MetricsFile == "" {
		return
	}
	if err := metrics.WriteTextfile(r.Config.MetricsFile); err != nil {
		logging.Warn("Failed to write metrics file: %v", err)
	}
}
