package resolver

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"podfeed/internal/feed"
	"podfeed/internal/logging"
	"podfeed/internal/mediatypes"
	"podfeed/internal/metrics"
	"podfeed/internal/probe"
	"podfeed/internal/sidecar"
	"podfeed/internal/workers"
)

// Status classifies the outcome of resolving one sidecar.
type Status int

const (
	// StatusResolved means the item is complete and belongs in the feed.
	StatusResolved Status = iota
	// StatusSkipped means the sidecar has no media file. Not an error;
	// yt-dlp writes sidecars before the download finishes.
	StatusSkipped
	// StatusFailed means the item could not be resolved.
	StatusFailed
)

// String returns the status name; values double as metric labels.
func (s Status) String() string {
	switch s {
	case StatusResolved:
		return "resolved"
	case StatusSkipped:
		return "skipped"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// ItemResult is the outcome of resolving a single sidecar.
type ItemResult struct {
	SidecarPath string
	Status      Status

	// Reason explains a skip or failure in one short phrase.
	Reason string

	// Item is populated only for StatusResolved.
	Item feed.Item

	// MetaThumbnail is the thumbnail URL embedded in the metadata, when
	// the sidecar was readable. Channel artwork of last resort.
	MetaThumbnail string
}

// Resolver turns metadata sidecars into feed items.
type Resolver struct {
	// Root is the downloads root. Enclosure URLs embed media paths
	// relative to it.
	Root string

	// BaseURL is the public URL prefix, without a trailing slash.
	BaseURL string

	// Prober supplies media durations.
	Prober probe.Prober

	// Workers bounds the resolve pool. 0 means one per processor.
	Workers int
}

// Resolve processes every sidecar and returns one result per input, in
// input order. Probes run on a bounded worker pool but results are
// collated back by index, so feed item order never depends on goroutine
// scheduling. A canceled context marks not-yet-started items as failed
// instead of blocking.
func (r *Resolver) Resolve(ctx context.Context, sidecars []string) []ItemResult {
	results := make([]ItemResult, len(sidecars))
	if len(sidecars) == 0 {
		return results
	}

	n := r.Workers
	if n <= 0 {
		n = workers.ForCPU(0)
	}
	if n > len(sidecars) {
		n = len(sidecars)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < n; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				select {
				case <-ctx.Done():
					results[i] = ItemResult{
						SidecarPath: sidecars[i],
						Status:      StatusFailed,
						Reason:      "canceled",
					}
				default:
					results[i] = r.resolveOne(ctx, sidecars[i])
				}
			}
		}()
	}

	for i := range sidecars {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	// An interrupted resolve leaves the item counters untouched; none of
	// its results reach a feed.
	if ctx.Err() == nil {
		for i := range results {
			metrics.Items.WithLabelValues(results[i].Status.String()).Inc()
		}
	}
	return results
}

// resolveOne resolves a single sidecar. The pairing check runs before the
// sidecar is read: a record without media is a skip even when its
// metadata would not parse.
func (r *Resolver) resolveOne(ctx context.Context, sidecarPath string) ItemResult {
	res := ItemResult{SidecarPath: sidecarPath}
	name := filepath.Base(sidecarPath)

	mediaPath := mediatypes.MediaPathFor(sidecarPath)
	fi, err := os.Stat(mediaPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logging.Info("Skipping %s: no matching %s file", name, mediatypes.MediaSuffix)
			res.Status = StatusSkipped
			res.Reason = "no matching media file"
			return res
		}
		logging.Warn("Failed to resolve %s: %v", name, err)
		res.Status = StatusFailed
		res.Reason = fmt.Sprintf("stat media file: %v", err)
		return res
	}

	rec, err := sidecar.Load(sidecarPath)
	if err != nil {
		logging.Warn("Failed to resolve %s: %v", name, err)
		res.Status = StatusFailed
		res.Reason = err.Error()
		return res
	}
	res.MetaThumbnail = rec.Thumbnail

	rel, err := filepath.Rel(r.Root, mediaPath)
	if err != nil {
		logging.Warn("Failed to resolve %s: %v", name, err)
		res.Status = StatusFailed
		res.Reason = fmt.Sprintf("relative media path: %v", err)
		return res
	}
	url := r.BaseURL + "/" + EncodePath(filepath.ToSlash(rel))

	seconds, ok := r.Prober.Probe(ctx, mediaPath)

	res.Status = StatusResolved
	res.Item = feed.Item{
		Title:       rec.FeedTitle(),
		Description: rec.Description,
		PubDate:     ResolvePublishDate(rec.UploadDate, sidecarPath).RFC2822(),
		Enclosure: feed.Enclosure{
			URL:    url,
			Length: fi.Size(),
			Type:   mediatypes.AudioMIMEType,
		},
		GUID:     url,
		Duration: feed.FormatDuration(seconds, ok),
	}
	return res
}
