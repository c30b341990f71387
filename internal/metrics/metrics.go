package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// All metrics live on a private registry. A batch run has no /metrics
// listener; WriteTextfile dumps the registry for the node_exporter
// textfile collector instead.
var (
	registry = prometheus.NewRegistry()
	factory  = promauto.With(registry)
)

// Run metrics
var (
	RunDuration = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "podfeed_run_duration_seconds",
			Help: "Duration of the last generation run in seconds",
		},
	)

	RunLastTimestamp = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "podfeed_run_last_timestamp",
			Help: "Unix timestamp of the last generation run completion",
		},
	)

	PlaylistsProcessed = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "podfeed_playlists_processed_total",
			Help: "Total number of playlist directories processed",
		},
		[]string{"status"}, // "written" or "failed"
	)

	FeedsWritten = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "podfeed_feeds_written_total",
			Help: "Total number of feed documents written",
		},
	)
)

// Item metrics
var (
	Items = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "podfeed_items_total",
			Help: "Total number of episode sidecars considered",
		},
		[]string{"status"}, // "resolved", "skipped" or "failed"
	)
)

// Probe metrics
var (
	ProbeOutcomes = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "podfeed_probe_total",
			Help: "Total number of duration lookups by source",
		},
		[]string{"source"}, // "cache", "ffprobe" or "failed"
	)
)

// Artwork metrics
var (
	ArtworkWarnings = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "podfeed_artwork_warnings_total",
			Help: "Total number of advisory artwork warnings emitted",
		},
	)
)

// WriteTextfile writes every registered metric to path in the Prometheus
// text exposition format, for collection via node_exporter's textfile
// collector. The write is atomic (temp file plus rename).
func WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, registry)
}
