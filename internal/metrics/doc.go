// Package metrics provides Prometheus instrumentation for feed generation
// runs.
//
// All metrics are prefixed with "podfeed_" to avoid naming collisions with
// other jobs on the same host. Because a run is a short-lived batch process
// with no HTTP listener, nothing is registered with the default registry
// and there is no /metrics endpoint; instead the whole registry can be
// dumped to a file in the text exposition format and picked up by
// node_exporter's textfile collector.
//
// # Metric Categories
//
// Run metrics describe the run as a whole:
//   - RunDuration: Gauge of the last run's wall-clock duration
//   - RunLastTimestamp: Gauge of the last run's completion time
//   - PlaylistsProcessed: Counter of playlists by status (written/failed)
//   - FeedsWritten: Counter of feed documents written
//
// Item metrics count every sidecar considered:
//   - Items: Counter by status (resolved/skipped/failed)
//
// Probe metrics show where durations came from:
//   - ProbeOutcomes: Counter by source (cache/ffprobe/failed)
//
// Artwork metrics:
//   - ArtworkWarnings: Counter of advisory artwork warnings
//
// # Recording Metrics
//
// Import this package and use the exported variables directly:
//
//	metrics.Items.WithLabelValues("resolved").Inc()
//	metrics.RunDuration.Set(elapsed.Seconds())
//
// # Exporting
//
// After a run, write the registry for the textfile collector:
//
//	if err := metrics.WriteTextfile("/var/lib/node_exporter/podfeed.prom"); err != nil {
//		logging.Warn("Failed to write metrics file: %v", err)
//	}
//
// # Prometheus Queries
//
// Cache effectiveness across runs:
//
//	increase(podfeed_probe_total{source="cache"}[1d]) /
//	increase(podfeed_probe_total[1d])
//
// Runs that have stopped happening (alerting on a stale batch job):
//
//	time() - podfeed_run_last_timestamp > 2 * 86400
package metrics
