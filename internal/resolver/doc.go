// Package resolver turns the metadata sidecars of a playlist into
// renderable feed items. Each sidecar is paired with its media file and
// resolved to a title, publication date, enclosure URL and duration; every
// input is classified as resolved, skipped or failed so one bad episode
// never takes down the rest of the run.
//
// Resolution runs on a bounded worker pool, but results always come back
// in input order. Item order in the rendered feed is observable output and
// must not depend on goroutine scheduling.
package resolver
