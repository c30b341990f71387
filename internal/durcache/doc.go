// Package durcache caches probed episode durations between runs.
//
// ffprobe dominates run time on a large downloads tree, and episode files
// never change after download. The cache keys each media path to its
// duration together with the file size and mtime observed at probe time;
// an entry whose size or mtime no longer matches is treated as absent and
// the file is re-probed.
//
// The cache is strictly an accelerator. Every failure path (unopenable
// database, read error, write error) degrades to probing, so deleting the
// cache file is always safe.
package durcache
