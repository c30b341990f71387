// Package probe determines episode durations.
//
// The only real implementation shells out to ffprobe, mirroring how the
// downloads themselves were produced. Duration is advisory metadata: a
// probe that fails for any reason reports ok=false and the episode ships
// without an itunes:duration element rather than being dropped.
package probe
