package probe

import (
	"bytes"
	"context"
	"math"
	"os/exec"
	"strconv"
	"strings"
	"time"

	"podfeed/internal/logging"
	"podfeed/internal/metrics"
)

// Prober reports the playback duration of a media file in seconds.
// ok is false when the duration cannot be determined; callers must treat
// that as "duration unknown", never as an item failure.
type Prober interface {
	Probe(ctx context.Context, path string) (seconds float64, ok bool)
}

// FFProbe shells out to ffprobe for each file.
type FFProbe struct {
	// Binary is the ffprobe executable name or path.
	Binary string
	// Timeout bounds a single probe. Zero means no per-call timeout.
	Timeout time.Duration
}

// NewFFProbe returns an FFProbe with the given per-call timeout.
func NewFFProbe(timeout time.Duration) *FFProbe {
	return &FFProbe{Binary: "ffprobe", Timeout: timeout}
}

// Probe runs ffprobe and parses the single duration value it prints.
// Every failure mode (missing binary, non-zero exit, timeout, unparsable
// output) degrades to ok=false.
func (f *FFProbe) Probe(ctx context.Context, path string) (float64, bool) {
	if f.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, f.Binary,
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		logging.Debug("ffprobe %s: %v - %s", path, err, strings.TrimSpace(stderr.String()))
		metrics.ProbeOutcomes.WithLabelValues("failed").Inc()
		return 0, false
	}

	seconds, ok := parseSeconds(stdout.String())
	if !ok {
		logging.Debug("ffprobe %s: unparsable duration %q", path, strings.TrimSpace(stdout.String()))
		metrics.ProbeOutcomes.WithLabelValues("failed").Inc()
		return 0, false
	}
	metrics.ProbeOutcomes.WithLabelValues("ffprobe").Inc()
	return seconds, true
}

// parseSeconds interprets ffprobe's duration output. ffprobe prints "N/A"
// for containers without a known duration.
func parseSeconds(out string) (float64, bool) {
	s := strings.TrimSpace(out)
	if s == "" || s == "N/A" {
		return 0, false
	}
	seconds, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(seconds) || math.IsInf(seconds, 0) || seconds < 0 {
		return 0, false
	}
	return seconds, true
}
