package feed

import (
	"fmt"
	"math"
)

// FormatDuration renders seconds as itunes:duration text: H:MM:SS when
// the duration reaches an hour, M:SS otherwise, rounding half away from
// zero. available=false yields "", which omits the element.
func FormatDuration(seconds float64, available bool) string {
	if !available {
		return ""
	}

	total := int(math.Round(seconds))
	if total < 0 {
		total = 0
	}

	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}
