package resolver

import (
	"os"
	"time"
)

// DateSource records where an item's publication date came from.
type DateSource int

const (
	// DateNone means no publication date could be determined.
	DateNone DateSource = iota
	// DateExplicit means the metadata carried a parseable upload date.
	DateExplicit
	// DateDerived means the date fell back to the sidecar file's mtime.
	DateDerived
)

// PublishDate is a publication date together with its provenance, keeping
// the explicit and fallback paths distinguishable instead of collapsing
// them into one string.
type PublishDate struct {
	Source DateSource
	Time   time.Time
}

// RFC2822 renders the date the way feed readers expect, or "" when there
// is no date to render.
func (d PublishDate) RFC2822() string {
	if d.Source == DateNone {
		return ""
	}
	return d.Time.Format(time.RFC1123Z)
}

// ResolvePublishDate picks an item's publication date. An upload date in
// the strict YYYYMMDD form wins; otherwise the sidecar's mtime, in UTC,
// stands in; when even that is unavailable there is no date.
func ResolvePublishDate(uploadDate, sidecarPath string) PublishDate {
	if t, err := time.Parse("20060102", uploadDate); err == nil {
		return PublishDate{Source: DateExplicit, Time: t}
	}

	fi, err := os.Stat(sidecarPath)
	if err != nil {
		return PublishDate{Source: DateNone}
	}
	return PublishDate{Source: DateDerived, Time: fi.ModTime().UTC()}
}
