// Package sidecar reads the .info.json metadata files yt-dlp writes next
// to each downloaded episode.
package sidecar

import (
	"encoding/json"
	"fmt"
	"os"
)

// DefaultTitle is used for episodes whose sidecar carries no title.
const DefaultTitle = "Untitled"

// Record is the slice of an info.json document the feed needs. Sidecars
// carry dozens of other keys; they are ignored. Absent keys decode to zero
// values.
type Record struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	UploadDate  string `json:"upload_date"`
	Thumbnail   string `json:"thumbnail"`
}

// Load reads and decodes the sidecar at path. A missing or malformed file
// is an error; callers record it as an item failure and keep going.
func Load(path string) (*Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sidecar: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("failed to parse sidecar: %w", err)
	}
	return &rec, nil
}

// FeedTitle returns the record's title, or DefaultTitle when the sidecar
// has none. An explicitly empty title gets the placeholder too.
func (r *Record) FeedTitle() string {
	if r.Title == "" {
		return DefaultTitle
	}
	return r.Title
}
