// Package scanner enumerates playlist directories in a downloads tree.
package scanner

import (
	"fmt"
	"os"
	"path/filepath"

	"podfeed/internal/mediatypes"
)

// Playlist is one playlist directory and its episode sidecars.
type Playlist struct {
	// Name is the directory name, verbatim. It becomes the channel title.
	Name string
	// Dir is the playlist directory path.
	Dir string
	// Sidecars holds the full path of every .info.json inside Dir.
	// os.ReadDir returns entries in lexical order by filename, and that
	// order is the feed's item order.
	Sidecars []string
	// Err records a listing failure for this playlist. The playlist
	// produces no feed but still shows up in the run summary.
	Err error
}

// Scan lists the playlist directories under root in lexical order. Hidden
// entries and plain files at the top level are skipped. A playlist
// directory that cannot be read is returned with Err set so the run can
// report it and move on.
func Scan(root string) ([]Playlist, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("failed to read downloads directory: %w", err)
	}

	var playlists []Playlist
	for _, entry := range entries {
		if !entry.IsDir() || mediatypes.IsHidden(entry.Name()) {
			continue
		}

		pl := Playlist{
			Name: entry.Name(),
			Dir:  filepath.Join(root, entry.Name()),
		}
		pl.Sidecars, pl.Err = listSidecars(pl.Dir)
		playlists = append(playlists, pl)
	}
	return playlists, nil
}

// listSidecars returns the sidecar paths directly inside dir. Hidden files,
// subdirectories, and non-sidecar files are ignored.
func listSidecars(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var sidecars []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || mediatypes.IsHidden(name) || !mediatypes.IsSidecar(name) {
			continue
		}
		sidecars = append(sidecars, filepath.Join(dir, name))
	}
	return sidecars, nil
}
