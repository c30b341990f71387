// Package artwork locates and inspects channel artwork in playlist
// directories.
//
// Artwork is advisory: a playlist without usable artwork still gets a
// feed, and a broken image only produces warnings. Inspection exists
// because yt-dlp frequently stores WebP bytes behind a .jpg name, and
// because podcast directories reject non-square or undersized covers long
// after the feed looks fine in a validator.
package artwork

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"

	"podfeed/internal/mediatypes"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

// MinPixels is the smallest cover edge podcast directories accept.
const MinPixels = 1400

// Info describes a decoded artwork file.
type Info struct {
	Width  int
	Height int
	// Format is the decoder-reported format ("jpeg", "png", "webp", ...),
	// which may disagree with the file extension.
	Format string
}

// Find returns the path of the channel artwork for a playlist directory,
// trying each basename in priority order. ok is false when the directory
// carries no artwork file.
func Find(dir string) (string, bool) {
	for _, name := range mediatypes.ArtworkBasenames {
		path := filepath.Join(dir, name)
		if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
			return path, true
		}
	}
	return "", false
}

// Inspect decodes the artwork at path and reports its display dimensions
// and actual format. Dimensions come from a full decode with EXIF
// orientation applied, so a rotated phone shot reports what a player
// would render.
func Inspect(path string) (Info, error) {
	f, err := os.Open(path)
	if err != nil {
		return Info{}, fmt.Errorf("failed to open artwork: %w", err)
	}
	_, format, err := image.DecodeConfig(f)
	if closeErr := f.Close(); closeErr != nil {
		return Info{}, fmt.Errorf("failed to close artwork: %w", closeErr)
	}
	if err != nil {
		return Info{}, fmt.Errorf("failed to decode artwork: %w", err)
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return Info{}, fmt.Errorf("failed to decode artwork: %w", err)
	}

	bounds := img.Bounds()
	return Info{Width: bounds.Dx(), Height: bounds.Dy(), Format: format}, nil
}

// Check inspects the artwork at path and returns advisory warnings. An
// undecodable file yields a single warning; an empty slice means the
// artwork looks fine.
func Check(path string) []string {
	name := filepath.Base(path)

	info, err := Inspect(path)
	if err != nil {
		return []string{fmt.Sprintf("artwork %s is not decodable: %v", name, err)}
	}

	var warnings []string
	if ext := strings.TrimPrefix(filepath.Ext(path), "."); !formatMatchesExt(info.Format, ext) {
		warnings = append(warnings, fmt.Sprintf("artwork %s actually contains %s data", name, info.Format))
	}
	if info.Width != info.Height {
		warnings = append(warnings, fmt.Sprintf("artwork %s is not square (%dx%d)", name, info.Width, info.Height))
	}
	if info.Width < MinPixels || info.Height < MinPixels {
		warnings = append(warnings, fmt.Sprintf("artwork %s is %dx%d, below the %dpx minimum podcast directories expect", name, info.Width, info.Height, MinPixels))
	}
	return warnings
}

func formatMatchesExt(format, ext string) bool {
	if ext == "jpg" {
		ext = "jpeg"
	}
	return format == strings.ToLower(ext)
}
