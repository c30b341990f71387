package mediatypes

import "strings"

const (
	// MediaSuffix is the extension of episode audio files.
	MediaSuffix = ".mp3"
	// SidecarSuffix is the extension of episode metadata sidecars.
	SidecarSuffix = ".info.json"
	// AudioMIMEType is the enclosure MIME type for episode audio.
	AudioMIMEType = "audio/mpeg"
)

// ArtworkBasenames lists the channel artwork filenames a playlist directory
// may contain, in lookup priority order.
var ArtworkBasenames = []string{
	"thumbnail.jpg",
	"thumbnail.png",
	"thumbnail.jpeg",
}

// IsSidecar returns true if name is an episode metadata sidecar.
func IsSidecar(name string) bool {
	return strings.HasSuffix(name, SidecarSuffix)
}

// IsHidden returns true if name is a hidden directory entry.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// MediaPathFor derives the media file path described by a sidecar path by
// substituting the sidecar suffix with the media suffix.
// "001 - Ep.info.json" pairs with "001 - Ep.mp3".
//
// The path is returned unchanged if it does not carry the sidecar suffix.
func MediaPathFor(sidecarPath string) string {
	if !IsSidecar(sidecarPath) {
		return sidecarPath
	}
	return strings.TrimSuffix(sidecarPath, SidecarSuffix) + MediaSuffix
}
