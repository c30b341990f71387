// Package mediatypes encodes the naming conventions of a yt-dlp style
// downloads tree.
//
// This package exists as a dependency-free foundation that can be imported by
// other packages without creating import cycles. It contains the suffix and
// MIME constants plus pure utility functions, nothing beyond the standard
// library.
//
// # Layout
//
// A downloads tree has one subdirectory per playlist. Each episode inside it
// is a media file plus a metadata sidecar sharing the same stem:
//
//	downloads/
//	  My Show/
//	    001 - First Episode.mp3
//	    001 - First Episode.info.json
//	    thumbnail.jpg
//
// # Pairing
//
// Use MediaPathFor to derive the media path a sidecar describes:
//
//	mediaPath := mediatypes.MediaPathFor("/x/001 - Ep.info.json")
//	// "/x/001 - Ep.mp3"
//
// # Artwork
//
// ArtworkBasenames lists the channel artwork files a playlist directory may
// carry, in lookup priority order.
package mediatypes
