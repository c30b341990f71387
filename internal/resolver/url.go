package resolver

import "strings"

const upperhex = "0123456789ABCDEF"

// pathByteSafe reports whether c may appear literally in an encoded URL
// path. The safe set is the RFC 3986 unreserved characters plus "/", so
// separators survive while spaces, ampersands and non-ASCII bytes are
// percent-encoded.
func pathByteSafe(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '~', '/':
		return true
	}
	return false
}

// EncodePath percent-encodes a slash-separated relative path for embedding
// in enclosure URLs. Multi-byte runes are encoded byte by byte with
// uppercase hex. Published feeds identify episodes by these URLs, so the
// safe set must not drift toward the wider one net/url allows in path
// segments.
func EncodePath(path string) string {
	var b strings.Builder
	b.Grow(len(path) + 16)
	for i := 0; i < len(path); i++ {
		c := path[i]
		if pathByteSafe(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0xf])
	}
	return b.String()
}
